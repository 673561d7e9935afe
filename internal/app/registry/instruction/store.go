// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package instruction

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
)

// AccountStore keeps registrar and voter accounts by address. Getters
// return registry.ErrNotFound for unknown addresses and hand out copies.
type AccountStore interface {
	Registrar(ctx context.Context, key registry.Pubkey) (*registry.Registrar, error)
	Voter(ctx context.Context, key registry.Pubkey) (*registry.Voter, error)
	SaveRegistrar(ctx context.Context, key registry.Pubkey, registrar *registry.Registrar) error
	SaveVoter(ctx context.Context, key registry.Pubkey, voter *registry.Voter) error
	// VotersByRegistrar lists addresses of the voters of a registrar.
	VotersByRegistrar(ctx context.Context, registrar registry.Pubkey) ([]registry.Pubkey, error)
}

//go:generate minimock -i github.com/insolar/voter-stake-registry/internal/app/registry/instruction.Custody -o ./ -s _mock.go -g
type Custody interface {
	Transfer(ctx context.Context, mint, from, to registry.Pubkey, amount uint64) error
}

type MemoryStore struct {
	mu         sync.RWMutex
	registrars map[registry.Pubkey]registry.Registrar
	voters     map[registry.Pubkey]registry.Voter
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		registrars: make(map[registry.Pubkey]registry.Registrar),
		voters:     make(map[registry.Pubkey]registry.Voter),
	}
}

func (s *MemoryStore) Registrar(_ context.Context, key registry.Pubkey) (*registry.Registrar, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.registrars[key]
	if !ok {
		return nil, errors.Wrapf(registry.ErrNotFound, "registrar %s", key)
	}
	return &r, nil
}

func (s *MemoryStore) Voter(_ context.Context, key registry.Pubkey) (*registry.Voter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.voters[key]
	if !ok {
		return nil, errors.Wrapf(registry.ErrNotFound, "voter %s", key)
	}
	return &v, nil
}

func (s *MemoryStore) SaveRegistrar(_ context.Context, key registry.Pubkey, registrar *registry.Registrar) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrars[key] = *registrar
	return nil
}

func (s *MemoryStore) SaveVoter(_ context.Context, key registry.Pubkey, voter *registry.Voter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voters[key] = *voter
	return nil
}

func (s *MemoryStore) VotersByRegistrar(_ context.Context, registrar registry.Pubkey) ([]registry.Pubkey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := []registry.Pubkey{}
	for key, v := range s.voters {
		if v.Registrar == registrar {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		return bytes.Compare(keys[i][:], keys[j][:]) < 0
	})
	return keys, nil
}
