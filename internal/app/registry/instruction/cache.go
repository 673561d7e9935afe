// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package instruction

import (
	"context"

	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
)

// CachedStore keeps recently used registrars in memory in front of a
// backend store. Voters always go to the backend.
type CachedStore struct {
	backend AccountStore
	cache   *lru.Cache
}

func NewCachedStore(backend AccountStore, size int) (*CachedStore, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to init cache")
	}
	store := &CachedStore{
		backend: backend,
		cache:   cache,
	}
	return store, nil
}

func (c *CachedStore) Registrar(ctx context.Context, key registry.Pubkey) (*registry.Registrar, error) {
	if cached, ok := c.cache.Get(key); ok {
		r := cached.(registry.Registrar)
		return &r, nil
	}

	r, err := c.backend.Registrar(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, *r)
	return r, nil
}

func (c *CachedStore) SaveRegistrar(ctx context.Context, key registry.Pubkey, registrar *registry.Registrar) error {
	err := c.backend.SaveRegistrar(ctx, key, registrar)
	if err != nil {
		c.cache.Remove(key)
		return err
	}
	c.cache.Add(key, *registrar)
	return nil
}

func (c *CachedStore) Voter(ctx context.Context, key registry.Pubkey) (*registry.Voter, error) {
	return c.backend.Voter(ctx, key)
}

func (c *CachedStore) SaveVoter(ctx context.Context, key registry.Pubkey, voter *registry.Voter) error {
	return c.backend.SaveVoter(ctx, key, voter)
}

func (c *CachedStore) VotersByRegistrar(ctx context.Context, registrar registry.Pubkey) ([]registry.Pubkey, error) {
	return c.backend.VotersByRegistrar(ctx, registrar)
}
