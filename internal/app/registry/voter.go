// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"math/big"

	"github.com/pkg/errors"
)

const MaxDepositEntries = 32

// Voter owns a fixed set of deposit slots. Slots are addressed by index and
// never compacted, so an index stays valid for the voter's lifetime.
type Voter struct {
	VoterAuthority Pubkey
	Registrar      Pubkey
	Deposits       [MaxDepositEntries]DepositEntry
}

func (v *Voter) Entry(idx uint8) (*DepositEntry, error) {
	if int(idx) >= len(v.Deposits) {
		return nil, errors.Wrapf(ErrInvalidDepositIndex, "index %d", idx)
	}
	return &v.Deposits[idx], nil
}

// ActiveEntry is Entry that also requires the slot to be in use.
func (v *Voter) ActiveEntry(idx uint8) (*DepositEntry, error) {
	d, err := v.Entry(idx)
	if err != nil {
		return nil, err
	}
	if !d.IsUsed {
		return nil, errors.Wrapf(ErrInvalidState, "deposit entry %d", idx)
	}
	return d, nil
}

// FreeEntry returns the lowest unused slot index.
func (v *Voter) FreeEntry() (uint8, error) {
	for i := range v.Deposits {
		if !v.Deposits[i].IsUsed {
			return uint8(i), nil
		}
	}
	return 0, ErrNoFreeDepositEntry
}

func (v *Voter) UsedEntries() int {
	n := 0
	for i := range v.Deposits {
		if v.Deposits[i].IsUsed {
			n++
		}
	}
	return n
}

// CreateDeposit activates a free slot with a new lockup starting at the
// clock time and deposits amount into it. It returns the slot index.
func (v *Voter) CreateDeposit(
	registrar *Registrar,
	mintIdx uint8,
	kind LockupKind,
	periods uint32,
	allowClawback bool,
	amount uint64,
	clock Clock,
) (uint8, error) {
	if amount == 0 {
		return 0, errors.Wrap(ErrZeroAmount, "new deposit entry")
	}
	if _, err := registrar.Rate(mintIdx); err != nil {
		return 0, err
	}
	lockup, err := NewLockup(kind, clock.UnixTimestamp, periods)
	if err != nil {
		return 0, err
	}
	idx, err := v.FreeEntry()
	if err != nil {
		return 0, err
	}

	var entry DepositEntry
	entry.activate(mintIdx, lockup, allowClawback)
	if err := entry.Deposit(amount, clock); err != nil {
		return 0, err
	}
	v.Deposits[idx] = entry
	return idx, nil
}

// Weight sums the vote weight of every used deposit entry. Any bad entry
// fails the whole computation.
func (v *Voter) Weight(registrar *Registrar, now int64) (uint64, error) {
	total := new(big.Int)
	for i := range v.Deposits {
		d := &v.Deposits[i]
		if !d.IsUsed {
			continue
		}
		w, err := registrar.depositWeight(d, now)
		if err != nil {
			return 0, errors.Wrapf(err, "deposit entry %d", i)
		}
		total.Add(total, w)
	}
	weight, err := toUint64(total)
	if err != nil {
		return 0, errors.Wrap(err, "voter weight")
	}
	return weight, nil
}
