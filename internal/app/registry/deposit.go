// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"github.com/pkg/errors"
)

// DepositEntry is one slot of a voter. AmountInitiallyLockedNative is the
// base the lockup vests; AmountDepositedNative is what is left in the slot.
type DepositEntry struct {
	IsUsed              bool
	AllowClawback       bool
	VotingMintConfigIdx uint8

	AmountDepositedNative       uint64
	AmountInitiallyLockedNative uint64

	Lockup Lockup

	// Slot of the latest deposit into this entry.
	LastDepositSlot uint64
}

// vested is the part of the locked base that the lockup has released.
func (d *DepositEntry) vested(now int64) uint64 {
	num, den := d.Lockup.VestedFraction(now)
	if num >= den {
		return d.AmountInitiallyLockedNative
	}
	// num < den, so the quotient is below AmountInitiallyLockedNative and
	// can't overflow.
	v, _ := mulDiv(d.AmountInitiallyLockedNative, num, den)
	return v
}

func (d *DepositEntry) AmountLocked(now int64) uint64 {
	if !d.IsUsed {
		return 0
	}
	locked := d.AmountInitiallyLockedNative - d.vested(now)
	if locked > d.AmountDepositedNative {
		return d.AmountDepositedNative
	}
	return locked
}

func (d *DepositEntry) AmountUnlocked(now int64) uint64 {
	if !d.IsUsed {
		return 0
	}
	return d.AmountDepositedNative - d.AmountLocked(now)
}

// resolveVesting folds the already vested part out of the locked base and
// restarts the lockup at the beginning of the current period.
func (d *DepositEntry) resolveVesting(now int64) {
	d.AmountInitiallyLockedNative -= d.vested(now)
	if d.Lockup.Expired(now) {
		d.AmountInitiallyLockedNative = 0
	}
	d.Lockup.RemovePastPeriods(now)
}

// activate resets the slot and starts a fresh lockup in it.
func (d *DepositEntry) activate(mintIdx uint8, lockup Lockup, allowClawback bool) {
	*d = DepositEntry{
		IsUsed:              true,
		AllowClawback:       allowClawback,
		VotingMintConfigIdx: mintIdx,
		Lockup:              lockup,
	}
}

// Deposit adds amount to the entry. Funds added to a running lockup vest
// over the periods that remain, ending on the original end date.
func (d *DepositEntry) Deposit(amount uint64, clock Clock) error {
	if !d.IsUsed {
		return ErrInvalidState
	}
	deposited, err := addUint64(d.AmountDepositedNative, amount)
	if err != nil {
		return errors.Wrap(err, "deposited amount")
	}

	next := *d
	now := clock.UnixTimestamp
	next.resolveVesting(now)
	if !next.Lockup.Expired(now) {
		next.AmountInitiallyLockedNative, err = addUint64(next.AmountInitiallyLockedNative, amount)
		if err != nil {
			return errors.Wrap(err, "locked amount")
		}
	}
	next.AmountDepositedNative = deposited
	next.LastDepositSlot = clock.Slot

	*d = next
	return nil
}

// Withdraw takes amount out of the unlocked part of the entry. The locked
// part keeps its schedule.
func (d *DepositEntry) Withdraw(amount uint64, clock Clock) error {
	if !d.IsUsed {
		return ErrInvalidState
	}
	if clock.Slot == d.LastDepositSlot {
		return ErrSameTimestampAsDeposit
	}
	unlocked := d.AmountUnlocked(clock.UnixTimestamp)
	if amount > unlocked {
		return errors.Wrapf(ErrInsufficientUnvested, "requested %d, unlocked %d", amount, unlocked)
	}

	d.AmountDepositedNative -= amount
	if d.AmountDepositedNative == 0 {
		*d = DepositEntry{}
	}
	return nil
}

// Clawback removes everything still locked and returns the removed amount.
// The lockup restarts at the beginning of the current period. It can happen
// once per entry.
func (d *DepositEntry) Clawback(clock Clock) (uint64, error) {
	if !d.IsUsed {
		return 0, ErrInvalidState
	}
	if !d.AllowClawback {
		return 0, ErrNotClawbackEligible
	}

	now := clock.UnixTimestamp
	locked := d.AmountLocked(now)

	d.AmountDepositedNative -= locked
	d.AmountInitiallyLockedNative = 0
	// the lockup keeps a whole number of periods
	d.Lockup.RemovePastPeriods(now)
	d.AllowClawback = false

	if d.AmountDepositedNative == 0 {
		*d = DepositEntry{}
	}
	return locked, nil
}

// ChangeLockup replaces the lockup with a new one starting now. The new
// lockup has to free the funds strictly earlier than the current one,
// except None which is always a relaxation.
func (d *DepositEntry) ChangeLockup(kind LockupKind, periods uint32, clock Clock) error {
	if !d.IsUsed {
		return ErrInvalidState
	}
	now := clock.UnixTimestamp
	lockup, err := NewLockup(kind, now, periods)
	if err != nil {
		return err
	}
	if kind != LockupNone && lockup.unlocksAt(now) >= d.Lockup.unlocksAt(now) {
		return errors.Wrapf(ErrInvalidLockupChange, "%s lockup for %d periods", kind, periods)
	}

	next := *d
	next.resolveVesting(now)
	locked := next.AmountLocked(now)
	next.Lockup = lockup
	next.AmountInitiallyLockedNative = locked
	if kind == LockupNone {
		next.AmountInitiallyLockedNative = 0
	}

	*d = next
	return nil
}
