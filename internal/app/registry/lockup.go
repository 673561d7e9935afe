// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"math"

	"github.com/pkg/errors"
)

const (
	SecsPerDay   int64 = 24 * 60 * 60
	SecsPerMonth int64 = 365 * SecsPerDay / 12
	SecsPerYear  int64 = 365 * SecsPerDay
)

// Clock is the host's view of time for a single mutation: the slot is the
// unit of atomicity, the timestamp is used for vesting math.
type Clock struct {
	Slot          uint64
	UnixTimestamp int64
}

type LockupKind uint8

const (
	LockupNone LockupKind = iota
	LockupDaily
	LockupMonthly
	LockupCliff
	LockupConstant
)

func (k LockupKind) String() string {
	switch k {
	case LockupNone:
		return "none"
	case LockupDaily:
		return "daily"
	case LockupMonthly:
		return "monthly"
	case LockupCliff:
		return "cliff"
	case LockupConstant:
		return "constant"
	}
	return "unknown"
}

func (k LockupKind) Valid() bool {
	return k <= LockupConstant
}

// PeriodSecs is the length of one lockup period. None has no periods.
func (k LockupKind) PeriodSecs() int64 {
	switch k {
	case LockupDaily, LockupCliff, LockupConstant:
		return SecsPerDay
	case LockupMonthly:
		return SecsPerMonth
	}
	return 0
}

func ParseLockupKind(s string) (LockupKind, error) {
	for k := LockupNone; k <= LockupConstant; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return LockupNone, errors.Wrapf(ErrInvalidLockup, "unknown lockup kind %q", s)
}

type Lockup struct {
	Kind    LockupKind
	StartTs int64
	EndTs   int64
}

// NewLockup builds a lockup of the given number of periods starting at start.
func NewLockup(kind LockupKind, start int64, periods uint32) (Lockup, error) {
	if !kind.Valid() {
		return Lockup{}, errors.Wrapf(ErrInvalidLockup, "kind %d", kind)
	}
	if kind == LockupNone {
		if periods != 0 {
			return Lockup{}, errors.Wrap(ErrInvalidLockup, "none lockup can't have periods")
		}
		return Lockup{Kind: kind, StartTs: start, EndTs: start}, nil
	}
	if periods == 0 {
		return Lockup{}, errors.Wrapf(ErrInvalidLockup, "%s lockup needs at least one period", kind)
	}
	duration := int64(periods) * kind.PeriodSecs()
	if start > math.MaxInt64-duration {
		return Lockup{}, errors.Wrap(ErrArithmeticOverflow, "lockup end")
	}
	return Lockup{Kind: kind, StartTs: start, EndTs: start + duration}, nil
}

// NewLockupFromTimes validates an explicit start/end pair. Durations that
// are not a whole number of periods are rejected instead of rounded.
func NewLockupFromTimes(kind LockupKind, start, end int64) (Lockup, error) {
	l := Lockup{Kind: kind, StartTs: start, EndTs: end}
	return l, l.Validate()
}

func (l Lockup) Validate() error {
	if !l.Kind.Valid() {
		return errors.Wrapf(ErrInvalidLockup, "kind %d", l.Kind)
	}
	if l.StartTs > l.EndTs {
		return errors.Wrapf(ErrInvalidLockup, "start %d is after end %d", l.StartTs, l.EndTs)
	}
	if l.Kind == LockupNone {
		return nil
	}
	if (l.EndTs-l.StartTs)%l.Kind.PeriodSecs() != 0 {
		return errors.Wrapf(ErrInvalidLockup, "duration %d is not a multiple of %s period", l.EndTs-l.StartTs, l.Kind)
	}
	return nil
}

// Expired reports whether the lockup no longer holds anything back.
func (l Lockup) Expired(now int64) bool {
	switch l.Kind {
	case LockupNone:
		return true
	case LockupConstant:
		return false
	}
	return now >= l.EndTs
}

// SecondsRemaining is the time left until the lockup ends. A constant lockup
// does not decay: its remaining time is always the full duration.
func (l Lockup) SecondsRemaining(now int64) uint64 {
	switch l.Kind {
	case LockupNone:
		return 0
	case LockupConstant:
		return uint64(l.EndTs - l.StartTs)
	}
	if now >= l.EndTs {
		return 0
	}
	if now < l.StartTs {
		now = l.StartTs
	}
	return uint64(l.EndTs - now)
}

// PeriodsTotal is the number of whole periods in the lockup.
func (l Lockup) PeriodsTotal() uint64 {
	secs := l.Kind.PeriodSecs()
	if secs == 0 {
		return 0
	}
	return uint64((l.EndTs - l.StartTs) / secs)
}

// PeriodCurrent is the number of whole periods elapsed since start, clamped
// to PeriodsTotal.
func (l Lockup) PeriodCurrent(now int64) uint64 {
	secs := l.Kind.PeriodSecs()
	if secs == 0 || now <= l.StartTs {
		return 0
	}
	current := uint64((now - l.StartTs) / secs)
	if total := l.PeriodsTotal(); current > total {
		return total
	}
	return current
}

// VestedFraction returns the vested share as numerator/denominator.
func (l Lockup) VestedFraction(now int64) (uint64, uint64) {
	switch l.Kind {
	case LockupNone:
		return 1, 1
	case LockupConstant:
		return 0, 1
	case LockupCliff:
		if now >= l.EndTs {
			return 1, 1
		}
		return 0, 1
	case LockupDaily, LockupMonthly:
		total := l.PeriodsTotal()
		if total == 0 {
			// shorter than one period: behaves like a cliff
			if now >= l.EndTs {
				return 1, 1
			}
			return 0, 1
		}
		return l.PeriodCurrent(now), total
	}
	return 0, 1
}

// RemovePastPeriods moves the start forward past every elapsed whole period
// so the remaining periods start at the new StartTs.
func (l *Lockup) RemovePastPeriods(now int64) {
	secs := l.Kind.PeriodSecs()
	if secs == 0 || l.Kind == LockupConstant {
		return
	}
	l.StartTs += int64(l.PeriodCurrent(now)) * secs
}

// unlocksAt is the moment the lockup frees everything it holds.
// Constant lockups never do.
func (l Lockup) unlocksAt(now int64) int64 {
	switch l.Kind {
	case LockupNone:
		return now
	case LockupConstant:
		return math.MaxInt64
	}
	if l.EndTs < now {
		return now
	}
	return l.EndTs
}
