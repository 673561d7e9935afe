// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const start int64 = 1600000000

func TestNewLockup(t *testing.T) {
	t.Run("daily", func(t *testing.T) {
		l, err := NewLockup(LockupDaily, start, 10)
		require.NoError(t, err)
		require.Equal(t, start+10*SecsPerDay, l.EndTs)
		require.Equal(t, uint64(10), l.PeriodsTotal())
	})

	t.Run("monthly", func(t *testing.T) {
		l, err := NewLockup(LockupMonthly, start, 12)
		require.NoError(t, err)
		require.Equal(t, start+SecsPerYear, l.EndTs)
	})

	t.Run("none_with_periods", func(t *testing.T) {
		_, err := NewLockup(LockupNone, start, 1)
		require.True(t, errors.Is(err, ErrInvalidLockup))
	})

	t.Run("zero_periods", func(t *testing.T) {
		_, err := NewLockup(LockupCliff, start, 0)
		require.True(t, errors.Is(err, ErrInvalidLockup))
	})

	t.Run("unknown_kind", func(t *testing.T) {
		_, err := NewLockup(LockupKind(9), start, 1)
		require.True(t, errors.Is(err, ErrInvalidLockup))
	})
}

func TestNewLockupFromTimes(t *testing.T) {
	_, err := NewLockupFromTimes(LockupDaily, start, start+3*SecsPerDay)
	require.NoError(t, err)

	_, err = NewLockupFromTimes(LockupDaily, start, start+3*SecsPerDay+1)
	require.True(t, errors.Is(err, ErrInvalidLockup))

	_, err = NewLockupFromTimes(LockupCliff, start, start-1)
	require.True(t, errors.Is(err, ErrInvalidLockup))
}

func TestLockup_VestedFraction(t *testing.T) {
	daily, err := NewLockup(LockupDaily, start, 10)
	require.NoError(t, err)

	t.Run("before_start", func(t *testing.T) {
		num, _ := daily.VestedFraction(start - SecsPerDay)
		require.Equal(t, uint64(0), num)
	})

	t.Run("steps", func(t *testing.T) {
		num, den := daily.VestedFraction(start + 3*SecsPerDay)
		require.Equal(t, uint64(3), num)
		require.Equal(t, uint64(10), den)

		num, den = daily.VestedFraction(start + 3*SecsPerDay + SecsPerDay/2)
		require.Equal(t, uint64(3), num)
		require.Equal(t, uint64(10), den)
	})

	t.Run("after_end", func(t *testing.T) {
		num, den := daily.VestedFraction(start + 100*SecsPerDay)
		require.Equal(t, num, den)
	})

	t.Run("cliff", func(t *testing.T) {
		cliff, err := NewLockup(LockupCliff, start, 5)
		require.NoError(t, err)
		num, _ := cliff.VestedFraction(cliff.EndTs - 1)
		require.Equal(t, uint64(0), num)
		num, den := cliff.VestedFraction(cliff.EndTs)
		require.Equal(t, num, den)
	})

	t.Run("constant_never_vests", func(t *testing.T) {
		constant, err := NewLockup(LockupConstant, start, 5)
		require.NoError(t, err)
		num, _ := constant.VestedFraction(constant.EndTs + 10*SecsPerYear)
		require.Equal(t, uint64(0), num)
	})

	t.Run("none", func(t *testing.T) {
		none, err := NewLockup(LockupNone, start, 0)
		require.NoError(t, err)
		num, den := none.VestedFraction(start - 1)
		require.Equal(t, num, den)
	})

	t.Run("shorter_than_period", func(t *testing.T) {
		l := Lockup{Kind: LockupMonthly, StartTs: start, EndTs: start + SecsPerDay}
		num, _ := l.VestedFraction(start + SecsPerDay - 1)
		require.Equal(t, uint64(0), num)
		num, den := l.VestedFraction(start + SecsPerDay)
		require.Equal(t, num, den)
	})
}

func TestLockup_VestedFractionMonotonic(t *testing.T) {
	for kind := LockupNone; kind <= LockupConstant; kind++ {
		periods := uint32(7)
		if kind == LockupNone {
			periods = 0
		}
		l, err := NewLockup(kind, start, periods)
		require.NoError(t, err)

		prevNum, prevDen := l.VestedFraction(start - SecsPerDay)
		for now := start - SecsPerDay; now <= start+10*SecsPerDay; now += SecsPerDay / 3 {
			num, den := l.VestedFraction(now)
			// num/den >= prevNum/prevDen
			require.True(t, num*prevDen >= prevNum*den, "kind %s at %d", kind, now)
			prevNum, prevDen = num, den
		}
	}
}

func TestLockup_SecondsRemaining(t *testing.T) {
	cliff, err := NewLockup(LockupCliff, start, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2*SecsPerDay), cliff.SecondsRemaining(start-100))
	require.Equal(t, uint64(SecsPerDay), cliff.SecondsRemaining(start+SecsPerDay))
	require.Equal(t, uint64(0), cliff.SecondsRemaining(cliff.EndTs+1))

	constant, err := NewLockup(LockupConstant, start, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(2*SecsPerDay), constant.SecondsRemaining(start+5*SecsPerDay))
}

func TestLockup_RemovePastPeriods(t *testing.T) {
	l, err := NewLockup(LockupDaily, start, 10)
	require.NoError(t, err)

	l.RemovePastPeriods(start + 3*SecsPerDay + 100)
	require.Equal(t, start+3*SecsPerDay, l.StartTs)
	require.Equal(t, uint64(7), l.PeriodsTotal())
	require.Equal(t, uint64(0), l.PeriodCurrent(start+3*SecsPerDay+100))
}

func TestParseLockupKind(t *testing.T) {
	k, err := ParseLockupKind("monthly")
	require.NoError(t, err)
	require.Equal(t, LockupMonthly, k)

	_, err = ParseLockupKind("weekly")
	require.Error(t, err)
}
