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

func makeVoter() *Voter {
	return &Voter{VoterAuthority: key(20), Registrar: key(21)}
}

func TestVoter_WeightEmpty(t *testing.T) {
	w, err := makeVoter().Weight(makeRegistrar(t), start)
	require.NoError(t, err)
	require.Equal(t, uint64(0), w)
}

func TestVoter_Weight(t *testing.T) {
	r := makeRegistrar(t)
	v := makeVoter()

	_, err := v.CreateDeposit(r, 0, LockupNone, 0, false, 1000, at(1, start))
	require.NoError(t, err)
	w, err := v.Weight(r, start)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), w)

	// half a year of remaining cliff gives 1.5x
	_, err = v.CreateDeposit(r, 0, LockupMonthly, 6, false, 2000, at(1, start))
	require.NoError(t, err)
	w, err = v.Weight(r, start)
	require.NoError(t, err)
	require.Equal(t, uint64(1000+3000), w)

	// fully vested deposits count once
	w, err = v.Weight(r, start+SecsPerYear)
	require.NoError(t, err)
	require.Equal(t, uint64(3000), w)
}

func TestVoter_WeightGrowsWithLockup(t *testing.T) {
	r := makeRegistrar(t)

	var prev uint64
	for days := uint32(1); days <= 365; days += 7 {
		v := makeVoter()
		_, err := v.CreateDeposit(r, 0, LockupCliff, days, false, 1000000, at(1, start))
		require.NoError(t, err)

		w, err := v.Weight(r, start)
		require.NoError(t, err)
		require.True(t, w > prev, "days %d weight %d prev %d", days, w, prev)
		prev = w
	}
}

func TestVoter_WeightUnknownMint(t *testing.T) {
	r := makeRegistrar(t)
	v := makeVoter()
	_, err := v.CreateDeposit(r, 0, LockupNone, 0, false, 10, at(1, start))
	require.NoError(t, err)

	v.Deposits[5] = v.Deposits[0]
	v.Deposits[5].VotingMintConfigIdx = 2

	_, err = v.Weight(r, start)
	require.True(t, errors.Is(err, ErrUnknownMint))
}

func TestVoter_WeightOverflow(t *testing.T) {
	r := makeRegistrar(t)
	v := makeVoter()
	for i := 0; i < 3; i++ {
		_, err := v.CreateDeposit(r, 0, LockupNone, 0, false, ^uint64(0)/2, at(1, start))
		require.NoError(t, err)
	}
	_, err := v.Weight(r, start)
	require.True(t, errors.Is(err, ErrArithmeticOverflow))
}

func TestVoter_CreateDeposit(t *testing.T) {
	t.Run("unknown_mint", func(t *testing.T) {
		_, err := makeVoter().CreateDeposit(makeRegistrar(t), 1, LockupNone, 0, false, 10, at(1, start))
		require.True(t, errors.Is(err, ErrUnknownMint))
	})

	t.Run("full", func(t *testing.T) {
		r := makeRegistrar(t)
		v := makeVoter()
		for i := 0; i < MaxDepositEntries; i++ {
			idx, err := v.CreateDeposit(r, 0, LockupNone, 0, false, 10, at(1, start))
			require.NoError(t, err)
			require.Equal(t, uint8(i), idx)
		}
		_, err := v.CreateDeposit(r, 0, LockupNone, 0, false, 10, at(1, start))
		require.True(t, errors.Is(err, ErrNoFreeDepositEntry))
	})

	t.Run("reuses_freed_slot", func(t *testing.T) {
		r := makeRegistrar(t)
		v := makeVoter()
		for i := 0; i < 3; i++ {
			_, err := v.CreateDeposit(r, 0, LockupNone, 0, false, 10, at(1, start))
			require.NoError(t, err)
		}
		d, err := v.ActiveEntry(1)
		require.NoError(t, err)
		require.NoError(t, d.Withdraw(10, at(2, start)))

		_, err = v.ActiveEntry(1)
		require.True(t, errors.Is(err, ErrInvalidState))

		idx, err := v.CreateDeposit(r, 0, LockupCliff, 2, true, 5, at(3, start))
		require.NoError(t, err)
		require.Equal(t, uint8(1), idx)
		require.Equal(t, 3, v.UsedEntries())
		require.True(t, v.Deposits[1].AllowClawback)
	})

	t.Run("zero_amount", func(t *testing.T) {
		v := makeVoter()
		_, err := v.CreateDeposit(makeRegistrar(t), 0, LockupDaily, 3, false, 0, at(1, start))
		require.True(t, errors.Is(err, ErrZeroAmount))
		require.Zero(t, v.UsedEntries())
	})

	t.Run("bad_index", func(t *testing.T) {
		_, err := makeVoter().Entry(MaxDepositEntries)
		require.True(t, errors.Is(err, ErrInvalidDepositIndex))
	})
}

// Daily deposit with clawback, withdraw in the deposit slot, clawback after
// almost three days and a withdraw of the vested rest.
func TestVoter_ClawbackScenario(t *testing.T) {
	r := makeRegistrar(t)
	v := makeVoter()

	depositSlot := uint64(100)
	idx, err := v.CreateDeposit(r, 0, LockupDaily, 10, true, 10000, at(depositSlot, start))
	require.NoError(t, err)

	d, err := v.ActiveEntry(idx)
	require.NoError(t, err)
	err = d.Withdraw(10000, at(depositSlot, start))
	require.True(t, errors.Is(err, ErrSameTimestampAsDeposit))

	r.TimeOffset = (3*24 - 1) * 60 * 60
	clock := r.Clock(at(depositSlot+2, start))

	clawed, err := d.Clawback(clock)
	require.NoError(t, err)
	require.Equal(t, uint64(8000), clawed)
	require.Equal(t, uint64(2000), d.AmountUnlocked(clock.UnixTimestamp))

	require.NoError(t, d.Withdraw(2000, clock))
	require.False(t, v.Deposits[idx].IsUsed)
	require.Equal(t, 0, v.UsedEntries())

	w, err := v.Weight(r, clock.UnixTimestamp)
	require.NoError(t, err)
	require.Equal(t, uint64(0), w)
}
