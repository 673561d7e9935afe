// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package registry

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func key(b byte) Pubkey {
	var k Pubkey
	for i := range k {
		k[i] = b
	}
	return k
}

func rateEntry(mint Pubkey, decimals uint8, num, den uint64) ExchangeRateEntry {
	return ExchangeRateEntry{
		Mint:                 mint,
		Decimals:             decimals,
		RateNumerator:        num,
		RateDenominator:      den,
		MaxExtraLockupFactor: ScaledFactorBase,
		LockupSaturationSecs: uint64(SecsPerYear),
	}
}

func makeRegistrar(t *testing.T) *Registrar {
	r := &Registrar{
		Realm:              key(1),
		RealmGoverningMint: key(2),
		RealmAuthority:     key(3),
		ClawbackAuthority:  key(3),
		VoteWeightDecimals: 6,
	}
	require.NoError(t, r.ConfigureMint(0, rateEntry(key(2), 6, 1, 1)))
	return r
}

func TestRegistrar_Convert(t *testing.T) {
	r := makeRegistrar(t)
	require.NoError(t, r.ConfigureMint(1, rateEntry(key(10), 9, 1, 1)))
	require.NoError(t, r.ConfigureMint(2, rateEntry(key(11), 0, 2, 1)))
	require.NoError(t, r.ConfigureMint(3, rateEntry(key(12), 6, 1, 3)))

	tests := []struct {
		name   string
		idx    uint8
		amount uint64
		want   uint64
	}{
		{"same_decimals", 0, 1234, 1234},
		{"more_decimals", 1, 1000000000, 1000000},
		{"more_decimals_rounds_down", 1, 1999, 1},
		{"fewer_decimals", 2, 5, 10000000},
		{"fraction", 3, 10, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Convert(tc.idx, tc.amount)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		r := makeRegistrar(t)
		_, err := r.Convert(1, 1)
		require.True(t, errors.Is(err, ErrUnknownMint))
		_, err = r.Convert(MaxVotingMints, 1)
		require.True(t, errors.Is(err, ErrUnknownMint))
	})

	t.Run("overflow", func(t *testing.T) {
		r := makeRegistrar(t)
		require.NoError(t, r.ConfigureMint(1, rateEntry(key(10), 6, ^uint64(0), 1)))
		_, err := r.Convert(1, 2)
		require.True(t, errors.Is(err, ErrArithmeticOverflow))
	})
}

func TestRegistrar_LockupBonus(t *testing.T) {
	r := makeRegistrar(t)
	sat := uint64(SecsPerYear)

	b, err := r.LockupBonus(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, b.Cmp(big.NewRat(1, 1)))

	b, err = r.LockupBonus(0, sat/2)
	require.NoError(t, err)
	require.Equal(t, 0, b.Cmp(big.NewRat(3, 2)))

	b, err = r.LockupBonus(0, sat)
	require.NoError(t, err)
	require.Equal(t, 0, b.Cmp(big.NewRat(2, 1)))

	b, err = r.LockupBonus(0, 10*sat)
	require.NoError(t, err)
	require.Equal(t, 0, b.Cmp(big.NewRat(2, 1)))

	prev := big.NewRat(1, 1)
	for rem := uint64(0); rem <= sat; rem += sat / 50 {
		b, err := r.LockupBonus(0, rem)
		require.NoError(t, err)
		require.True(t, b.Cmp(prev) >= 0)
		prev = b
	}

	_, err = r.LockupBonus(2, 1)
	require.True(t, errors.Is(err, ErrUnknownMint))
}

func TestRegistrar_ConfigureMint(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		r := makeRegistrar(t)
		before := *r
		require.NoError(t, r.ConfigureMint(0, rateEntry(key(2), 6, 1, 1)))
		require.Equal(t, before, *r)
	})

	t.Run("rate_update", func(t *testing.T) {
		r := makeRegistrar(t)
		require.NoError(t, r.ConfigureMint(0, rateEntry(key(2), 6, 3, 1)))
		got, err := r.Convert(0, 10)
		require.NoError(t, err)
		require.Equal(t, uint64(30), got)
	})

	t.Run("other_mint_at_index", func(t *testing.T) {
		r := makeRegistrar(t)
		err := r.ConfigureMint(0, rateEntry(key(9), 6, 1, 1))
		require.True(t, errors.Is(err, ErrMintAlreadyConfigured))
	})

	t.Run("mint_at_two_indices", func(t *testing.T) {
		r := makeRegistrar(t)
		err := r.ConfigureMint(1, rateEntry(key(2), 6, 1, 1))
		require.True(t, errors.Is(err, ErrMintAlreadyConfigured))
	})

	t.Run("decimals_change", func(t *testing.T) {
		r := makeRegistrar(t)
		err := r.ConfigureMint(0, rateEntry(key(2), 9, 1, 1))
		require.True(t, errors.Is(err, ErrMintAlreadyConfigured))
	})

	t.Run("invalid", func(t *testing.T) {
		r := makeRegistrar(t)
		require.Error(t, r.ConfigureMint(1, rateEntry(key(9), 6, 1, 0)))
		require.Error(t, r.ConfigureMint(1, rateEntry(Pubkey{}, 6, 1, 1)))
		require.True(t, errors.Is(r.ConfigureMint(MaxVotingMints, rateEntry(key(9), 6, 1, 1)), ErrUnknownMint))
	})
}

func TestRegistrar_MintIndex(t *testing.T) {
	r := makeRegistrar(t)
	idx, err := r.MintIndex(key(2))
	require.NoError(t, err)
	require.Equal(t, uint8(0), idx)

	_, err = r.MintIndex(key(77))
	require.True(t, errors.Is(err, ErrUnknownMint))
}

func TestRegistrar_Clock(t *testing.T) {
	r := makeRegistrar(t)
	r.TimeOffset = 3600
	c := r.Clock(Clock{Slot: 7, UnixTimestamp: start})
	require.Equal(t, uint64(7), c.Slot)
	require.Equal(t, start+3600, c.UnixTimestamp)
}

func TestPubkey(t *testing.T) {
	k := key(5)
	parsed, err := ParsePubkey(k.String())
	require.NoError(t, err)
	require.Equal(t, k, parsed)

	_, err = ParsePubkey("abc")
	require.Error(t, err)
	_, err = ParsePubkey("")
	require.Error(t, err)

	text, err := k.MarshalText()
	require.NoError(t, err)
	var back Pubkey
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, k, back)
}
