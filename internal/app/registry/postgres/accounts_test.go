// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/go-pg/pg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
	"github.com/insolar/voter-stake-registry/internal/app/registry/instruction"
	"github.com/insolar/voter-stake-registry/internal/app/registry/postgres"
	"github.com/insolar/voter-stake-registry/internal/testutils"
)

var db *pg.DB

func TestMain(t *testing.M) {
	var cleaner func()
	var err error
	db, _, cleaner, err = testutils.SetupDB("../../../../scripts/migrations")
	if err != nil {
		// no docker, the tests below skip themselves
		os.Exit(t.Run())
	}
	retCode := t.Run()
	cleaner()
	os.Exit(retCode)
}

func requireDB(t *testing.T) {
	if db == nil {
		t.Skip("postgres is not available")
	}
	testutils.TruncateTables(t, db, []interface{}{&postgres.Account{}})
}

func key(b byte) registry.Pubkey {
	var k registry.Pubkey
	for i := range k {
		k[i] = b
	}
	return k
}

var _ instruction.AccountStore = (*postgres.AccountRepository)(nil)

func TestAccountRepository_Registrar(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := postgres.NewAccountRepository(db)

	_, err := repo.Registrar(ctx, key(1))
	require.True(t, errors.Is(err, registry.ErrNotFound))

	reg := &registry.Registrar{Realm: key(2), RealmAuthority: key(3), VoteWeightDecimals: 6}
	require.NoError(t, reg.ConfigureMint(0, registry.ExchangeRateEntry{
		Mint: key(4), Decimals: 6, RateNumerator: 1, RateDenominator: 1,
	}))
	require.NoError(t, repo.SaveRegistrar(ctx, key(1), reg))

	got, err := repo.Registrar(ctx, key(1))
	require.NoError(t, err)
	require.Equal(t, reg, got)

	reg.TimeOffset = 3600
	require.NoError(t, repo.SaveRegistrar(ctx, key(1), reg))
	got, err = repo.Registrar(ctx, key(1))
	require.NoError(t, err)
	require.Equal(t, int64(3600), got.TimeOffset)

	// the key belongs to a registrar
	_, err = repo.Voter(ctx, key(1))
	require.True(t, errors.Is(err, registry.ErrNotFound))
	require.Error(t, repo.SaveVoter(ctx, key(1), &registry.Voter{}))
}

func TestAccountRepository_Voters(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := postgres.NewAccountRepository(db)

	reg := &registry.Registrar{VoteWeightDecimals: 6}
	require.NoError(t, reg.ConfigureMint(0, registry.ExchangeRateEntry{
		Mint: key(4), Decimals: 6, RateNumerator: 1, RateDenominator: 1,
	}))

	voter := &registry.Voter{VoterAuthority: key(5), Registrar: key(1)}
	_, err := voter.CreateDeposit(reg, 0, registry.LockupDaily, 10, true, 10000, registry.Clock{Slot: 1, UnixTimestamp: 1600000000})
	require.NoError(t, err)

	require.NoError(t, repo.SaveVoter(ctx, key(21), voter))
	require.NoError(t, repo.SaveVoter(ctx, key(20), &registry.Voter{Registrar: key(1)}))
	require.NoError(t, repo.SaveVoter(ctx, key(22), &registry.Voter{Registrar: key(2)}))

	got, err := repo.Voter(ctx, key(21))
	require.NoError(t, err)
	require.Equal(t, voter, got)

	keys, err := repo.VotersByRegistrar(ctx, key(1))
	require.NoError(t, err)
	require.Equal(t, []registry.Pubkey{key(20), key(21)}, keys)
}

func TestAccountRepository_WithProcessorCache(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	store, err := instruction.NewCachedStore(postgres.NewAccountRepository(db), 10)
	require.NoError(t, err)

	reg := &registry.Registrar{Realm: key(7)}
	require.NoError(t, store.SaveRegistrar(ctx, key(8), reg))
	got, err := store.Registrar(ctx, key(8))
	require.NoError(t, err)
	require.Equal(t, reg, got)
}
