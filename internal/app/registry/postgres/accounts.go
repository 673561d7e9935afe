// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package postgres

import (
	"context"
	"time"

	"github.com/go-pg/pg"
	"github.com/pkg/errors"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
	"github.com/insolar/voter-stake-registry/internal/app/registry/account"
)

// Account is a stored registry account. Owner is the realm of a registrar
// or the registrar of a voter.
type Account struct {
	tableName struct{} `sql:"accounts"` //nolint: unused,structcheck

	Key     []byte    `sql:"key,pk"`
	Kind    string    `sql:"kind,notnull"`
	Owner   []byte    `sql:"owner,notnull"`
	Data    []byte    `sql:"data,notnull"`
	Updated time.Time `sql:"updated,notnull"`
}

type AccountRepository struct {
	db *pg.DB
}

func NewAccountRepository(db *pg.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) load(ctx context.Context, key registry.Pubkey, kind account.Kind) ([]byte, error) {
	acc := &Account{}
	err := r.db.WithContext(ctx).Model(acc).
		Where("key = ?", key.Bytes()).
		Where("kind = ?", string(kind)).
		Select()
	if err == pg.ErrNoRows {
		return nil, errors.Wrapf(registry.ErrNotFound, "%s %s", kind, key)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed request to db")
	}
	return acc.Data, nil
}

func (r *AccountRepository) Registrar(ctx context.Context, key registry.Pubkey) (*registry.Registrar, error) {
	data, err := r.load(ctx, key, account.KindRegistrar)
	if err != nil {
		return nil, err
	}
	return account.DecodeRegistrar(data)
}

func (r *AccountRepository) Voter(ctx context.Context, key registry.Pubkey) (*registry.Voter, error) {
	data, err := r.load(ctx, key, account.KindVoter)
	if err != nil {
		return nil, err
	}
	return account.DecodeVoter(data)
}

func (r *AccountRepository) save(ctx context.Context, acc *Account) error {
	acc.Updated = time.Now().UTC()
	return r.db.WithContext(ctx).RunInTransaction(func(tx *pg.Tx) error {
		var kind string
		_, err := tx.QueryOne(pg.Scan(&kind), "select kind from accounts where key = ? for update", acc.Key)
		if err != nil && err != pg.ErrNoRows {
			return errors.Wrap(err, "failed request to db")
		}
		if err == nil && kind != acc.Kind {
			return errors.Errorf("key is taken by a %s account", kind)
		}
		_, err = tx.Model(acc).
			OnConflict("(key) DO UPDATE").
			Set("kind = EXCLUDED.kind").
			Set("owner = EXCLUDED.owner").
			Set("data = EXCLUDED.data").
			Set("updated = EXCLUDED.updated").
			Insert()
		if err != nil {
			return errors.Wrap(err, "failed to upsert account")
		}
		return nil
	})
}

func (r *AccountRepository) SaveRegistrar(ctx context.Context, key registry.Pubkey, registrar *registry.Registrar) error {
	return r.save(ctx, &Account{
		Key:   key.Bytes(),
		Kind:  string(account.KindRegistrar),
		Owner: registrar.Realm.Bytes(),
		Data:  account.EncodeRegistrar(registrar),
	})
}

func (r *AccountRepository) SaveVoter(ctx context.Context, key registry.Pubkey, voter *registry.Voter) error {
	return r.save(ctx, &Account{
		Key:   key.Bytes(),
		Kind:  string(account.KindVoter),
		Owner: voter.Registrar.Bytes(),
		Data:  account.EncodeVoter(voter),
	})
}

func (r *AccountRepository) VotersByRegistrar(ctx context.Context, registrar registry.Pubkey) ([]registry.Pubkey, error) {
	var rows []Account
	err := r.db.WithContext(ctx).Model(&rows).
		Column("key").
		Where("kind = ?", string(account.KindVoter)).
		Where("owner = ?", registrar.Bytes()).
		Order("key").
		Select()
	if err != nil {
		return nil, errors.Wrap(err, "failed request to db")
	}
	keys := make([]registry.Pubkey, 0, len(rows))
	for _, row := range rows {
		k, err := registry.PubkeyFromBytes(row.Key)
		if err != nil {
			return nil, errors.Wrapf(registry.ErrMalformedRecord, "account key %x", row.Key)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
