// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package dbconn

import (
	"github.com/go-pg/pg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/insolar/voter-stake-registry/configuration"
	"github.com/insolar/voter-stake-registry/internal/pkg/cycle"
)

func Connect(cfg configuration.DB) (*pg.DB, error) {
	opt, err := pg.ParseURL(cfg.URL)
	if err != nil {
		// pg.ParseURL uses standard url.Parse
		// witch fills url-string with password into error.
		// So we can't use errors.Wrap here and print error above in code.
		return nil, errors.New("failed to parse cfg.DB.URL")
	}
	opt.PoolSize = cfg.PoolSize
	return pg.Connect(opt), nil
}

// ConnectAndPing connects and waits until the database answers, retrying
// connection errors as configured.
func ConnectAndPing(cfg configuration.DB, log logrus.FieldLogger) (*pg.DB, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	err = cycle.UntilConnectionError(func() error {
		_, err := db.Exec("select 1")
		return err
	}, cfg.AttemptInterval, cfg.Attempts, log)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed request to db")
	}
	return db, nil
}
