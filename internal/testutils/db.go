// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package testutils

import (
	"fmt"
	"log"
	"testing"

	"github.com/go-pg/migrations"
	"github.com/go-pg/pg"
	"github.com/ory/dockertest/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var pgOptions = &pg.Options{
	Addr:            "localhost",
	Database:        "vsr_test_db",
	User:            "postgres",
	Password:        "secret",
	ApplicationName: "vsr",
}

// SetupDB starts postgres in docker and applies the migrations from
// migrationsDir. An error means docker is not usable; callers usually skip.
func SetupDB(migrationsDir string) (*pg.DB, pg.Options, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, pg.Options{}, nil, errors.Wrap(err, "could not connect to docker")
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, pg.Options{}, nil, errors.Wrap(err, "docker is not reachable")
	}

	resource, err := pool.Run(
		"postgres", "11",
		[]string{
			"POSTGRES_DB=" + pgOptions.Database,
			"POSTGRES_PASSWORD=" + pgOptions.Password,
		},
	)
	if err != nil {
		return nil, pg.Options{}, nil, errors.Wrap(err, "could not start resource")
	}

	poolCleaner := func() {
		// When you're done, kill and remove the container
		log.Printf("removing container")
		err := pool.Purge(resource)
		if err != nil {
			log.Printf("failed to purge docker pool: %s", err)
		}
	}

	options := *pgOptions
	options.Addr = fmt.Sprintf("%s:%s", options.Addr, resource.GetPort("5432/tcp"))

	var db *pg.DB
	err = pool.Retry(func() error {
		db = pg.Connect(&options)
		_, err := db.Exec("select 1")
		return err
	})
	if err != nil {
		poolCleaner()
		return nil, pg.Options{}, nil, errors.Wrap(err, "could not start postgres")
	}

	cleaner := func() {
		log.Printf("shutting down db")
		if err := db.Close(); err != nil {
			log.Printf("failed to close db: %s", err)
		}
		poolCleaner()
	}

	if err := Migrate(db, migrationsDir); err != nil {
		cleaner()
		return nil, pg.Options{}, nil, err
	}
	return db, options, cleaner, nil
}

// Migrate initializes the migrations table and applies every migration.
func Migrate(db *pg.DB, migrationsDir string) error {
	migrationCollection := migrations.NewCollection()

	_, _, err := migrationCollection.Run(db, "init")
	if err != nil {
		return errors.Wrap(err, "could not init migrations")
	}

	err = migrationCollection.DiscoverSQLMigrations(migrationsDir)
	if err != nil {
		return errors.Wrap(err, "failed to read migrations")
	}

	_, _, err = migrationCollection.Run(db, "up")
	if err != nil {
		return errors.Wrap(err, "could not migrate")
	}
	return nil
}

func TruncateTables(t *testing.T, db *pg.DB, models []interface{}) {
	for _, m := range models {
		_, err := db.Model(m).Exec("TRUNCATE TABLE ?TableName CASCADE")
		require.NoError(t, err)
	}
}
