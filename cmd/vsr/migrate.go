// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package main

import (
	"github.com/go-pg/migrations"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/insolar/voter-stake-registry/internal/dbconn"
)

func migrateCmd() *cobra.Command {
	var (
		migrationDir string
		doInit       bool
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}

			db, err := dbconn.ConnectAndPing(cfg.DB, log)
			if err != nil {
				return err
			}
			defer db.Close()

			migrationCollection := migrations.NewCollection()
			if doInit {
				_, _, err := migrationCollection.Run(db, "init")
				if err != nil {
					return errors.Wrap(err, "could not init migrations")
				}
			}

			err = migrationCollection.DiscoverSQLMigrations(migrationDir)
			if err != nil {
				return errors.Wrap(err, "failed to read migrations")
			}

			oldVersion, newVersion, err := migrationCollection.Run(db, "up")
			if err != nil {
				return errors.Wrap(err, "could not migrate")
			}
			log.Infof("migrated successfully from %d to %d", oldVersion, newVersion)
			return nil
		},
	}
	cmd.Flags().StringVar(&migrationDir, "dir", "scripts/migrations", "directory with migrations")
	cmd.Flags().BoolVar(&doInit, "init", false, "perform db init (for empty db)")
	return cmd
}
