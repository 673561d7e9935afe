// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/insolar/voter-stake-registry/configuration"
	"github.com/insolar/voter-stake-registry/observability"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "vsr",
		Short:         "voter stake registry tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to vsr.yaml")
	rootCmd.AddCommand(decodeCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger. Bootstrap messages of
// the configurator go to stderr so stdout stays clean for reports.
func setup() (*configuration.Configuration, *logrus.Logger, error) {
	boot := logrus.New()
	boot.SetOutput(os.Stderr)
	boot.SetLevel(logrus.WarnLevel)

	cfg := configuration.Load(boot, configPath)
	log, err := observability.MakeLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
