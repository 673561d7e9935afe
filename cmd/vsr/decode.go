// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/insolar/voter-stake-registry/internal/app/registry/decode"
	"github.com/insolar/voter-stake-registry/observability"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "report voters from base64 voter/registrar line pairs read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			obs := observability.Make(log)
			reader := decode.NewReader(log, &decode.DefaultClock{}, observability.MakeDecodeMetrics(obs))

			stats, err := reader.Run(os.Stdin, os.Stdout)
			if err != nil {
				return errors.Wrap(err, "failed to read input")
			}
			log.Infof("reported %d voters, %d malformed", stats.Reported, stats.Malformed)
			if stats.Malformed > 0 {
				return errors.Errorf("%d malformed record pairs", stats.Malformed)
			}
			return nil
		},
	}
}
