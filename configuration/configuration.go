// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package configuration

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/insolar/voter-stake-registry/internal/pkg/cycle"
)

type Configuration struct {
	Log      Log
	DB       DB
	API      API
	Registry Registry
}

type Log struct {
	Level string
	// text or json
	Format string
	// stderr or stdout
	OutputType string
}

type DB struct {
	URL      string
	PoolSize int
	Attempts cycle.Limit
	// Interval between failed connection attempts
	AttemptInterval time.Duration
}

type API struct {
	Listen string
}

type Registry struct {
	// Allows registrar authorities to shift the registrar clock.
	// Never enable it outside of test networks.
	AllowTimeOffset    bool
	RegistrarCacheSize int
}

func Default() *Configuration {
	return &Configuration{
		Log: Log{
			Level:      logrus.InfoLevel.String(),
			Format:     "text",
			OutputType: "stderr",
		},
		DB: DB{
			URL:             "postgres://postgres@localhost/postgres?sslmode=disable",
			PoolSize:        20,
			Attempts:        5,
			AttemptInterval: 3 * time.Second,
		},
		API: API{
			Listen: ":8080",
		},
		Registry: Registry{
			AllowTimeOffset:    false,
			RegistrarCacheSize: 1000,
		},
	}
}
