// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/insolar/voter-stake-registry/configuration"
	"github.com/insolar/voter-stake-registry/internal/app/api"
	"github.com/insolar/voter-stake-registry/internal/app/registry/instruction"
	"github.com/insolar/voter-stake-registry/internal/app/registry/postgres"
	"github.com/insolar/voter-stake-registry/internal/dbconn"
	"github.com/insolar/voter-stake-registry/observability"
)

var stop = make(chan os.Signal, 1)

func main() {
	cfg := configuration.Load(logrus.StandardLogger(), os.Getenv("VSR_CONFIG"))
	logger, err := observability.MakeLogger(cfg.Log)
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := dbconn.ConnectAndPing(cfg.DB, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	accounts, err := instruction.NewCachedStore(postgres.NewAccountRepository(db), cfg.Registry.RegistrarCacheSize)
	if err != nil {
		logger.Fatal(err)
	}

	obs := observability.Make(logger)
	server := api.NewRegistryServer(accounts, logger, &api.DefaultClock{}, observability.MakeAPIMetrics(obs))
	router := api.NewRouter(cfg.API, obs, server)
	router.Use(middleware.Logger())

	router.Start()
	graceful(logger, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		router.Stop(ctx)
	})
}

func graceful(logger logrus.FieldLogger, that func()) {
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Infof("gracefully stopping...")
	that()
}
