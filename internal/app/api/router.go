// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

//go:generate oapi-codegen -generate types,server -package api -o server.gen.go ../../../api/registry-api.yaml

package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/insolar/voter-stake-registry/configuration"
	"github.com/insolar/voter-stake-registry/observability"
)

// Router serves the registry API next to health and metrics endpoints.
type Router struct {
	e   *echo.Echo
	cfg configuration.API
	obs *observability.Observability
}

func NewRouter(cfg configuration.API, obs *observability.Observability, si ServerInterface) *Router {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	r := &Router{e: e, cfg: cfg, obs: obs}
	e.GET("/healthcheck", r.healthCheck)
	e.GET("/metrics", r.metrics)
	RegisterHandlers(e, si)
	return r
}

func (r *Router) Use(mw ...echo.MiddlewareFunc) {
	r.e.Use(mw...)
}

func (r *Router) Handler() http.Handler {
	return r.e
}

func (r *Router) Start() {
	log := r.obs.Log()
	go func() {
		err := r.e.Start(r.cfg.Listen)
		if err != http.ErrServerClosed {
			log.Error(errors.Wrapf(err, "http server ListenAndServe"))
		}
	}()
}

func (r *Router) Stop(ctx context.Context) {
	log := r.obs.Log()

	if err := r.e.Shutdown(ctx); err != nil {
		log.Error(errors.Wrapf(err, "http server shutdown"))
	}
}

func (r *Router) healthCheck(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}

func (r *Router) metrics(ctx echo.Context) error {
	ops := promhttp.HandlerOpts{
		ErrorLog: r.obs.Log(),
	}
	handler := promhttp.HandlerFor(r.obs.Metrics(), ops)
	handler.ServeHTTP(ctx.Response(), ctx.Request())
	return nil
}
