// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
	"github.com/insolar/voter-stake-registry/internal/app/registry/decode"
	"github.com/insolar/voter-stake-registry/observability"
)

type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

//go:generate minimock -i github.com/insolar/voter-stake-registry/internal/app/api.AccountReader -o ./ -s _mock.go -g
type AccountReader interface {
	Registrar(ctx context.Context, key registry.Pubkey) (*registry.Registrar, error)
	Voter(ctx context.Context, key registry.Pubkey) (*registry.Voter, error)
}

type RegistryServer struct {
	accounts AccountReader
	log      logrus.FieldLogger
	clock    Clock
	metrics  *observability.APIMetrics
}

func NewRegistryServer(accounts AccountReader, log logrus.FieldLogger, clock Clock, metrics *observability.APIMetrics) *RegistryServer {
	return &RegistryServer{accounts: accounts, log: log, clock: clock, metrics: metrics}
}

func (s *RegistryServer) fail(ctx echo.Context, err error) error {
	s.metrics.Errors.Inc()
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return ctx.JSON(http.StatusNotFound, NewSingleMessageError(err.Error()))
	case errors.Is(err, registry.ErrUnknownMint), errors.Is(err, registry.ErrArithmeticOverflow):
		return ctx.JSON(http.StatusUnprocessableEntity, NewSingleMessageError(err.Error()))
	}
	s.log.WithField("path", ctx.Path()).Error(err)
	return ctx.JSON(http.StatusInternalServerError, NewSingleMessageError("internal error"))
}

func (s *RegistryServer) GetRegistrar(ctx echo.Context, registrar string) error {
	s.metrics.Requests.Inc()
	key, err := registry.ParsePubkey(registrar)
	if err != nil {
		s.metrics.Errors.Inc()
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("registrar wrong format"))
	}

	reg, err := s.accounts.Registrar(ctx.Request().Context(), key)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, RegistrarToAPIRegistrar(reg))
}

// voterAccounts loads a voter and its registrar.
func (s *RegistryServer) voterAccounts(ctx echo.Context, key registry.Pubkey) (*registry.Voter, *registry.Registrar, error) {
	v, err := s.accounts.Voter(ctx.Request().Context(), key)
	if err != nil {
		return nil, nil, err
	}
	reg, err := s.accounts.Registrar(ctx.Request().Context(), v.Registrar)
	if err != nil {
		return nil, nil, err
	}
	return v, reg, nil
}

// GetVoter reports the deposit entries at the wall time, like the decode
// tool does. Only the weight uses the registrar clock.
func (s *RegistryServer) GetVoter(ctx echo.Context, voter string) error {
	s.metrics.Requests.Inc()
	key, err := registry.ParsePubkey(voter)
	if err != nil {
		s.metrics.Errors.Inc()
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("voter wrong format"))
	}
	v, reg, err := s.voterAccounts(ctx, key)
	if err != nil {
		return s.fail(ctx, err)
	}

	now := s.clock.Now().Unix()
	report, weight, err := decode.Report(v, reg, now)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.LastWeightTs.Set(float64(reg.ClockUnixTimestamp(now)))
	return ctx.JSON(http.StatusOK, VoterToAPIVoter(v, report, weight, now))
}

// GetVoterWeight computes the weight at the requested wall time. The
// returned timestamp is on the registrar clock, time offset included.
func (s *RegistryServer) GetVoterWeight(ctx echo.Context, voter string, params GetVoterWeightParams) error {
	s.metrics.Requests.Inc()
	key, err := registry.ParsePubkey(voter)
	if err != nil {
		s.metrics.Errors.Inc()
		return ctx.JSON(http.StatusBadRequest, NewSingleMessageError("voter wrong format"))
	}
	v, reg, err := s.voterAccounts(ctx, key)
	if err != nil {
		return s.fail(ctx, err)
	}

	wall := s.clock.Now().Unix()
	if params.Timestamp != nil {
		wall = *params.Timestamp
	}
	now := reg.ClockUnixTimestamp(wall)
	weight, err := v.Weight(reg, now)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.metrics.LastWeightTs.Set(float64(now))
	return ctx.JSON(http.StatusOK, ResponseWeight{
		Timestamp: now,
		Voter:     voter,
		Weight:    formatAmount(weight),
	})
}
