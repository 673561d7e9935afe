// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package observability

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/insolar/voter-stake-registry/configuration"
)

// MakeLogger builds a logger from the log section of the configuration.
func MakeLogger(cfg configuration.Log) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse log level")
	}
	log.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Errorf("unknown log format %q", cfg.Format)
	}

	switch strings.ToLower(cfg.OutputType) {
	case "", "stderr":
		log.SetOutput(os.Stderr)
	case "stdout":
		log.SetOutput(os.Stdout)
	default:
		return nil, errors.Errorf("unknown log output %q", cfg.OutputType)
	}
	return log, nil
}

func Make(log logrus.FieldLogger) *Observability {
	return &Observability{
		log:      log,
		metrics:  prometheus.NewRegistry(),
		counters: make(map[string]prometheus.Counter),
		gauges:   make(map[string]prometheus.Gauge),
	}
}

type Observability struct {
	log     logrus.FieldLogger
	metrics *prometheus.Registry

	mu       sync.Mutex
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
}

func (o *Observability) Log() logrus.FieldLogger {
	return o.log
}

func (o *Observability) Metrics() *prometheus.Registry {
	return o.metrics
}

func (o *Observability) Counter(opts prometheus.CounterOpts) prometheus.Counter {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.counters[opts.Name]
	if ok {
		return c
	}
	c = prometheus.NewCounter(opts)
	err := o.metrics.Register(c)
	if err != nil {
		o.log.WithField("metric_collector", opts.Name).
			Errorf("failed to register metric")
		return c
	}
	o.counters[opts.Name] = c
	return c
}

func (o *Observability) Gauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	o.mu.Lock()
	defer o.mu.Unlock()

	g, ok := o.gauges[opts.Name]
	if ok {
		return g
	}
	g = prometheus.NewGauge(opts)
	err := o.metrics.Register(g)
	if err != nil {
		o.log.WithField("metric_collector", opts.Name).
			Errorf("failed to register metric")
		return g
	}
	o.gauges[opts.Name] = g
	return g
}

// InstructionMetrics counts registry instructions by kind.
type InstructionMetrics struct {
	Registrars  prometheus.Counter
	Rates       prometheus.Counter
	Voters      prometheus.Counter
	Deposits    prometheus.Counter
	Withdrawals prometheus.Counter
	Clawbacks   prometheus.Counter
	Lockups     prometheus.Counter
	TimeOffsets prometheus.Counter
	Weights     prometheus.Counter
}

// MakeInstructionMetrics registers one counter per InstructionMetrics field,
// named vsr_<field>_<action>_total.
func MakeInstructionMetrics(obs *Observability, action string) *InstructionMetrics {
	counters := &InstructionMetrics{}
	v := reflect.ValueOf(counters).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := strings.ToLower(t.Field(i).Name)
		name := fmt.Sprintf("vsr_%s_%s_total", field, action)
		help := fmt.Sprintf("Number of %s instructions %s.", field, action)
		opts := prometheus.CounterOpts{
			Name: name,
			Help: help,
		}
		collector := obs.Counter(opts)
		v.Field(i).Set(reflect.ValueOf(collector))
	}
	return counters
}

type DecodeMetrics struct {
	Pairs     prometheus.Counter
	Malformed prometheus.Counter
}

func MakeDecodeMetrics(obs *Observability) *DecodeMetrics {
	return &DecodeMetrics{
		Pairs: obs.Counter(prometheus.CounterOpts{
			Name: "vsr_decode_pairs_total",
			Help: "Number of voter/registrar pairs reported",
		}),
		Malformed: obs.Counter(prometheus.CounterOpts{
			Name: "vsr_decode_malformed_total",
			Help: "Number of voter/registrar pairs that failed to decode",
		}),
	}
}

type APIMetrics struct {
	Requests     prometheus.Counter
	Errors       prometheus.Counter
	LastWeightTs prometheus.Gauge
}

func MakeAPIMetrics(obs *Observability) *APIMetrics {
	return &APIMetrics{
		Requests: obs.Counter(prometheus.CounterOpts{
			Name: "vsr_api_requests_total",
			Help: "Number of API requests served",
		}),
		Errors: obs.Counter(prometheus.CounterOpts{
			Name: "vsr_api_errors_total",
			Help: "Number of API requests answered with an error",
		}),
		LastWeightTs: obs.Gauge(prometheus.GaugeOpts{
			Name: "vsr_api_last_weight_timestamp",
			Help: "Unix timestamp of the last computed voter weight",
		}),
	}
}
