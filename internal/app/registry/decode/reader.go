// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package decode

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/insolar/voter-stake-registry/internal/app/registry"
	"github.com/insolar/voter-stake-registry/internal/app/registry/account"
	"github.com/insolar/voter-stake-registry/observability"
)

const maxLineSize = 1 << 20

type Stats struct {
	Reported  int
	Malformed int
}

// Reader turns a stream of base64 account lines into voter reports.
// Lines go in pairs: a voter account followed by its registrar account.
// Blank lines and lines starting with # are skipped.
type Reader struct {
	log     logrus.FieldLogger
	clock   Clock
	metrics *observability.DecodeMetrics
}

func NewReader(log logrus.FieldLogger, clock Clock, metrics *observability.DecodeMetrics) *Reader {
	return &Reader{log: log, clock: clock, metrics: metrics}
}

type line struct {
	number int
	text   string
}

// Run reports every pair read from in to out. A malformed pair is logged
// and skipped; only read and write failures stop the run.
func (r *Reader) Run(in io.Reader, out io.Writer) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var pending *line
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if pending == nil {
			pending = &line{number: number, text: text}
			continue
		}
		voterLine, registrarLine := *pending, line{number: number, text: text}
		pending = nil

		output, err := r.pair(voterLine, registrarLine)
		if err != nil {
			r.malformed(&stats, err, voterLine.number, registrarLine.number)
			continue
		}
		if _, err := io.WriteString(out, output); err != nil {
			return stats, errors.Wrap(err, "failed to write report")
		}
		stats.Reported++
		r.metrics.Pairs.Inc()
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.Wrapf(err, "failed to read line %d", number+1)
	}
	if pending != nil {
		r.malformed(&stats, errors.Wrap(registry.ErrMalformedRecord, "voter account without registrar account"), pending.number, 0)
	}
	return stats, nil
}

func (r *Reader) malformed(stats *Stats, err error, voterLine, registrarLine int) {
	fields := logrus.Fields{"voter_line": voterLine}
	if registrarLine > 0 {
		fields["registrar_line"] = registrarLine
	}
	r.log.WithFields(fields).WithError(err).Error("failed to decode account pair")
	stats.Malformed++
	r.metrics.Malformed.Inc()
}

// pair decodes one voter/registrar pair and renders its report. Nothing is
// rendered unless the whole pair is valid.
func (r *Reader) pair(voterLine, registrarLine line) (string, error) {
	voterData, err := decodeLine(voterLine)
	if err != nil {
		return "", err
	}
	registrarData, err := decodeLine(registrarLine)
	if err != nil {
		return "", err
	}

	if kind, err := account.KindOf(voterData); err != nil {
		return "", errors.Wrapf(err, "line %d", voterLine.number)
	} else if kind != account.KindVoter {
		return "", errors.Wrapf(registry.ErrMalformedRecord, "line %d: %s account where voter expected", voterLine.number, kind)
	}
	if kind, err := account.KindOf(registrarData); err != nil {
		return "", errors.Wrapf(err, "line %d", registrarLine.number)
	} else if kind != account.KindRegistrar {
		return "", errors.Wrapf(registry.ErrMalformedRecord, "line %d: %s account where registrar expected", registrarLine.number, kind)
	}

	voter, err := account.DecodeVoter(voterData)
	if err != nil {
		return "", errors.Wrapf(err, "line %d", voterLine.number)
	}
	registrar, err := account.DecodeRegistrar(registrarData)
	if err != nil {
		return "", errors.Wrapf(err, "line %d", registrarLine.number)
	}

	report, weight, err := Report(voter, registrar, r.clock.Now().Unix())
	if err != nil {
		return "", errors.Wrapf(err, "weight of voter on line %d", voterLine.number)
	}
	encoded, err := json.Marshal(report)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal report")
	}
	return fmt.Sprintf("%s\nweight: %d\n", encoded, weight), nil
}

func decodeLine(l line) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(l.text)
	if err != nil {
		return nil, errors.Wrapf(registry.ErrMalformedRecord, "line %d: bad base64: %v", l.number, err)
	}
	return data, nil
}
