// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package cycle

import (
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Limit int

const (
	INFINITY Limit = math.MaxInt32
)

// UntilConnectionError calls f until it succeeds, fails with an error that
// is not a connection error, or attempts run out. The last error is returned.
func UntilConnectionError(f func() error, interval time.Duration, attempts Limit, log logrus.FieldLogger) error {
	counter := Limit(1)
	if attempts < 1 {
		attempts = 1
	}
	for {
		err := f()
		if err == nil {
			return nil
		}
		if !isConnectionError(err) || counter >= attempts {
			return err
		}
		log.Errorf("Connection error, try again (attempt %d, totalAttempts %d) %+v", counter, attempts, err)
		counter++
		time.Sleep(interval)
	}
}

func isConnectionError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "connection") || strings.Contains(msg, "EOF")
}
