// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package cycle

import (
	"io/ioutil"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestUntilConnectionError(t *testing.T) {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)

	t.Run("retries connection errors", func(t *testing.T) {
		calls := 0
		err := UntilConnectionError(func() error {
			calls++
			if calls < 3 {
				return errors.New("dial tcp: connection refused")
			}
			return nil
		}, 0, 5, log)
		require.NoError(t, err)
		require.Equal(t, 3, calls)
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		calls := 0
		err := UntilConnectionError(func() error {
			calls++
			return errors.New("unexpected EOF")
		}, 0, 2, log)
		require.Error(t, err)
		require.Equal(t, 2, calls)
	})

	t.Run("other errors are returned at once", func(t *testing.T) {
		calls := 0
		err := UntilConnectionError(func() error {
			calls++
			return errors.New("relation does not exist")
		}, 0, INFINITY, log)
		require.EqualError(t, err, "relation does not exist")
		require.Equal(t, 1, calls)
	})
}
