// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package configuration

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_replacePassword(t *testing.T) {
	const password = "super_secret_password"
	const with = "postgresql://vsr:" + password + "@127.0.0.1:5432/dev-vsr?sslmode=disable"
	const without = "postgres://postgres@localhost/postgres?sslmode=disable"

	t.Run("replaced", func(t *testing.T) {
		require.Contains(t, with, password)
		require.NotContains(t, replacePassword(with), password)
	})

	t.Run("not_replaced", func(t *testing.T) {
		require.NotContains(t, without, password)
		require.NotContains(t, replacePassword(without), password)
		require.Equal(t, without, replacePassword(without))
	})

	t.Run("config_untouched", func(t *testing.T) {
		c := Default()
		c.DB.URL = with
		cc := cleanSecrets(c)
		require.Equal(t, with, c.DB.URL)
		require.NotContains(t, cc.DB.URL, password)
	})
}

func TestLoad(t *testing.T) {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)

	t.Run("file", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "vsr-config")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "vsr.yaml")
		content := `
log:
  level: debug
api:
  listen: ":9999"
registry:
  allowtimeoffset: true
db:
  attemptinterval: 1s
`
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0600))

		cfg := Load(log, path)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, ":9999", cfg.API.Listen)
		require.True(t, cfg.Registry.AllowTimeOffset)
		require.Equal(t, time.Second, cfg.DB.AttemptInterval)
		// keys missing from the file keep their defaults
		require.Equal(t, Default().DB.URL, cfg.DB.URL)
		require.Equal(t, Default().Registry.RegistrarCacheSize, cfg.Registry.RegistrarCacheSize)
	})

	t.Run("broken_file", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "vsr-config")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "vsr.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("log: [unclosed"), 0600))

		require.Equal(t, Default(), Load(log, path))
	})
}
