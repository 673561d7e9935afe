// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/voter-stake-registry/blob/master/LICENSE.md.

package configuration

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const (
	ConfigName     = "vsr"
	ConfigType     = "yaml"
	ConfigFilePath = ConfigName + "." + ConfigType
	EnvPrefix      = "vsr"
)

// Load reads the configuration from path, or from vsr.yaml in the working
// directory or .artifacts when path is empty. Environment variables with the
// VSR_ prefix override file values. A missing or broken file falls back to
// Default.
func Load(log logrus.FieldLogger, path string) *Configuration {
	printWorkingDir(log)
	actual := load(log, path)
	printConfig(log, actual)
	return actual
}

func newViper(path string) *viper.Viper {
	v := viper.New()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(EnvPrefix)

	if path != "" {
		v.SetConfigFile(path)
		return v
	}
	v.SetConfigName(ConfigName)
	v.SetConfigType(ConfigType)
	v.AddConfigPath(".")
	v.AddConfigPath(".artifacts")
	return v
}

func load(log logrus.FieldLogger, path string) *Configuration {
	v := newViper(path)
	bindDefaults(v, Default())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warnf("config file not found (file=%v). Default configuration is used", ConfigFilePath)
		} else {
			log.Error(errors.Wrapf(err, "failed to load config. Default configuration is used"))
			return Default()
		}
	}

	actual := &Configuration{}
	err := v.Unmarshal(actual)
	if err != nil {
		log.Error(errors.Wrapf(err, "failed to unmarshal readed from file config into configuration structure. Default configuration is used"))
		return Default()
	}

	return actual
}

// bindDefaults registers every key so environment variables are picked up
// even without a config file.
func bindDefaults(v *viper.Viper, d *Configuration) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.outputtype", d.Log.OutputType)
	v.SetDefault("db.url", d.DB.URL)
	v.SetDefault("db.poolsize", d.DB.PoolSize)
	v.SetDefault("db.attempts", int(d.DB.Attempts))
	v.SetDefault("db.attemptinterval", d.DB.AttemptInterval)
	v.SetDefault("api.listen", d.API.Listen)
	v.SetDefault("registry.allowtimeoffset", d.Registry.AllowTimeOffset)
	v.SetDefault("registry.registrarcachesize", d.Registry.RegistrarCacheSize)
}

func printWorkingDir(log logrus.FieldLogger) {
	wd, _ := os.Getwd()
	log.Infof("Working dir: %s", wd)
}

func printConfig(log logrus.FieldLogger, c *Configuration) {
	cc := cleanSecrets(c)
	out, err := yaml.Marshal(cc)
	if err != nil {
		log.Error(errors.Wrapf(err, "failed to marshal config structure"))
		return
	}
	log.Infof("Loaded configuration: \n %s \n", string(out))
}

func cleanSecrets(c *Configuration) *Configuration {
	cc := *c
	cc.DB.URL = replacePassword(cc.DB.URL)
	return &cc
}

func replacePassword(url string) string {
	re := regexp.MustCompile(`^(?P<start>.*)(:(?P<pass>[^@\/:?]+)@)(?P<end>.*)$`)
	result := []byte{}
	if re.MatchString(url) {
		for _, submatches := range re.FindAllStringSubmatchIndex(url, -1) {
			result = re.ExpandString(result, `$start:<masked>@$end`, url, submatches)
		}
		return string(result)
	}
	return url
}
