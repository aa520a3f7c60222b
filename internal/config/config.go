package config

import (
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var lock = &sync.Mutex{}
var configInstance *ConfigType

// Config returns the process-wide configuration, loading a .env file first when one exists.
func Config() *ConfigType {
	lock.Lock()
	defer lock.Unlock()
	if configInstance == nil {
		if _, err := os.Stat(".env"); !os.IsNotExist(err) {
			logrus.Info("found .env file")
			if err := godotenv.Load(); err != nil {
				logrus.WithError(err).Fatal("can not load .env file")
			}
		} else {
			logrus.Info("no .env file found")
		}
		cfg, err := Load()
		if err != nil {
			panic(err)
		}
		configInstance = cfg
		logrus.Infof("config loaded (owners: %v, state backend: %s)", cfg.RuntimeConfig.OwnerIDs, cfg.RuntimeConfig.StateBackend)
	}
	return configInstance
}

// Load parses the environment into a fresh ConfigType without touching the singleton.
func Load() (*ConfigType, error) {
	cfg := &ConfigType{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RelayEnabled reports whether large uploads can be staged through the relay session.
func (c *ConfigType) RelayEnabled() bool {
	return c.TelegramConfig.RelaySession != "" && c.TelegramConfig.LogGroup != 0
}
