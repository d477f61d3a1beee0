package config

import (
	"time"

	"github.com/jcooky/go-din"
)

type DirectoryConfig struct {
	LogConfig

	Host                string `env:"HOST"`
	Port                int    `env:"PORT"`
	DatabaseUrl         string `env:"DATABASE_URL"`
	DatabaseAutoMigrate bool   `env:"DATABASE_AUTO_MIGRATE"`

	// Liveness sweep tuning, both in seconds.
	CheckLiveInterval int `env:"CHECK_LIVE_INTERVAL"`
	StaleAfter        int `env:"STALE_AFTER"`
}

func (c *DirectoryConfig) CheckLiveIntervalDur() time.Duration {
	return time.Duration(c.CheckLiveInterval) * time.Second
}

func (c *DirectoryConfig) StaleAfterDur() time.Duration {
	return time.Duration(c.StaleAfter) * time.Second
}

func init() {
	din.RegisterT(func(c *din.Container) (*DirectoryConfig, error) {
		conf := &DirectoryConfig{
			LogConfig: *NewLogConfig(),

			Host:                "0.0.0.0",
			Port:                9080,
			DatabaseUrl:         "file::memory:?cache=shared",
			DatabaseAutoMigrate: true,
			CheckLiveInterval:   60,
			StaleAfter:          150,
		}
		return conf, resolveConfig(conf)
	})
}
