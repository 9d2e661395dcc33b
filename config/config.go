// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package config

import (
	"fmt"
	"github.com/caarlos0/env/v11"
	"time"
)

type Conf struct {
	Latitude  float64 `env:"LATITUDE" envDefault:"40.7128"`
	Longitude float64 `env:"LONGITUDE" envDefault:"-74.0060"`
	Timezone  string  `env:"TIMEZONE" envDefault:"America/New_York"`

	BotToken     string `env:"BOT_TOKEN,required"`
	TelegramChat string `env:"TELEGRAM_CHAT_ID,required"`

	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`

	// Cache freshness tunables. The exact thresholds are configuration,
	// not a contract; only the monotonicity of the resulting TTL is.
	TTLFloor           time.Duration `env:"TTL_FLOOR" envDefault:"60s"`
	TTLCeiling         time.Duration `env:"TTL_CEILING" envDefault:"30m"`
	SensitiveThreshold time.Duration `env:"SENSITIVE_THRESHOLD" envDefault:"5m"`
	DefaultTTL         time.Duration `env:"DEFAULT_TTL" envDefault:"60s"`
}

func NewConf() (*Conf, error) {
	cnf := &Conf{}
	if err := env.Parse(cnf); err != nil {
		fmt.Printf("error on parse env config: %v", err)
		return nil, err
	}

	return cnf, nil
}
