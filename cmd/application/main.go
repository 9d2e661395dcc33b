// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/czdtech/planetary-hours/config"
	"github.com/czdtech/planetary-hours/internal/application"
	"github.com/czdtech/planetary-hours/internal/infrastructure"
)

var cnf *config.Conf

var calcSrv *application.Calculator
var notifySrv application.NotifyService
var tracker *application.HourTracker
var ttlPolicy application.TTLPolicy

func init() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var err error
	cnf, err = config.NewConf()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	calcSrv = application.NewCalculator(
		infrastructure.NewSunEventService(),
		infrastructure.NewMemoryCache(),
	)
	notifySrv = infrastructure.NewTelegramNotifyService(cnf.BotToken, cnf.TelegramChat)
	ttlPolicy = application.TTLPolicy{
		Floor:              cnf.TTLFloor,
		Ceiling:            cnf.TTLCeiling,
		SensitiveThreshold: cnf.SensitiveThreshold,
		Default:            cnf.DefaultTTL,
	}

	tracker = application.NewHourTracker(
		application.NewCoveredState(calcSrv, notifySrv, cnf.Latitude, cnf.Longitude, cnf.Timezone),
		application.NewUncoveredState(calcSrv, notifySrv, cnf.Latitude, cnf.Longitude, cnf.Timezone),
	)
}

func main() {
	log.Info().
		Float64("lat", cnf.Latitude).Float64("lon", cnf.Longitude).
		Str("timezone", cnf.Timezone).
		Msg("planetary hours tracker starting")

	for {
		tracker.Check()
		time.Sleep(nextWake())
	}
}

// nextWake sleeps for the poll interval, shortened by the freshness
// policy so a planetary-hour transition is never slept through.
func nextWake() time.Duration {
	sleep := cnf.PollInterval

	now := time.Now()
	result, _, ok, err := calcSrv.CurrentHour(now, cnf.Latitude, cnf.Longitude, cnf.Timezone)
	if err != nil || !ok {
		return sleep
	}

	ttl := ttlPolicy.Calculate(result, now)
	if d := time.Duration(ttl.TTLSeconds) * time.Second; d < sleep {
		sleep = d
	}

	return sleep
}
