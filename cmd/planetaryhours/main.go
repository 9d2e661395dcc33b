// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/czdtech/planetary-hours/internal/application"
	"github.com/czdtech/planetary-hours/internal/infrastructure"
)

var (
	flagDate       string
	flagLat        float64
	flagLon        float64
	flagTimezone   string
	flagJSON       bool
	flagTwentyFour bool
)

var rootCmd = &cobra.Command{
	Use:   "planetaryhours",
	Short: "Planetary hours calculator",
	Long:  "Computes the 24 planetary hours between sunrise and the next sunrise for a location, date, and IANA timezone.",
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the full planetary-hour schedule for a date",
	RunE:  runSchedule,
}

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current planetary hour and its cache TTL",
	RunE:  runNow,
}

func init() {
	for _, cmd := range []*cobra.Command{scheduleCmd, nowCmd} {
		cmd.Flags().Float64Var(&flagLat, "lat", 40.7128, "latitude in decimal degrees")
		cmd.Flags().Float64Var(&flagLon, "lon", -74.0060, "longitude in decimal degrees")
		cmd.Flags().StringVar(&flagTimezone, "timezone", "America/New_York", "IANA timezone name")
		cmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON instead of a table")
		cmd.Flags().BoolVar(&flagTwentyFour, "24h", true, "use 24-hour clock output")
	}
	scheduleCmd.Flags().StringVar(&flagDate, "date", "", "calendar date (2006-01-02), default today in the timezone")

	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(nowCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCalculator() *application.Calculator {
	return application.NewCalculator(
		infrastructure.NewSunEventService(),
		infrastructure.NewMemoryCache(),
	)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	calc := newCalculator()

	var result *application.CalculationResult
	var err error
	if flagDate == "" {
		result, err = calc.Calculate(time.Now(), flagLat, flagLon, flagTimezone)
	} else {
		result, err = calc.CalculateDate(flagDate, flagLat, flagLon, flagTimezone)
	}
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(result.Record())
	}

	loc := result.Location()
	fmt.Printf("Planetary hours for %s at (%.4f, %.4f) %s\n",
		result.Date, result.Latitude, result.Longitude, result.Timezone)
	fmt.Printf("Day ruler: %s %s\n\n", result.DayRuler, result.DayRuler.Symbol())
	for _, h := range result.Hours {
		half := "day"
		if !h.IsDay {
			half = "night"
		}
		fmt.Printf("%2d  %-5s  %s  %s %s\n",
			h.Ordinal, half, h.FormatRange(loc, flagTwentyFour), h.Ruler.Symbol(), h.Ruler)
	}
	return nil
}

func runNow(cmd *cobra.Command, args []string) error {
	calc := newCalculator()
	now := time.Now()

	result, hour, ok, err := calc.CurrentHour(now, flagLat, flagLon, flagTimezone)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no planetary hour covers the current instant")
		return nil
	}

	ttl := application.DefaultTTLPolicy().Calculate(result, now)

	if flagJSON {
		return printJSON(struct {
			Hour application.HourRecord           `json:"hour"`
			TTL  application.TTLCalculationResult `json:"ttl"`
		}{
			Hour: application.HourRecord{
				Ordinal: hour.Ordinal,
				Start:   hour.Start.Format(time.RFC3339Nano),
				End:     hour.End.Format(time.RFC3339Nano),
				Ruler:   string(hour.Ruler),
				IsDay:   hour.IsDay,
			},
			TTL: ttl,
		})
	}

	half := "day"
	if !hour.IsDay {
		half = "night"
	}
	fmt.Printf("Hour %d (%s) ruled by %s %s, %s\n",
		hour.Ordinal, half, hour.Ruler, hour.Ruler.Symbol(),
		hour.FormatRange(result.Location(), flagTwentyFour))
	fmt.Printf("Remaining: %dms, sensitive: %v, recommended TTL: %ds\n",
		ttl.RemainingMs, ttl.Sensitive, ttl.TTLSeconds)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
