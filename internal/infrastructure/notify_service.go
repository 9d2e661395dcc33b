// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"fmt"
	"os"
	"strconv"

	"github.com/czdtech/planetary-hours/internal/application"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

var startedTemplate = `🌅 *Planetary day of %s %s*

Sunrise: *%s*
Sunset: *%s*
Next sunrise: *%s*
`

var hourTemplate = `%s *Hour %d (%s)* ruled by *%s*

%s
`

var endedTemplate = `
The planetary day has ended.
`

var unavailableTemplate = `
No planetary hours for %s: the sun does not rise or set at this location.
`

type telegramNotifyService struct {
	bot          *tgbotapi.BotAPI
	telegramChat int64
}

func NewTelegramNotifyService(botToken string, receiverKey string) application.NotifyService {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize bot")
		os.Exit(1)
	}
	chat, err := strconv.ParseInt(receiverKey, 10, 64)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse receiverKey")
		os.Exit(1)
	}

	return &telegramNotifyService{
		bot:          bot,
		telegramChat: chat,
	}
}

func (c *telegramNotifyService) SendScheduleStarted(result *application.CalculationResult) error {
	loc := result.Location()
	text := fmt.Sprintf(startedTemplate,
		result.DayRuler, result.DayRuler.Symbol(),
		application.FormatClock(result.Sunrise, loc, true),
		application.FormatClock(result.Sunset, loc, true),
		application.FormatClock(result.NextSunrise, loc, true),
	)
	return c.send(text)
}

func (c *telegramNotifyService) SendHourUpdate(hour application.PlanetaryHour, result *application.CalculationResult) error {
	half := "day"
	if !hour.IsDay {
		half = "night"
	}
	text := fmt.Sprintf(hourTemplate,
		hour.Ruler.Symbol(), hour.Ordinal, half, hour.Ruler,
		hour.FormatRange(result.Location(), true),
	)
	return c.send(text)
}

func (c *telegramNotifyService) SendScheduleEnded() error {
	return c.send(endedTemplate)
}

func (c *telegramNotifyService) SendUnavailable(date string) error {
	return c.send(fmt.Sprintf(unavailableTemplate, date))
}

func (c *telegramNotifyService) send(text string) error {
	_, err := c.bot.Send(tgbotapi.MessageConfig{
		BaseChat: tgbotapi.BaseChat{
			ChatID: c.telegramChat,
		},
		Text:      text,
		ParseMode: tgbotapi.ModeMarkdown,
	})

	if err != nil {
		return fmt.Errorf("TelegramNotifyService → %v", err)
	}

	return nil
}
