package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"burgerpos/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort           = "8080"
	defaultActiveBoardSlots   = 6
	defaultStaleOrderAfter    = 15 * time.Minute
	defaultStaleOrderSchedule = "@every 1m"

	maxActiveBoardSlots = 24
)

type Config struct {
	HTTPPort           string
	MenuFile           string
	ActiveBoardSlots   int
	StaleOrderAfter    time.Duration
	StaleOrderSchedule string
	LogLevel           slog.Level
}

// LoadConfig reads an optional .env file into the environment, then builds the
// Config from environment variables. Variables already set win over .env values.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from getenv, applying defaults for unset keys.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:           valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		MenuFile:           strings.TrimSpace(getenv("MENU_FILE")),
		ActiveBoardSlots:   defaultActiveBoardSlots,
		StaleOrderAfter:    defaultStaleOrderAfter,
		StaleOrderSchedule: valueOr(getenv("STALE_ORDER_SCHEDULE"), defaultStaleOrderSchedule),
		LogLevel:           slog.LevelInfo,
	}

	var parseErrs []error
	if raw := getenv("ACTIVE_BOARD_SLOTS"); raw != "" {
		slots, err := strconv.Atoi(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("ACTIVE_BOARD_SLOTS", err))
		}
		config.ActiveBoardSlots = slots
	}
	if raw := getenv("STALE_ORDER_AFTER"); raw != "" {
		after, err := time.ParseDuration(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("STALE_ORDER_AFTER", err))
		}
		config.StaleOrderAfter = after
	}
	if raw := getenv("LOG_LEVEL"); raw != "" {
		if err := config.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
		}
	}
	if err := errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var validationErrs []error
	if _, err := strconv.ParseUint(c.HTTPPort, 10, 16); err != nil {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("HTTP_PORT", err))
	}
	if c.ActiveBoardSlots < 1 || c.ActiveBoardSlots > maxActiveBoardSlots {
		validationErrs = append(validationErrs,
			errs.NewValueIsOutOfRangeError("ACTIVE_BOARD_SLOTS", c.ActiveBoardSlots, 1, maxActiveBoardSlots))
	}
	if c.StaleOrderAfter <= 0 {
		validationErrs = append(validationErrs,
			errs.NewValueIsInvalidErrorWithCause("STALE_ORDER_AFTER", fmt.Errorf("%s is not positive", c.StaleOrderAfter)))
	}
	if strings.TrimSpace(c.StaleOrderSchedule) == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("STALE_ORDER_SCHEDULE"))
	}
	return errors.Join(validationErrs...)
}

func valueOr(value, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return fallback
}
