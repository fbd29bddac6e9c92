// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/jalali"
	"cloudeng.io/logging/ctxlog"
)

// CommonFlags are shared by all commands.
type CommonFlags struct {
	Config string `subcmd:"config,,yaml configuration file"`
	Today  string `subcmd:"today,,'the date to use as today, in yyyy-mm-dd format'"`
	Format string `subcmd:"format,text,'output format: text, json or yaml'"`
	cmdutil.LoggingFlags
}

// PickFlags are used by the commands that drive a picker.
type PickFlags struct {
	CommonFlags
	Strict bool `subcmd:"strict,false,only accept years offered for selection"`
}

// Placeholders are displayed for each of the year, month and day choices
// when nothing has been selected.
type Placeholders struct {
	Year  string `yaml:"year" cmd:"placeholder for the year choices"`
	Month string `yaml:"month" cmd:"placeholder for the month choices"`
	Day   string `yaml:"day" cmd:"placeholder for the day choices"`
}

// Config represents the optional yaml configuration file.
type Config struct {
	Today        string                `yaml:"today" cmd:"the date to use as today, in yyyy-mm-dd format"`
	StrictYears  bool                  `yaml:"strict_years" cmd:"only accept years offered for selection"`
	Placeholders Placeholders          `yaml:"placeholders" cmd:"placeholders for the year, month and day choices"`
	Logging      cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration, overrides the logging flags when present"`

	clock jalali.Clock
}

var defaultPlaceholders = Placeholders{
	Year:  "سال",
	Month: "ماه",
	Day:   "روز",
}

// loadConfig reads the configuration file, if any, and applies the
// flag values. The today flag takes precedence over the file, the logging
// flags are used when the file has no logging section.
func loadConfig(ctx context.Context, cf *CommonFlags) (Config, error) {
	var cfg Config
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if cfg.Logging == (cmdutil.LoggingConfig{}) {
		cfg.Logging = cf.LoggingFlags.LoggingConfig()
	}
	if len(cf.Today) > 0 {
		cfg.Today = cf.Today
	}
	if len(cfg.Placeholders.Year) == 0 {
		cfg.Placeholders.Year = defaultPlaceholders.Year
	}
	if len(cfg.Placeholders.Month) == 0 {
		cfg.Placeholders.Month = defaultPlaceholders.Month
	}
	if len(cfg.Placeholders.Day) == 0 {
		cfg.Placeholders.Day = defaultPlaceholders.Day
	}
	clock, err := cfg.Clock()
	if err != nil {
		return Config{}, err
	}
	cfg.clock = clock
	return cfg, nil
}

// Clock returns the clock implied by the configuration: a clock fixed at
// noon UTC on Today, or the system clock if Today is not set.
func (c Config) Clock() (jalali.Clock, error) {
	if c.clock != nil {
		return c.clock, nil
	}
	if len(c.Today) == 0 {
		return jalali.SystemClock{}, nil
	}
	g, err := jalali.ParseGregorianDate(c.Today)
	if err != nil {
		return nil, fmt.Errorf("invalid today: %w", err)
	}
	return jalali.FixedClock(g.Time().Add(12 * time.Hour)), nil
}

// setup loads the configuration and returns a context containing
// the configured logger. The returned function closes the logger.
func setup(ctx context.Context, cf *CommonFlags) (context.Context, Config, func(), error) {
	cfg, err := loadConfig(ctx, cf)
	if err != nil {
		return ctx, Config{}, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, Config{}, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	ctxlog.Logger(ctx).Debug("configuration", "today", cfg.Today, "strict_years", cfg.StrictYears)
	return ctx, cfg, func() { _ = logger.Close() }, nil
}
