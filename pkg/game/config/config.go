// Package config reads the command line and environment settings of the game.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// MinWidth is the narrowest UI the screens can be laid out in
const MinWidth = 20

// Config holds the startup settings
type Config struct {
	Debug       bool
	Level       int
	LevelSet    bool // Level was given; play starts there instead of the start screen
	AutoAdvance bool
	Animate     bool
	Width       int
	Seed        int64

	ContentFile string // empty for the embedded levels
	LocaleFile  string // .po file replacing the built-in UI strings
	LogFile     string // empty discards the log
	LogLevel    string
	LogFormat   string

	Describe bool   // print every level and exit
	DumpDir  string // write a map file per level and exit
}

// Load parses args, falling back to environment variables for anything not
// given on the command line.
func Load(args []string, stderr io.Writer) (Config, error) {
	cfg := Config{
		Debug:       getEnvBool("ALPHAPOINT_DEBUG", false),
		AutoAdvance: getEnvBool("ALPHAPOINT_AUTO_ADVANCE", false),
		Width:       60,
		ContentFile: getEnv("ALPHAPOINT_CONTENT", ""),
		LocaleFile:  getEnv("ALPHAPOINT_LOCALE", ""),
		LogFile:     getEnv("ALPHAPOINT_LOG_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}
	noAnim := getEnvBool("ALPHAPOINT_NO_ANIM", false)

	fs := flag.NewFlagSet("alphapoint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug mode: skip the intro and list test levels")
	fs.IntVar(&cfg.Level, "level", 0, "start directly on this level")
	fs.BoolVar(&cfg.AutoAdvance, "auto-advance", cfg.AutoAdvance, "go straight to the next level on reaching an exit")
	fs.BoolVar(&noAnim, "no-anim", noAnim, "disable text reveal and flicker effects")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "UI width in columns")
	fs.Int64Var(&cfg.Seed, "seed", 0, "seed for terminal addresses (0 picks one)")
	fs.StringVar(&cfg.ContentFile, "content", cfg.ContentFile, "level content YAML file")
	fs.StringVar(&cfg.LocaleFile, "locale", cfg.LocaleFile, "gettext .po file with the UI strings")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write the log to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text or json)")
	fs.BoolVar(&cfg.Describe, "describe", false, "print the map and system of every level and exit")
	fs.StringVar(&cfg.DumpDir, "dump", "", "write a map file per level to this directory and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "level" {
			cfg.LevelSet = true
		}
	})
	cfg.Animate = !noAnim

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that do not depend on the content
func (c Config) Validate() error {
	var errs []error
	if c.Width < MinWidth {
		errs = append(errs, fmt.Errorf("width %d is below the minimum of %d", c.Width, MinWidth))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
