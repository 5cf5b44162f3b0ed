package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"alphapoint/pkg/engine/input"
	"alphapoint/pkg/engine/terminal"
	"alphapoint/pkg/game/config"
	"alphapoint/pkg/game/content"
	"alphapoint/pkg/game/devtools"
	"alphapoint/pkg/game/gameplay"
	"alphapoint/pkg/game/level"
	"alphapoint/pkg/game/locale"
	"alphapoint/pkg/game/renderer/tui"
	"alphapoint/pkg/game/ui"
	"alphapoint/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logOut, err := openLog(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logOut.Close()
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logOut})

	if err := run(cfg); err != nil {
		logger.Log.WithError(err).Error("game aborted")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if cfg.LocaleFile != "" {
		po, err := os.ReadFile(cfg.LocaleFile)
		if err != nil {
			return fmt.Errorf("read locale: %w", err)
		}
		locale.Load(po)
	}

	c, err := loadContent(cfg.ContentFile)
	if err != nil {
		return err
	}
	if err := level.ValidateAll(c); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if cfg.Describe || cfg.DumpDir != "" {
		return runDevtools(cfg, c, seed)
	}

	g := gameplay.New(c, gameplay.Options{
		Width:       terminal.FitWidth(cfg.Width),
		Debug:       cfg.Debug,
		AutoAdvance: cfg.AutoAdvance,
		Seed:        seed,
	})
	logger.Log.WithFields(logrus.Fields{
		"session":     g.Session(),
		"debug":       cfg.Debug,
		"seed":        seed,
		"interactive": terminal.IsInteractive(),
	}).Info("starting Alpha Point")

	if cfg.LevelSet {
		if !c.HasLevel(cfg.Level) {
			return fmt.Errorf("level %d: %w", cfg.Level, content.ErrUnknownLevel)
		}
		if err := g.StartLevel(cfg.Level); err != nil {
			return err
		}
		g.SetMode(ui.NewMain(g))
	}

	src := input.NewTerminal(os.Stdin, os.Stdout)
	r := tui.New(os.Stdout, cfg.Animate, rand.New(rand.NewSource(seed)))

	err = g.Run(src, r)
	if errors.Is(err, io.EOF) || errors.Is(err, input.ErrInterrupted) {
		logger.Log.WithError(err).Info("input closed")
		err = nil
	}
	r.Clear()
	fmt.Println(locale.Get("GOODBYE"))
	return err
}

func loadContent(path string) (*content.Catalogue, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

// runDevtools prints or dumps every level instead of playing
func runDevtools(cfg config.Config, c *content.Catalogue, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	if cfg.Describe {
		devtools.DescribeBindings(os.Stdout)
	}
	for _, n := range c.Numbers() {
		lvl, err := level.Load(c, n, rng)
		if err != nil {
			return err
		}
		if cfg.Describe {
			devtools.DescribeLevel(os.Stdout, lvl, lvl.Map.Enter)
			devtools.DescribeSystem(os.Stdout, lvl)
		}
		if cfg.DumpDir != "" {
			path, err := devtools.DumpLevelToFile(cfg.DumpDir, lvl, lvl.Map.Enter)
			if err != nil {
				return err
			}
			fmt.Println(path)
		}
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openLog opens the log file for appending, or discards the log when no file
// is configured since the game owns the terminal.
func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}
