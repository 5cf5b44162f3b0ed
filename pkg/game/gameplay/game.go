// Package gameplay drives the game: it owns the current level, the player and
// the current UI mode, and evaluates the automatic transitions between modes.
package gameplay

import (
	"bytes"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"alphapoint/pkg/game/content"
	"alphapoint/pkg/game/devtools"
	"alphapoint/pkg/game/level"
	"alphapoint/pkg/game/player"
	"alphapoint/pkg/game/ui"
	"alphapoint/pkg/logger"
)

// Options configure a game
type Options struct {
	Width       int
	Debug       bool
	AutoAdvance bool // go straight to the next level instead of the level complete screen
	Seed        int64
}

// Game is the top-level game state. It implements ui.Host.
type Game struct {
	content content.Provider
	opts    Options
	rng     *rand.Rand
	session string
	log     *logrus.Entry

	player *player.Player
	level  *level.Level
	mode   ui.Mode
	done   bool
}

// New creates a game showing the start screen
func New(p content.Provider, opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = ui.DefaultWidth
	}
	session := uuid.NewString()
	g := &Game{
		content: p,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		session: session,
		log:     logger.Log.WithField("session", session),
		player:  player.New(p.Game().PlayerName),
	}
	g.mode = ui.NewStart(g)
	return g
}

// Session returns the id that tags this game's log entries
func (g *Game) Session() string {
	return g.session
}

// Content returns the content provider
func (g *Game) Content() content.Provider {
	return g.content
}

// Player returns the player
func (g *Game) Player() *player.Player {
	return g.player
}

// Level returns the current level, nil before the first level starts
func (g *Game) Level() *level.Level {
	return g.level
}

// Settings returns the presentation settings
func (g *Game) Settings() ui.Settings {
	return ui.Settings{Width: g.opts.Width, Debug: g.opts.Debug}
}

// Mode returns the current mode
func (g *Game) Mode() ui.Mode {
	return g.mode
}

// SetMode replaces the current mode
func (g *Game) SetMode(m ui.Mode) {
	if g.mode != nil && g.mode.Kind() != m.Kind() {
		g.log.WithFields(logrus.Fields{
			"from": g.mode.Kind().String(),
			"to":   m.Kind().String(),
		}).Debug("mode change")
	}
	g.mode = m
}

// Quit stops the loop after the current input
func (g *Game) Quit() {
	g.done = true
}

// Done returns true once Quit was called
func (g *Game) Done() bool {
	return g.done
}

// StartLevel builds level n fresh, discarding the previous level, and places
// the player at its entry.
func (g *Game) StartLevel(n int) error {
	lvl, err := level.Load(g.content, n, g.rng)
	if err != nil {
		return err
	}
	g.level = lvl
	g.player.Enter(lvl)

	g.log.WithFields(logrus.Fields{
		"level": lvl.Number,
		"name":  lvl.Name,
	}).Info("level started")

	if g.opts.Debug && g.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		var buf bytes.Buffer
		devtools.DescribeLevel(&buf, lvl, g.player.Position)
		g.log.Debug("\n" + buf.String())
	}
	return nil
}

// Restart rebuilds the current level
func (g *Game) Restart() error {
	return g.StartLevel(g.level.Number)
}

// HasNextLevel returns true if a level follows the current one
func (g *Game) HasNextLevel() bool {
	return g.level != nil && g.content.HasLevel(g.level.Number+1)
}

// Advance starts the level after the current one
func (g *Game) Advance() error {
	return g.StartLevel(g.level.Number + 1)
}
