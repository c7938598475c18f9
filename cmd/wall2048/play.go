package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wall2048/internal/config"
	"github.com/vovakirdan/wall2048/internal/core"
	"github.com/vovakirdan/wall2048/internal/game"
	"github.com/vovakirdan/wall2048/internal/platform/tui"
	"github.com/vovakirdan/wall2048/internal/render"
	"github.com/vovakirdan/wall2048/internal/session"
	"github.com/vovakirdan/wall2048/internal/wallpaper"
)

var (
	flagBackend  string
	flagOutput   string
	flagStyle    string
	flagTileSize int
	flagPoll     time.Duration
	flagScript   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 on the desktop background",
	Long: `Start a game. The board is drawn to a PNG and set as your desktop
background; keys are read from this terminal.

Controls:
  Arrows/WASD/HJKL - Move
  R                - Restart
  X                - Toggle hack mode (spawns 8s and 16s)
  Q/Esc/Ctrl+C     - Quit and restore the original background

With --script, moves are taken from a comma separated list instead of the
keyboard and the game quits when the list runs out.

Examples:
  wall2048 play
  wall2048 play --backend gnome --style centered
  wall2048 play --backend file --output ./board.png --script "l,u,u,r,d"
  wall2048 play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Wallpaper backend (see 'wall2048 backends'; default from config)")
	playCmd.Flags().StringVar(&flagOutput, "output", "", "PNG path for rendered frames")
	playCmd.Flags().StringVar(&flagStyle, "style", "", "Wallpaper scaling style, e.g. centered, zoom, stretched")
	playCmd.Flags().IntVar(&flagTileSize, "tile-size", 0, "Tile edge in pixels")
	playCmd.Flags().DurationVar(&flagPoll, "poll", 0, "Input poll interval")
	playCmd.Flags().StringVar(&flagScript, "script", "", "Comma separated moves to play instead of reading keys")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var script []core.Action
	if flagScript != "" {
		script, err = core.ParseActions(flagScript)
		if err != nil {
			return fmt.Errorf("--script: %w", err)
		}
	} else if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("play needs an interactive terminal; use --script to play without one")
	}
	interactive := script == nil

	logger, closeLog, err := newLogger(cfg.LogLevel, interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	r, err := render.New(cfg.Render.TileSize, render.FontCandidates(cfg.Render.Fonts))
	if err != nil {
		return err
	}
	if r.Fallback() {
		logger.Warn("no TrueType font found, using the built-in bitmap face", "err", render.ErrFontMissing)
	} else {
		logger.Debug("font loaded", "path", r.FontPath())
	}

	wall, err := wallpaper.Open(cfg.Wallpaper.Backend, wallpaper.Options{})
	if err != nil {
		return err
	}

	rt := cfg.Runtime()
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	opts := game.OptionsFromRuntime(rt)
	opts.Spawns = cfg.NormalSpawns()
	opts.HackSpawns = cfg.HackSpawns()
	g := game.New(rt.Seed, opts)

	logger.Info("starting",
		"backend", wall.Name(),
		"output", cfg.OutputPath(),
		"size", r.Size(),
		"seed", rt.Seed,
		"target", opts.Target,
	)

	sess := session.New(g, r, wall, logger, session.Options{
		Output: cfg.OutputPath(),
		Style:  cfg.Wallpaper.Style,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !interactive {
		if err := sess.Run(ctx, session.NewScript(script), cfg.PollInterval); err != nil {
			return err
		}
		snap := g.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "%s\nscore %d, max tile %d, %s\n", snap.Board, snap.Score, snap.MaxTile, snap.Status)
		return nil
	}

	return tui.Run(ctx, sess, cfg.PollInterval)
}

// loadConfig reads the config file and applies flags that were set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Wallpaper.Backend = flagBackend
	}
	if flags.Changed("output") {
		cfg.Render.Output = flagOutput
	}
	if flags.Changed("style") {
		cfg.Wallpaper.Style = flagStyle
	}
	if flags.Changed("tile-size") {
		cfg.Render.TileSize = flagTileSize
	}
	if flags.Changed("poll") {
		cfg.PollInterval = flagPoll
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	return cfg, cfg.Validate()
}

// newLogger builds the process logger. The terminal UI owns the screen, so
// interactive play logs to a file unless --log-file says otherwise.
func newLogger(level string, interactive bool) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	path := flagLogFile
	if path == "" && interactive {
		path = filepath.Join(os.TempDir(), "wall2048.log")
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wall2048",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
