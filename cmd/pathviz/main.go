// Command pathviz runs a headless pathfinding session: it lays out the
// checkerboard board, optionally carves a maze, places start and end,
// runs a search and prints the final board. PNG frames of every step are
// written when a frame directory is configured.
//
// Settings come from .env / PATHVIZ_* variables (see package config);
// flags override them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/session"
)

var log = logrus.New()

func main() {
	if err := run(); err != nil {
		log.WithError(err).Error("pathviz failed")
		os.Exit(1)
	}
}

func run() error {
	var (
		envFile  string
		noMaze   bool
		quiet    bool
		startArg string
		endArg   string
		carver   string
	)
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&envFile, "env", "", "extra .env file to load before flags apply")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid side length")
	flag.IntVar(&cfg.WidthPx, "width", cfg.WidthPx, "board width in pixels")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "neighbor shuffle seed (0 = default)")
	flag.StringVar(&cfg.Algorithm, "algo", cfg.Algorithm, "search algorithm: astar, bfs or dfs")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.StringVar(&cfg.FrameDir, "frames", cfg.FrameDir, "directory for PNG frames (empty = none)")
	flag.IntVar(&cfg.FrameStride, "stride", cfg.FrameStride, "keep every k-th frame")
	flag.BoolVar(&noMaze, "no-maze", false, "search the bare checkerboard instead of a maze")
	flag.StringVar(&carver, "carver", "dfs", "maze carver: dfs or kruskal")
	flag.BoolVar(&quiet, "quiet", false, "do not print the final board")
	flag.StringVar(&startArg, "start", "1,1", "start cell as row,col")
	flag.StringVar(&endArg, "end", "", "end cell as row,col (default: last room)")
	flag.Parse()

	if envFile != "" {
		// re-read with the extra file, then let explicit flags win again
		fileCfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = overlayFlags(fileCfg, cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", config.ErrInvalidValue, err)
	}
	log.SetLevel(level)

	algo, err := search.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return err
	}

	var frames render.Sink
	if cfg.FrameDir != "" {
		png, err := render.NewPNG(cfg.FrameDir, cfg.WidthPx, render.WithStride(cfg.FrameStride))
		if err != nil {
			return err
		}
		frames = png
		defer func() {
			log.WithFields(logrus.Fields{"dir": cfg.FrameDir, "frames": png.Frames()}).Info("frames written")
		}()
	}

	s, err := session.New(cfg, frames, session.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !noMaze {
		key := session.KeyMaze
		switch carver {
		case "dfs":
		case "kruskal":
			key = session.KeyKruskal
		default:
			return fmt.Errorf("unknown carver %q", carver)
		}
		if _, err := s.Press(ctx, key); err != nil {
			return err
		}
	}

	last := lastRoom(cfg.Rows)
	if endArg == "" {
		endArg = fmt.Sprintf("%d,%d", last, last)
	}
	gap := cfg.WidthPx / cfg.Rows
	for _, arg := range []string{startArg, endArg} {
		row, col, err := parseCell(arg)
		if err != nil {
			return err
		}
		// click the centre of the cell
		if err := s.PrimaryAt(row*gap+gap/2, col*gap+gap/2); err != nil {
			return fmt.Errorf("place %s: %w", arg, err)
		}
	}

	res, err := s.Press(ctx, session.KeyFor(algo))
	if err != nil {
		return err
	}

	if !quiet {
		out := render.NewText(os.Stdout)
		out.SetCaption(fmt.Sprintf("%s found=%t path=%d expanded=%d",
			res.Algorithm, res.Found, res.PathLen, res.Expanded))
		if err := out.Render(s.Grid()); err != nil {
			return err
		}
	}
	return nil
}

// overlayFlags copies every explicitly set flag from flagged onto base.
func overlayFlags(base, flagged config.Config) config.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			base.Rows = flagged.Rows
		case "width":
			base.WidthPx = flagged.WidthPx
		case "seed":
			base.Seed = flagged.Seed
		case "algo":
			base.Algorithm = flagged.Algorithm
		case "log-level":
			base.LogLevel = flagged.LogLevel
		case "frames":
			base.FrameDir = flagged.FrameDir
		case "stride":
			base.FrameStride = flagged.FrameStride
		}
	})
	return base
}

// lastRoom is the highest odd index below n, the bottom-right room of the
// checkerboard layout.
func lastRoom(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n - 2
}

// parseCell parses "row,col".
func parseCell(s string) (row, col int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("cell %q: want row,col", s)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("cell %q: %w", s, err)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("cell %q: %w", s, err)
	}
	return row, col, nil
}
