package main

import (
	"demon-waves/assets"
	"demon-waves/internal/config"
	"demon-waves/internal/inspect"
	"demon-waves/internal/journal"
	"demon-waves/internal/wave"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML settings file")
	seed := flag.Int64("seed", 0, "Random seed (0 = config value, then clock)")
	start := flag.Int("wave", -1, "First wave to show (-1 = config value)")
	flag.Parse()

	if err := run(*cfgPath, *seed, *start); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, seed int64, start int) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if start >= 0 {
		cfg.StartWave = start
	}

	// The screen owns the terminal, so logs go to the configured file or nowhere.
	logger, closeLog, err := cfg.Log.OpenLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	observer, err := observers(cfg, logger)
	if err != nil {
		return err
	}
	composer := wave.NewComposer(wave.MustWeightTable(assets.Demons, wave.DefaultTiers), wave.WithObserver(observer))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	in, err := inspect.New(screen, cfg, assets.Demons, composer, logger)
	if err != nil {
		screen.Fini()
		return err
	}
	in.Run()
	return nil
}

// observers wires the wave diagnostics: the log always, the journal when enabled.
func observers(cfg config.Config, logger *slog.Logger) (wave.Observer, error) {
	obs := []wave.Observer{wave.LogObserver(logger)}
	if cfg.Journal.Enabled {
		dir := cfg.Journal.Dir
		if dir == "" {
			d, err := journal.DefaultDir()
			if err != nil {
				return nil, fmt.Errorf("journal dir: %w", err)
			}
			dir = d
		}
		j := journal.New(dir, logger)
		logger.Info("journal enabled", "path", j.Path(), "session", j.Session())
		obs = append(obs, j.Observe)
	}
	return wave.Observers(obs...), nil
}
