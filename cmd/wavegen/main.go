// wavegen prints the composition of a range of waves without opening the
// terminal UI. Build:
//
//	go build -o wavegen ./cmd/wavegen
//
// Usage:
//
//	./wavegen [--config waves.yaml] [--seed 42] [--from 1] [--waves 20]
//	./wavegen --tiers
//	./wavegen --history 10
package main

import (
	"demon-waves/assets"
	"demon-waves/internal/config"
	"demon-waves/internal/demon"
	"demon-waves/internal/journal"
	"demon-waves/internal/wave"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML settings file")
	seed := flag.Int64("seed", 0, "Random seed (0 = config value, then clock)")
	from := flag.Int("from", -1, "First wave (-1 = config value)")
	waves := flag.Int("waves", 0, "Number of waves (0 = config value)")
	record := flag.Bool("journal", false, "Append every wave to the journal")
	history := flag.Int("history", 0, "Print the last N journal entries and exit")
	tiers := flag.Bool("tiers", false, "Print the weight tiers and demon speeds and exit")
	flag.Parse()

	if err := run(os.Stdout, *cfgPath, *seed, *from, *waves, *record, *history, *tiers); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfgPath string, seed int64, from, waves int, record bool, history int, tiers bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if from >= 0 {
		cfg.StartWave = from
	}
	if waves > 0 {
		cfg.Waves = waves
	}
	if record {
		cfg.Journal.Enabled = true
	}

	logger, closeLog, err := cfg.Log.OpenLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	dir := cfg.Journal.Dir
	if dir == "" && (cfg.Journal.Enabled || history > 0) {
		if dir, err = journal.DefaultDir(); err != nil {
			return fmt.Errorf("journal dir: %w", err)
		}
	}

	if history > 0 {
		entries, err := journal.Read(journal.New(dir, logger).Path())
		if err != nil {
			return err
		}
		printHistory(w, entries, history)
		return nil
	}

	observers := []wave.Observer{wave.LogObserver(logger)}
	if cfg.Journal.Enabled {
		j := journal.New(dir, logger)
		logger.Info("journal enabled", "path", j.Path(), "session", j.Session())
		observers = append(observers, j.Observe)
	}
	composer := wave.NewComposer(
		wave.MustWeightTable(assets.Demons, wave.DefaultTiers),
		wave.WithObserver(wave.Observers(observers...)),
	)
	if tiers {
		printTiers(w, assets.Demons, composer.Weights())
		return nil
	}

	rng := wave.NewRandomSource(cfg.Seed)
	summaries := make([]wave.Summary, 0, cfg.Waves)
	for n := cfg.StartWave; n < cfg.StartWave+cfg.Waves; n++ {
		summaries = append(summaries, composer.Summarize(n, rng))
	}
	printTable(w, assets.Demons, summaries)
	return nil
}

// printTable writes one row per wave: the wave, its size, the per-type
// tallies headed by each type's glyph, and a marker when the wave was
// reinforced.
func printTable(w io.Writer, catalog *demon.Catalog, summaries []wave.Summary) {
	var b strings.Builder
	b.WriteString(pad("WAVE", 6))
	b.WriteString(pad("COUNT", 7))
	writeTypeHeader(&b, catalog)
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))

	for _, s := range summaries {
		b.Reset()
		b.WriteString(pad(fmt.Sprint(s.Wave), 6))
		b.WriteString(pad(fmt.Sprint(s.Count), 7))
		counts := s.Types.Counts()
		for _, t := range demon.Types {
			b.WriteString(pad(fmt.Sprint(counts[t]), col))
		}
		if s.Reinforced {
			b.WriteString("+")
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// printTiers writes the resolved weights of every tier, lowest wave first,
// under the catalog's base weights, then each type's speed as a percentage of
// the player's.
func printTiers(w io.Writer, catalog *demon.Catalog, wt *wave.WeightTable) {
	var b strings.Builder
	line := func() {
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
		b.Reset()
	}

	b.WriteString(pad("FROM", 13))
	writeTypeHeader(&b, catalog)
	line()

	b.WriteString(pad("base", 13))
	for _, t := range demon.Types {
		b.WriteString(pad(fmt.Sprintf("%g", catalog.BaseWeight(t)), col))
	}
	line()

	tiers := wt.Tiers()
	for i := len(tiers) - 1; i >= 0; i-- {
		snap := wt.Snapshot(tiers[i].MinWave)
		b.WriteString(pad(fmt.Sprintf("wave %d+", tiers[i].MinWave), 13))
		for _, t := range demon.Types {
			b.WriteString(pad(fmt.Sprintf("%g", snap[t]), col))
		}
		line()
	}

	b.WriteString(pad("speed", 13))
	for _, t := range demon.Types {
		pct := catalog.Profile(t).Speed / assets.PlayerSpeed * 100
		b.WriteString(pad(fmt.Sprintf("%.0f%%", pct), col))
	}
	line()
}

// writeTypeHeader appends one glyph-and-name column per demon type.
func writeTypeHeader(b *strings.Builder, catalog *demon.Catalog) {
	for _, t := range demon.Types {
		b.WriteString(pad(catalog.Profile(t).Glyph+" "+t.String(), col))
	}
}

// printHistory writes the last n journal entries, oldest first.
func printHistory(w io.Writer, entries []journal.Entry, n int) {
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	for _, e := range entries {
		marker := ""
		if e.Reinforced {
			marker = " [reinforced]"
		}
		fmt.Fprintf(w, "%s  %.8s  wave %d: %d demons (%s)%s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Session, e.Wave, e.Count, e.Types, marker)
	}
}

// col is the width of one per-type column.
const col = 14

// pad right-pads s to width display cells. Glyphs are double width.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
