package wave

import (
	"fmt"
	"log/slog"
)

// Summary describes one composed wave for diagnostics.
type Summary struct {
	Wave       int
	Count      int
	Types      Composition
	Weights    Weights
	Reinforced bool // an imp was promoted by the minimum-difficulty rule
}

// String renders the one-line diagnostic: "Wave 3: 7 demons (IMP, DEMON, ...)".
func (s Summary) String() string {
	return fmt.Sprintf("Wave %d: %d demons (%s)", s.Wave, s.Count, s.Types)
}

// Observer receives a Summary after each composition. It runs synchronously
// on the composing goroutine and cannot change the result.
type Observer func(Summary)

// LogObserver logs each summary at info level.
func LogObserver(logger *slog.Logger) Observer {
	return func(s Summary) {
		logger.Info("wave composed",
			"wave", s.Wave,
			"count", s.Count,
			"types", s.Types.String(),
			"reinforced", s.Reinforced,
		)
	}
}

// Observers fans a summary out to every non-nil observer in order.
func Observers(obs ...Observer) Observer {
	return func(s Summary) {
		for _, o := range obs {
			if o != nil {
				o(s)
			}
		}
	}
}
