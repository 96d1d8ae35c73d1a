// Package journal appends every composed wave to a JSON-lines file so tuning
// sessions can be reviewed after the fact.
package journal

import (
	"bufio"
	"demon-waves/internal/wave"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileName is the journal file inside the journal directory.
const FileName = "waves.jsonl"

// Entry is one journal line.
type Entry struct {
	Timestamp  time.Time        `json:"timestamp"`
	Session    string           `json:"session"`
	Wave       int              `json:"wave"`
	Count      int              `json:"count"`
	Types      wave.Composition `json:"types"`
	Weights    wave.Weights     `json:"weights"`
	Reinforced bool             `json:"reinforced"`
}

// Journal writes entries for one session. Write failures are logged and
// never reach the composer.
type Journal struct {
	mu      sync.Mutex
	dir     string
	session string
	logger  *slog.Logger
	now     func() time.Time
}

// New returns a Journal writing under dir with a fresh session id.
func New(dir string, logger *slog.Logger) *Journal {
	return &Journal{
		dir:     dir,
		session: uuid.NewString(),
		logger:  logger,
		now:     time.Now,
	}
}

// Session returns the id stamped on every entry of this journal.
func (j *Journal) Session() string { return j.session }

// Path returns the journal file path.
func (j *Journal) Path() string { return filepath.Join(j.dir, FileName) }

// Observe appends s as one line. It has the wave.Observer signature.
func (j *Journal) Observe(s wave.Summary) {
	e := Entry{
		Timestamp:  j.now(),
		Session:    j.session,
		Wave:       s.Wave,
		Count:      s.Count,
		Types:      s.Types,
		Weights:    s.Weights,
		Reinforced: s.Reinforced,
	}
	data, err := json.Marshal(e)
	if err != nil {
		j.logger.Warn("journal: cannot marshal entry", "wave", s.Wave, "error", err)
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		j.logger.Warn("journal: cannot create dir", "dir", j.dir, "error", err)
		return
	}
	f, err := os.OpenFile(j.Path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		j.logger.Warn("journal: cannot open file", "error", err)
		return
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		j.logger.Warn("journal: write failed", "error", err)
	}
}

// Read loads every entry from a journal file.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("journal line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return entries, nil
}

// DefaultDir returns the directory where journals are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/demon-waves,
// defaulting to ~/.local/share/demon-waves.
func DefaultDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "demon-waves"), nil
}
