package frecency

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// UpdateKind selects what UpdateScore does to an entry.
type UpdateKind int

const (
	// Increase adds one open event to the entry, creating it if needed.
	Increase UpdateKind = iota
	// Remove deletes the entry outright.
	Remove
)

// ScoredPath is a materialized history entry.
type ScoredPath struct {
	Path  string
	Score float64
}

// Store persists per-working-directory frecency history as a single
// JSON file: {workDir: {absolutePath: dateAtScoreOne (epoch seconds)}}.
//
// Storage failures never surface to callers. A missing or corrupt file
// reads as empty history, and write failures are logged and dropped, so
// the picker keeps working with whatever state it has.
type Store struct {
	filePath string
	workDir  string
	log      *slog.Logger
}

// NewStore opens the history file at filePath scoped to workDir.
// Nothing is read until the first operation.
func NewStore(filePath, workDir string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{filePath: filePath, workDir: workDir, log: log}
}

// UpdateScore records an open event (Increase) or evicts an entry
// (Remove) for path at the given instant.
//
// On Increase the existing entry is decayed to now, incremented by one,
// and converted back to a date-at-score-one. Paths that are not
// readable regular files are skipped. Either way every entry for the
// working directory is re-validated and entries whose file is gone are
// pruned, then the whole map is rewritten.
func (s *Store) UpdateScore(path string, kind UpdateKind, now time.Time) {
	all := s.load()
	entries := all[s.workDir]
	if entries == nil {
		entries = make(map[string]float64)
	}

	switch kind {
	case Increase:
		if fileReadable(path) {
			score := 0.0
			if at, ok := entries[path]; ok {
				score = ScoreAt(now, epochToTime(at))
			}
			entries[path] = timeToEpoch(DateAtScoreOne(now, score+1))
		}
	case Remove:
		delete(entries, path)
	}

	for p := range entries {
		if !fileReadable(p) {
			delete(entries, p)
		}
	}

	all[s.workDir] = entries
	s.save(all)
}

// Scores materializes the history for the working directory at now,
// sorted by descending score. Entries whose file is no longer readable
// are dropped from the result but left on disk; pruning happens on
// write so renders do not amplify into rewrites.
func (s *Store) Scores(now time.Time) []ScoredPath {
	entries := s.load()[s.workDir]
	out := make([]ScoredPath, 0, len(entries))
	for p, at := range entries {
		if !fileReadable(p) {
			continue
		}
		out = append(out, ScoredPath{Path: p, Score: ScoreAt(now, epochToTime(at))})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func (s *Store) load() map[string]map[string]float64 {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("frecency read failed", "path", s.filePath, "error", err)
		}
		return make(map[string]map[string]float64)
	}
	var all map[string]map[string]float64
	if err := json.Unmarshal(data, &all); err != nil {
		s.log.Warn("frecency file corrupt, starting empty", "path", s.filePath, "error", err)
		return make(map[string]map[string]float64)
	}
	if all == nil {
		all = make(map[string]map[string]float64)
	}
	return all
}

func (s *Store) save(all map[string]map[string]float64) {
	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		s.log.Warn("frecency dir create failed", "error", err)
		return
	}
	data, err := json.Marshal(all)
	if err != nil {
		s.log.Warn("frecency encode failed", "error", err)
		return
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		s.log.Warn("frecency write failed", "path", s.filePath, "error", err)
	}
}

// fileReadable reports whether path is an existing regular file.
func fileReadable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func epochToTime(sec float64) time.Time {
	return time.Unix(0, int64(sec*float64(time.Second)))
}

func timeToEpoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
