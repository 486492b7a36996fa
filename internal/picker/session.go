// Package picker implements the ranking engine: frecency-aware
// candidate aggregation, fuzzy scoring with buffer and basename
// boosts, per-query result caching, and chunked scoring that
// cooperates with a single-threaded event-loop host.
package picker

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkmr/fpick/internal/config"
	"github.com/dkmr/fpick/internal/frecency"
)

// Session holds all state for one picker session: the candidate
// caches, the per-query result cache, and the tick counter that
// cancels superseded work. Everything is mutated on the host event
// loop only, so there is no locking.
type Session struct {
	ID      string
	WorkDir string

	cfg     *config.Config
	store   *frecency.Store
	matcher Matcher
	icons   IconProvider
	lister  Lister
	buffers BufferSource
	log     *slog.Logger
	now     func() time.Time

	tick  int
	ready bool

	knownFiles     []frecency.ScoredPath
	frecencyByPath map[string]float64
	listedFiles    []string
	bufState       BufferState

	results map[string][]*WeightedFile

	formatter *Formatter
	diags     []string
}

// Options configures a Session. Config and WorkDir are required; every
// collaborator has a working default.
type Options struct {
	Config  *config.Config
	WorkDir string
	Store   *frecency.Store
	Matcher Matcher
	Icons   IconProvider
	Lister  Lister
	Buffers BufferSource
	Log     *slog.Logger
	Now     func() time.Time
}

// NewSession creates a session. Caches stay empty until Setup runs.
func NewSession(opts Options) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &Session{
		ID:      uuid.NewString(),
		WorkDir: opts.WorkDir,
		cfg:     cfg,
		store:   opts.Store,
		matcher: opts.Matcher,
		icons:   opts.Icons,
		lister:  opts.Lister,
		buffers: opts.Buffers,
		log:     opts.Log,
		now:     opts.Now,
		results: make(map[string][]*WeightedFile),
	}
	if s.matcher == nil {
		s.matcher = FuzzyMatcher{}
	}
	if s.icons == nil {
		if cfg.IconsEnabled {
			s.icons = NewExtIcons()
		} else {
			s.icons = NoIcons{}
		}
	}
	if s.lister == nil {
		cmd := cfg.ListingCommand
		if len(cmd) == 0 {
			cmd = DefaultListingCommand()
		}
		s.lister = CommandLister{Command: cmd}
	}
	if s.buffers == nil {
		s.buffers = NoBuffers{}
	}
	if s.log == nil {
		s.log = slog.New(slog.DiscardHandler)
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.formatter = &Formatter{
		WorkDir:    opts.WorkDir,
		ShowScores: cfg.ShowScores,
		ShowIcons:  cfg.IconsEnabled,
	}
	return s
}

// Config returns the session's immutable configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// Tick returns the current query generation.
func (s *Session) Tick() int { return s.tick }

// Bump advances the tick, superseding any in-flight ranking, and
// returns the new value.
func (s *Session) Bump() int {
	s.tick++
	return s.tick
}

// Ready reports whether Setup has completed.
func (s *Session) Ready() bool { return s.ready }

// Diagnostics returns degraded-mode notices from the last Setup or
// refresh, for surfacing in the host UI.
func (s *Session) Diagnostics() []string { return s.diags }

// Setup fills every candidate cache and clears the result cache.
// Collaborator failures degrade to empty caches with a diagnostic;
// Setup itself never fails.
func (s *Session) Setup(ctx context.Context) {
	s.diags = s.diags[:0]
	s.refreshKnown()
	s.RefreshListed(ctx)
	s.refreshBuffers()
	s.ready = true
}

// RefreshListed re-runs the file enumerator and invalidates the result
// cache. Enumeration failure keeps an empty listing; frecency-known
// files still work.
func (s *Session) RefreshListed(ctx context.Context) {
	paths, err := s.lister.List(ctx, s.WorkDir)
	if err != nil {
		s.log.Warn("file listing failed", "session", s.ID, "error", err)
		s.diags = append(s.diags, "file listing unavailable: "+err.Error())
		paths = nil
	}
	s.listedFiles = paths
	s.clearResults()
}

func (s *Session) refreshKnown() {
	s.knownFiles = nil
	s.frecencyByPath = make(map[string]float64)
	if s.store == nil {
		return
	}
	s.knownFiles = s.store.Scores(s.now())
	for _, e := range s.knownFiles {
		s.frecencyByPath[e.Path] = e.Score
	}
	s.clearResults()
}

func (s *Session) refreshBuffers() {
	state := s.buffers.Buffers(s.WorkDir)
	filtered := BufferState{Open: make(map[string]bool, len(state.Open))}
	for p, mod := range state.Open {
		if underDir(p, s.WorkDir) {
			filtered.Open[p] = mod
		}
	}
	if underDir(state.Current, s.WorkDir) {
		filtered.Current = state.Current
	}
	if underDir(state.Alternate, s.WorkDir) {
		filtered.Alternate = state.Alternate
	}
	s.bufState = filtered
	s.clearResults()
}

// RecordOpen persists an open event for path and refreshes the
// frecency and buffer caches so the next query sees it.
func (s *Session) RecordOpen(path string) {
	if !s.ready {
		s.log.Warn("RecordOpen before Setup", "session", s.ID)
		return
	}
	if s.store != nil {
		s.store.UpdateScore(path, frecency.Increase, s.now())
	}
	if r, ok := s.buffers.(*RecentOpens); ok {
		r.Record(path)
	}
	s.refreshKnown()
	s.refreshBuffers()
}

func (s *Session) clearResults() {
	s.results = make(map[string][]*WeightedFile)
}

// underDir reports whether path lies under dir. Empty paths do not.
func underDir(path, dir string) bool {
	if path == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
