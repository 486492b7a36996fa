package picker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dkmr/fpick/internal/config"
	"github.com/dkmr/fpick/internal/frecency"
)

// stubMatcher matches case-insensitive substrings, scoring earlier
// occurrences higher, and counts invocations.
type stubMatcher struct {
	calls int
}

func (m *stubMatcher) Match(query, candidate string) (bool, int, []int) {
	m.calls++
	idx := strings.Index(strings.ToLower(candidate), strings.ToLower(query))
	if idx < 0 {
		return false, 0, nil
	}
	positions := make([]int, len(query))
	for i := range positions {
		positions[i] = idx + i
	}
	return true, 100 - idx, positions
}

type testEnv struct {
	session *Session
	matcher *stubMatcher
	store   *frecency.Store
	workDir string
}

// newTestEnv builds a session over a temp working directory containing
// the named files, with a real frecency store and a static listing.
func newTestEnv(t *testing.T, cfg *config.Config, files ...string) *testEnv {
	t.Helper()
	workDir := t.TempDir()

	paths := make([]string, len(files))
	for i, name := range files {
		p := filepath.Join(workDir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		paths[i] = p
	}

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	matcher := &stubMatcher{}
	store := frecency.NewStore(filepath.Join(t.TempDir(), "frecency.json"), workDir, nil)
	session := NewSession(Options{
		Config:  cfg,
		WorkDir: workDir,
		Store:   store,
		Matcher: matcher,
		Icons:   NoIcons{},
		Lister:  StaticLister{Paths: paths},
		Buffers: NoBuffers{},
		Now:     func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	})
	return &testEnv{session: session, matcher: matcher, store: store, workDir: workDir}
}

func (e *testEnv) abs(name string) string {
	return filepath.Join(e.workDir, name)
}

func (e *testEnv) setup(t *testing.T) {
	t.Helper()
	e.session.Setup(context.Background())
}
