package frecency

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "frecency.json"), dir, nil)
	return store, dir
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func scoreOf(entries []ScoredPath, path string) (float64, bool) {
	for _, e := range entries {
		if e.Path == path {
			return e.Score, true
		}
	}
	return 0, false
}

func TestFirstIncreaseScoresOne(t *testing.T) {
	store, dir := newTestStore(t)
	path := touch(t, dir, "a.go")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	store.UpdateScore(path, Increase, now)

	score, ok := scoreOf(store.Scores(now), path)
	if !ok {
		t.Fatal("entry missing after increase")
	}
	if math.Abs(score-1) > 1e-6 {
		t.Errorf("score = %v, want 1", score)
	}
}

func TestSecondIncreaseAddsDecayedScore(t *testing.T) {
	store, dir := newTestStore(t)
	path := touch(t, dir, "a.go")
	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(10 * 24 * time.Hour)

	store.UpdateScore(path, Increase, first)
	store.UpdateScore(path, Increase, second)

	score, ok := scoreOf(store.Scores(second), path)
	if !ok {
		t.Fatal("entry missing")
	}
	want := ScoreAt(second, DateAtScoreOne(first, 1)) + 1
	if math.Abs(score-want) > 1e-6 {
		t.Errorf("score = %v, want %v", score, want)
	}
}

func TestRemoveDeletesEntry(t *testing.T) {
	store, dir := newTestStore(t)
	path := touch(t, dir, "a.go")
	now := time.Now()

	store.UpdateScore(path, Increase, now)
	store.UpdateScore(path, Remove, now)

	if _, ok := scoreOf(store.Scores(now), path); ok {
		t.Error("entry survived Remove")
	}
}

func TestUpdatePrunesDeletedFiles(t *testing.T) {
	store, dir := newTestStore(t)
	gone := touch(t, dir, "gone.go")
	kept := touch(t, dir, "kept.go")
	now := time.Now()

	store.UpdateScore(gone, Increase, now)
	store.UpdateScore(kept, Increase, now)
	if err := os.Remove(gone); err != nil {
		t.Fatal(err)
	}

	// Touching any other path rewrites the validated map.
	store.UpdateScore(kept, Increase, now)

	persisted := store.load()[dir]
	if _, ok := persisted[gone]; ok {
		t.Error("deleted file still in persisted map")
	}
	if _, ok := persisted[kept]; !ok {
		t.Error("live file pruned")
	}
}

func TestIncreaseSkipsDirectoriesAndMissing(t *testing.T) {
	store, dir := newTestStore(t)
	now := time.Now()

	store.UpdateScore(dir, Increase, now)
	store.UpdateScore(filepath.Join(dir, "nope.go"), Increase, now)

	if entries := store.Scores(now); len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestScoresSortedDescending(t *testing.T) {
	store, dir := newTestStore(t)
	old := touch(t, dir, "old.go")
	fresh := touch(t, dir, "fresh.go")
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	store.UpdateScore(old, Increase, base)
	store.UpdateScore(fresh, Increase, base.AddDate(0, 0, 20))

	entries := store.Scores(base.AddDate(0, 0, 21))
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Path != fresh {
		t.Errorf("first entry = %s, want the fresher file", entries[0].Path)
	}
}

func TestCorruptFileDegradesToEmpty(t *testing.T) {
	store, dir := newTestStore(t)
	if err := os.WriteFile(store.filePath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if entries := store.Scores(time.Now()); len(entries) != 0 {
		t.Errorf("corrupt file produced %d entries", len(entries))
	}

	// And the store still accepts updates afterwards.
	path := touch(t, dir, "a.go")
	store.UpdateScore(path, Increase, time.Now())
	if _, ok := scoreOf(store.Scores(time.Now()), path); !ok {
		t.Error("store unusable after corrupt read")
	}
}
