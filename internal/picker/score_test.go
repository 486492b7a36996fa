package picker

import (
	"math"
	"testing"

	"github.com/dkmr/fpick/internal/config"
)

func TestBasenameBoostExact(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Weights.Basename = 400
	env := newTestEnv(t, cfg, "src/init.lua")
	env.setup(t)

	w, ok := env.session.scoreCandidate("init", env.abs("src/init.lua"))
	if !ok {
		t.Fatal("candidate excluded")
	}
	if w.FileScore != 400 {
		t.Errorf("FileScore = %v, want exactly 400", w.FileScore)
	}
}

func TestBasenameBoostWithExtension(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Weights.Basename = 400
	env := newTestEnv(t, cfg, "src/init.lua")
	env.setup(t)

	w, ok := env.session.scoreCandidate("init.lua", env.abs("src/init.lua"))
	if !ok {
		t.Fatal("candidate excluded")
	}
	if w.FileScore != 400 {
		t.Errorf("FileScore = %v, want 400", w.FileScore)
	}
}

func TestWeightedBlend(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FuzzyScoreMultiple = 0.8
	cfg.FileScoreMultiple = 0.2
	env := newTestEnv(t, cfg, "a.go")
	env.setup(t)
	env.session.frecencyByPath[env.abs("a.go")] = 20

	w, ok := env.session.scoreCandidate("a", env.abs("a.go"))
	if !ok {
		t.Fatal("candidate excluded")
	}
	want := 0.8*w.FuzzyScore + 0.2*20
	if math.Abs(w.Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", w.Score, want)
	}
	if w.FileScore != 20 {
		t.Errorf("FileScore = %v, want 20", w.FileScore)
	}
}

func TestEmptyQueryIsFrecencyOnly(t *testing.T) {
	env := newTestEnv(t, nil, "a.go")
	env.setup(t)
	env.session.frecencyByPath[env.abs("a.go")] = 7
	before := env.matcher.calls

	w, ok := env.session.scoreCandidate("", env.abs("a.go"))
	if !ok {
		t.Fatal("candidate excluded")
	}
	if w.FuzzyScore != 0 {
		t.Errorf("FuzzyScore = %v, want 0", w.FuzzyScore)
	}
	if w.FileScore != 7 {
		t.Errorf("FileScore = %v, want 7 (frecency alone)", w.FileScore)
	}
	if env.matcher.calls != before {
		t.Error("matcher consulted for empty query")
	}
}

func TestNonMatchExcluded(t *testing.T) {
	env := newTestEnv(t, nil, "a.go")
	env.setup(t)

	if _, ok := env.session.scoreCandidate("zzz", env.abs("a.go")); ok {
		t.Error("non-matching candidate survived")
	}
}

func TestBoostTierPrecedence(t *testing.T) {
	env := newTestEnv(t, nil, "cur.go", "alt.go", "mod.go", "open.go")
	env.setup(t)
	env.session.bufState = BufferState{
		Open: map[string]bool{
			env.abs("cur.go"):  false,
			env.abs("alt.go"):  true,
			env.abs("mod.go"):  true,
			env.abs("open.go"): false,
		},
		Current:   env.abs("cur.go"),
		Alternate: env.abs("alt.go"),
	}
	w := env.session.cfg.Weights

	cases := []struct {
		name string
		path string
		want float64
	}{
		{"current wins over open", env.abs("cur.go"), w.CurrentBuf},
		{"alternate wins over modified", env.abs("alt.go"), w.AlternateBuf},
		{"modified wins over open", env.abs("mod.go"), w.ModifiedBuf},
		{"plain open buffer", env.abs("open.go"), w.OpenBuf},
	}
	for _, tc := range cases {
		if got := env.session.boostScore("x", tc.path); got != tc.want {
			t.Errorf("%s: boost = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBasenameBeatsCurrentBuffer(t *testing.T) {
	env := newTestEnv(t, nil, "init.lua")
	env.setup(t)
	env.session.bufState = BufferState{Current: env.abs("init.lua")}

	got := env.session.boostScore("init", env.abs("init.lua"))
	if got != env.session.cfg.Weights.Basename {
		t.Errorf("boost = %v, want basename tier %v", got, env.session.cfg.Weights.Basename)
	}
}

func TestScaleFuzzyBounded(t *testing.T) {
	cases := []struct {
		raw, queryLen int
		want          float64
	}{
		{0, 0, 0},
		{-10, 3, 0},          // penalties clamp at the floor
		{1000000, 3, 100},    // ceiling
		{12, 1, 100},         // exactly the per-rune max
		{6, 1, 50},           // half the per-rune max
	}
	for _, tc := range cases {
		if got := scaleFuzzy(tc.raw, tc.queryLen); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("scaleFuzzy(%d, %d) = %v, want %v", tc.raw, tc.queryLen, got, tc.want)
		}
	}
}
