package picker

import (
	"path/filepath"
	"strings"
)

// WeightedFile is one scored result for the current query. Instances
// live exactly as long as their result-cache entry.
type WeightedFile struct {
	Path    string // absolute
	RelPath string // relative to the working directory

	FuzzyScore float64 // rescaled onto the frecency-comparable range
	FileScore  float64 // boost tier + frecency
	Score      float64 // weighted blend of the two

	Positions []int // byte indices into RelPath to highlight
	Icon      Icon

	Line       string // formatted display line
	PathOffset int    // byte offset of RelPath within Line
	IconOffset int    // byte offset of the icon glyph, -1 when absent
}

// sahilm/fuzzy awards bonuses per matched rune (adjacency, separator,
// camel case, first char), topping out around this many points per
// query rune. Dividing by the ceiling puts fuzzy scores on the same
// 0-100 range frecency scores typically occupy, so the two configured
// multipliers blend comparable quantities whatever the query length.
// The exact constant is a tunable heuristic, not a contract.
const fuzzyMaxPerRune = 12.0

func scaleFuzzy(raw, queryLen int) float64 {
	if queryLen == 0 {
		return 0
	}
	scaled := float64(raw) / (fuzzyMaxPerRune * float64(queryLen)) * 100
	if scaled < 0 {
		return 0
	}
	if scaled > 100 {
		return 100
	}
	return scaled
}

// boostScore returns the additive contribution of the single boost
// tier that applies to path, in precedence order: basename match,
// current buffer, alternate buffer, modified buffer, open buffer.
func (s *Session) boostScore(query, path string) float64 {
	w := s.cfg.Weights
	if query != "" && s.basenameMatches(query, path) {
		return w.Basename
	}
	switch {
	case path == s.bufState.Current && s.bufState.Current != "":
		return w.CurrentBuf
	case path == s.bufState.Alternate && s.bufState.Alternate != "":
		return w.AlternateBuf
	default:
		if modified, open := s.bufState.Open[path]; open {
			if modified {
				return w.ModifiedBuf
			}
			return w.OpenBuf
		}
	}
	return 0
}

// basenameMatches reports whether query equals the candidate basename,
// with or without its extension.
func (s *Session) basenameMatches(query, path string) bool {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if !s.cfg.CaseSensitiveBoosts {
		query = strings.ToLower(query)
		base = strings.ToLower(base)
		stem = strings.ToLower(stem)
	}
	return query == base || query == stem
}

// scoreCandidate scores one candidate against the (already
// whitespace-normalized) query. ok is false when the candidate is
// filtered out entirely.
//
// Empty query is browse mode: no fuzzy score, no boosts, frecency
// alone orders the list. Non-empty queries delegate to the matcher
// and drop non-matching candidates, which is what keeps result counts
// bounded on large trees.
func (s *Session) scoreCandidate(query, path string) (*WeightedFile, bool) {
	rel := s.formatter.Relative(path)

	w := &WeightedFile{Path: path, RelPath: rel}

	if query == "" {
		w.FileScore = s.frecencyByPath[path]
		w.Score = s.cfg.FileScoreMultiple * w.FileScore
		return w, true
	}

	ok, raw, positions := s.matcher.Match(query, rel)
	if !ok {
		return nil, false
	}
	if s.cfg.HighlightEnabled {
		w.Positions = positions
	}
	w.FuzzyScore = scaleFuzzy(raw, len(query))
	w.FileScore = s.boostScore(query, path) + s.frecencyByPath[path]
	w.Score = s.cfg.FuzzyScoreMultiple*w.FuzzyScore + s.cfg.FileScoreMultiple*w.FileScore
	return w, true
}
