package picker

import "github.com/sahilm/fuzzy"

// Matcher is the fuzzy-matching contract the scorer delegates to. The
// candidate is the path relative to the working directory; positions
// are byte indices into it, ordered ascending. ok is false when the
// query does not match at all, which excludes the candidate outright.
type Matcher interface {
	Match(query, candidate string) (ok bool, score int, positions []int)
}

// FuzzyMatcher is the default Matcher, backed by sahilm/fuzzy.
type FuzzyMatcher struct{}

func (FuzzyMatcher) Match(query, candidate string) (bool, int, []int) {
	matches := fuzzy.Find(query, []string{candidate})
	if len(matches) == 0 {
		return false, 0, nil
	}
	return true, matches[0].Score, matches[0].MatchedIndexes
}
