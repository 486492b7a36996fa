package picker

// Candidates merges the frecency-known files and the fresh listing
// into one deduplicated sequence. History entries come first, already
// sorted by descending score; listed files follow in enumeration
// order, skipping any path the history already contributed. Open
// buffers are deliberately not a source: they only affect boosts.
func (s *Session) Candidates() []string {
	seen := make(map[string]struct{}, len(s.knownFiles)+len(s.listedFiles))
	out := make([]string, 0, len(s.knownFiles)+len(s.listedFiles))

	for _, e := range s.knownFiles {
		if _, dup := seen[e.Path]; dup {
			continue
		}
		seen[e.Path] = struct{}{}
		out = append(out, e.Path)
	}
	for _, p := range s.listedFiles {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
