package picker

import (
	"sort"
	"strings"
)

// Ranking scores the candidates for one query in bounded chunks. The
// host calls Step, re-queues itself on its event loop, and calls Step
// again until Done, so input handling interleaves between chunks.
//
// Each Step re-checks the session tick captured at launch; a newer
// tick means a later keystroke superseded this ranking, and the
// ranking stops without touching the result cache. Suspension happens
// only at chunk boundaries, so a ranking that has been superseded can
// never publish results out of tick order.
type Ranking struct {
	Query string // whitespace-stripped
	Tick  int

	session    *Session
	candidates []string
	next       int
	batch      int
	scored     []*WeightedFile

	done      bool
	canceled  bool
	fromCache bool
}

// NewRanking starts a ranking for rawQuery at the current tick.
// Internal whitespace is stripped from the query first; the delegated
// matcher gives spaces no special meaning. A result-cache hit returns
// an already-finished ranking without consulting the matcher.
func (s *Session) NewRanking(rawQuery string) *Ranking {
	query := strings.Join(strings.Fields(rawQuery), "")
	r := &Ranking{Query: query, Tick: s.tick, session: s}

	if !s.ready {
		s.log.Warn("ranking requested before Setup", "session", s.ID)
		r.done = true
		return r
	}

	if cached, ok := s.results[query]; ok {
		r.scored = cached
		r.done = true
		r.fromCache = true
		return r
	}

	cands := s.Candidates()
	limit := s.cfg.MaxResultsConsidered
	if query == "" {
		// Browsing only needs enough rows to fill the pane; a real
		// query has to scan deeper to find its matches.
		limit = s.cfg.MaxResultsRendered
	}
	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}
	r.candidates = cands

	r.batch = s.cfg.BatchSize
	if r.batch <= 0 {
		r.batch = len(cands) + 1 // chunking disabled: one synchronous pass
	}
	return r
}

// Step processes one chunk and reports whether the ranking is
// finished, either by completing or by being superseded.
func (r *Ranking) Step() bool {
	if r.done {
		return true
	}
	if r.Tick != r.session.tick {
		r.done = true
		r.canceled = true
		return true
	}

	end := r.next + r.batch
	if end > len(r.candidates) {
		end = len(r.candidates)
	}
	for ; r.next < end; r.next++ {
		if w, ok := r.session.scoreCandidate(r.Query, r.candidates[r.next]); ok {
			r.scored = append(r.scored, w)
		}
	}
	if r.next < len(r.candidates) {
		return false
	}

	r.finish()
	return true
}

// Run drives Step to completion synchronously. Hosts with an event
// loop should call Step themselves instead.
func (r *Ranking) Run() {
	for !r.Step() {
	}
}

func (r *Ranking) finish() {
	// Stable sort keeps aggregation order among equal scores, which
	// keeps frecency-known files ahead of listed ties.
	sort.SliceStable(r.scored, func(i, j int) bool {
		return r.scored[i].Score > r.scored[j].Score
	})
	for _, w := range r.scored {
		w.Icon = r.session.icons.Icon(w.Path)
		r.session.formatter.Fill(w)
	}
	r.session.results[r.Query] = r.scored
	r.done = true
}

// Done reports whether the ranking has terminated.
func (r *Ranking) Done() bool { return r.done }

// Canceled reports whether the ranking was superseded by a newer tick.
func (r *Ranking) Canceled() bool { return r.canceled }

// FromCache reports whether the results came from the query cache.
func (r *Ranking) FromCache() bool { return r.fromCache }

// Results returns the scored, sorted results. Nil until Done, and nil
// forever for a canceled ranking.
func (r *Ranking) Results() []*WeightedFile {
	if !r.done || r.canceled {
		return nil
	}
	return r.scored
}
