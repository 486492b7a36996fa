package tui

import "github.com/dkmr/fpick/internal/picker"

// SetupDoneMsg indicates the session caches have been filled.
type SetupDoneMsg struct{}

// RankStepMsg re-enters the event loop to run the next chunk of an
// in-flight ranking. Carrying the ranking itself (with its launch
// tick) lets Update drop stale chunks without bookkeeping.
type RankStepMsg struct {
	Ranking *picker.Ranking
}

// RefreshMsg indicates the working directory changed on disk and the
// file listing should be rebuilt.
type RefreshMsg struct{}

// ErrorMsg represents a non-fatal error to surface in the status bar.
type ErrorMsg struct {
	Err error
}
