package picker

// BufferState describes the host editor's open buffers as seen at
// session setup. Paths are absolute. Buffers only contribute boost
// scores; a buffer with no file on disk is never a candidate.
type BufferState struct {
	Open      map[string]bool // path -> modified
	Current   string
	Alternate string
}

// BufferSource enumerates open buffers under a working directory.
type BufferSource interface {
	Buffers(workDir string) BufferState
}

// NoBuffers is the BufferSource for hosts without buffer tracking.
type NoBuffers struct{}

func (NoBuffers) Buffers(string) BufferState { return BufferState{} }

// RecentOpens is the BufferSource used by the standalone binary: files
// opened through the picker this run stand in for open buffers, the
// last open is the current buffer and the one before it the alternate.
type RecentOpens struct {
	opened []string
}

// Record notes that path was opened. Re-opening moves it to the front.
func (r *RecentOpens) Record(path string) {
	kept := r.opened[:0]
	for _, p := range r.opened {
		if p != path {
			kept = append(kept, p)
		}
	}
	r.opened = append(kept, path)
}

func (r *RecentOpens) Buffers(string) BufferState {
	state := BufferState{Open: make(map[string]bool, len(r.opened))}
	for _, p := range r.opened {
		state.Open[p] = false
	}
	if n := len(r.opened); n > 0 {
		state.Current = r.opened[n-1]
		if n > 1 {
			state.Alternate = r.opened[n-2]
		}
	}
	return state
}
