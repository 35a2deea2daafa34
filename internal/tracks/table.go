// Package tracks maintains the registry of logical spines: which exclusive
// interpretation opened each track and which terminators closed it. Track
// numbers are 1-based; slot 0 is reserved for non-spine bookkeeping.
package tracks

import "github.com/jacoelho/humdrum/internal/token"

// Table maps track numbers to start and end tokens. It holds handles, never
// ownership; the arena owns every token.
type Table struct {
	starts []token.Handle
	ends   [][]token.Handle
}

// New creates a table with the reserved track 0 slot.
func New() *Table {
	t := &Table{}
	t.Reserve()
	return t
}

// Reset returns the table to its initial state with only track 0 reserved.
func (t *Table) Reset() {
	t.starts = t.starts[:0]
	t.ends = t.ends[:0]
	t.Reserve()
}

// Reserve appends an unopened track slot. An add manipulator reserves the
// slot for the exclusive interpretation expected on the following line.
func (t *Table) Reserve() {
	t.starts = append(t.starts, token.None)
	t.ends = append(t.ends, nil)
}

// HasReserved reports whether the most recent track slot is still waiting for
// its exclusive interpretation.
func (t *Table) HasReserved() bool {
	return len(t.starts) > 1 && t.starts[len(t.starts)-1] == token.None
}

// Open records the start token of a track. A pending reserved slot is filled;
// otherwise a new track is appended. The assigned track number is returned.
// Track numbers increase strictly in discovery order and are never reused.
func (t *Table) Open(h token.Handle) int {
	if t.HasReserved() {
		t.starts[len(t.starts)-1] = h
		return len(t.starts) - 1
	}
	t.starts = append(t.starts, h)
	t.ends = append(t.ends, nil)
	return len(t.starts) - 1
}

// Close appends a terminate token to the given track's end list. A track may
// close more than once when it split before terminating. Out-of-range tracks
// are ignored.
func (t *Table) Close(track int, h token.Handle) {
	if track <= 0 || track >= len(t.ends) {
		return
	}
	t.ends[track] = append(t.ends[track], h)
}

// MaxTrack returns the highest track number allocated so far.
func (t *Table) MaxTrack() int {
	return len(t.starts) - 1
}

// Start returns the start token of a track, or token.None when the track
// number is out of range or the slot is still reserved.
func (t *Table) Start(track int) token.Handle {
	if track <= 0 || track >= len(t.starts) {
		return token.None
	}
	return t.starts[track]
}

// Ends returns the terminate tokens of a track in file order. The returned
// slice is owned by the table.
func (t *Table) Ends(track int) []token.Handle {
	if track <= 0 || track >= len(t.ends) {
		return nil
	}
	return t.ends[track]
}
