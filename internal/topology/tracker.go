// Package topology tracks the evolving spine structure of a Humdrum file:
// the per-column datatype and spine-path labels, and how split, merge,
// exchange, add, and terminate manipulators rewrite them from one line to the
// next.
package topology

import (
	"strconv"
	"strings"

	humerrors "github.com/jacoelho/humdrum/errors"
	"github.com/jacoelho/humdrum/internal/line"
	"github.com/jacoelho/humdrum/internal/token"
	"github.com/jacoelho/humdrum/internal/tracks"
)

// Tracker carries the current per-column (datatype, spine-path) state across
// structural lines. The zero value is not ready; use NewTracker.
type Tracker struct {
	datatype    []string
	spineInfo   []string
	initialized bool

	// previous structural line, kept for two-line diagnostics
	prevNumber int
	prevText   string
}

// NewTracker creates a tracker with no active columns.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Width returns the current number of active columns.
func (t *Tracker) Width() int {
	return len(t.spineInfo)
}

// SpineInfo returns the current spine-path label of a column.
func (t *Tracker) SpineInfo(i int) string {
	if i < 0 || i >= len(t.spineInfo) {
		return ""
	}
	return t.spineInfo[i]
}

// Datatype returns the current datatype label of a column.
func (t *Tracker) Datatype(i int) string {
	if i < 0 || i >= len(t.datatype) {
		return ""
	}
	return t.datatype[i]
}

// Advance processes one structural line: it validates the line's width
// against the current state, stamps every token with its field index and
// spine-path label, and rewrites the column state when the line carries
// manipulators. Tracks are opened and closed on the table as exclusive and
// terminate tokens are processed.
func (t *Tracker) Advance(ln *line.Line, arena *token.Arena, table *tracks.Table) error {
	if !t.initialized {
		if !ln.IsExclusive() {
			return humerrors.NewStructuralf(humerrors.ErrFirstLine, ln.Number(), -1,
				"data found before exclusive interpretation: %s", ln.Text())
		}
		t.initialize(ln, arena, table)
		t.remember(ln)
		return nil
	}

	if len(t.datatype) != ln.TokenCount() {
		return humerrors.NewStructuralf(humerrors.ErrFieldCount, ln.Number(), -1,
			"lines %d and %d are not the same length: expected %d fields, but found %d: %q and %q",
			t.prevNumber, ln.Number(), len(t.datatype), ln.TokenCount(), t.prevText, ln.Text())
	}
	t.remember(ln)
	for i := 0; i < ln.TokenCount(); i++ {
		tok := arena.At(ln.Token(i))
		tok.SetSpineInfo(t.spineInfo[i])
		tok.SetField(i)
	}

	if !ln.IsManipulator(arena) {
		return nil
	}
	return t.adjust(ln, arena, table)
}

func (t *Tracker) remember(ln *line.Line) {
	t.prevNumber = ln.Number()
	t.prevText = ln.Text()
}

func (t *Tracker) initialize(ln *line.Line, arena *token.Arena, table *tracks.Table) {
	t.initialized = true
	t.datatype = make([]string, ln.TokenCount())
	t.spineInfo = make([]string, ln.TokenCount())
	for i := 0; i < ln.TokenCount(); i++ {
		h := ln.Token(i)
		tok := arena.At(h)
		t.datatype[i] = tok.Text()
		t.spineInfo[i] = strconv.Itoa(i + 1)
		tok.SetSpineInfo(t.spineInfo[i])
		tok.SetField(i)
		table.Open(h)
	}
}

// adjust rewrites the column state for a manipulator line, walking its tokens
// left to right.
func (t *Tracker) adjust(ln *line.Line, arena *token.Arena, table *tracks.Table) error {
	var newtype, newinfo []string
	for i := 0; i < ln.TokenCount(); i++ {
		h := ln.Token(i)
		tok := arena.At(h)
		switch tok.Kind() {
		case token.Split:
			newtype = append(newtype, t.datatype[i], t.datatype[i])
			newinfo = append(newinfo,
				"("+t.spineInfo[i]+")a",
				"("+t.spineInfo[i]+")b")
		case token.Merge:
			run := 0
			for j := i + 1; j < ln.TokenCount(); j++ {
				if arena.At(ln.Token(j)).Kind() != token.Merge {
					break
				}
				run++
			}
			newtype = append(newtype, t.datatype[i])
			newinfo = append(newinfo, MergedSpineInfo(t.spineInfo, i, run))
			i += run
		case token.Add:
			table.Reserve()
			newtype = append(newtype, t.datatype[i], "")
			newinfo = append(newinfo, t.spineInfo[i], strconv.Itoa(table.MaxTrack()))
		case token.Exchange:
			if i+1 >= ln.TokenCount() || arena.At(ln.Token(i+1)).Kind() != token.Exchange {
				return humerrors.NewStructuralf(humerrors.ErrExchange, ln.Number(), i,
					"exchange manipulator without adjacent partner: %s", ln.Text())
			}
			newtype = append(newtype, t.datatype[i+1], t.datatype[i])
			newinfo = append(newinfo, t.spineInfo[i+1], t.spineInfo[i])
			i++
		case token.Terminate:
			table.Close(TrackOf(t.spineInfo[i]), h)
		case token.Exclusive:
			if !table.HasReserved() {
				return humerrors.NewStructuralf(humerrors.ErrExclusive, ln.Number(), i,
					"exclusive interpretation with no preparation: %s", ln.Text())
			}
			table.Open(h)
			newtype = append(newtype, tok.Text())
			newinfo = append(newinfo, t.spineInfo[i])
		default:
			// null or generic interpretation passes through unchanged
			newtype = append(newtype, t.datatype[i])
			newinfo = append(newinfo, t.spineInfo[i])
		}
	}

	t.datatype = newtype
	t.spineInfo = newinfo
	return nil
}

// MergedSpineInfo combines the spine-path labels of a merge run starting at
// index start with extra additional merging columns. A two-column merge of
// sibling split halves collapses back to the parent label; any other merge
// concatenates the constituent labels. The concatenated form is cosmetic and
// carries no structural meaning.
func MergedSpineInfo(info []string, start, extra int) string {
	if extra == 1 {
		a, b := info[start], info[start+1]
		if len(a) == len(b) && len(a) > 3 && a[:len(a)-1] == b[:len(b)-1] {
			return a[1 : len(a)-2]
		}
		return a + " " + b
	}
	return strings.Join(info[start:start+extra+1], " ")
}

// TrackOf extracts the track number from a spine-path label, such as 2 from
// "(2)b". Zero is returned when the label carries no number.
func TrackOf(info string) int {
	start, end := -1, -1
	for i := 0; i < len(info); i++ {
		if info[i] >= '0' && info[i] <= '9' {
			if start < 0 {
				start = i
			}
			end = i + 1
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return 0
	}
	track, err := strconv.Atoi(info[start:end])
	if err != nil {
		return 0
	}
	return track
}
