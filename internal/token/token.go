// Package token defines the atomic token of a Humdrum file and the arena that
// owns every token of one parsed file. Tokens are addressed by stable handles
// so that forward/backward spine links never alias Go pointers across
// structures.
package token

import "strings"

// Handle addresses one token inside an Arena. Handles are stable for the
// lifetime of the parsed file.
type Handle int32

// None is the null handle.
const None Handle = -1

// Kind classifies a token from its text prefix.
type Kind uint8

const (
	// Data is an ordinary data token.
	Data Kind = iota
	// Null is the null data placeholder ".".
	Null
	// Comment is a local or global comment token.
	Comment
	// Interpretation is a generic (non-manipulator) interpretation.
	Interpretation
	// Exclusive is an exclusive interpretation ("**name") opening a track.
	Exclusive
	// Split is the spine-split manipulator "*^".
	Split
	// Merge is the spine-merge manipulator "*v".
	Merge
	// Exchange is the spine-exchange manipulator "*x".
	Exchange
	// Add is the spine-add manipulator "*+".
	Add
	// Terminate is the spine-terminate manipulator "*-".
	Terminate
)

// Classify derives a token kind from its text.
func Classify(text string) Kind {
	switch {
	case text == ".":
		return Null
	case strings.HasPrefix(text, "**"):
		return Exclusive
	case text == "*^":
		return Split
	case text == "*v":
		return Merge
	case text == "*x":
		return Exchange
	case text == "*+":
		return Add
	case text == "*-":
		return Terminate
	case strings.HasPrefix(text, "*"):
		return Interpretation
	case strings.HasPrefix(text, "!"):
		return Comment
	default:
		return Data
	}
}

// Token is one field of one line. Link fields hold handles into the owning
// Arena; the token never owns its neighbors.
type Token struct {
	text      string
	kind      Kind
	lineIndex int
	field     int
	track     int
	subtrack  int
	spineInfo string

	next []Handle
	prev []Handle

	nextNonNull []Handle
	prevNonNull []Handle
}

// Text returns the token text.
func (t *Token) Text() string { return t.text }

// Kind returns the token classification.
func (t *Token) Kind() Kind { return t.kind }

// LineIndex returns the 0-based index of the owning line.
func (t *Token) LineIndex() int { return t.lineIndex }

// Field returns the 0-based field index of the token on its line.
func (t *Token) Field() int { return t.field }

// Track returns the token's track number, 0 until track analysis assigns one.
func (t *Token) Track() int { return t.track }

// Subtrack returns the token's subtrack number. Zero means the track has a
// single column on the token's line; after a split the columns are numbered
// from one.
func (t *Token) Subtrack() int { return t.subtrack }

// SpineInfo returns the hierarchical spine-path label, such as "(2)a".
func (t *Token) SpineInfo() string { return t.spineInfo }

// IsManipulator reports whether the token changes spine topology. Exclusive
// interpretations and terminators count as manipulators.
func (t *Token) IsManipulator() bool {
	return t.kind >= Exclusive
}

// IsNull reports whether the token is a null data, null interpretation, or
// null comment token.
func (t *Token) IsNull() bool {
	return t.text == "." || t.text == "*" || t.text == "!"
}

// IsData reports whether the token carries data rather than interpretation or
// comment content. Null data placeholders count as data.
func (t *Token) IsData() bool {
	return t.kind == Data || t.kind == Null
}

// NextCount returns the number of forward links.
func (t *Token) NextCount() int { return len(t.next) }

// Next returns the i-th forward link.
func (t *Token) Next(i int) Handle {
	if i < 0 || i >= len(t.next) {
		return None
	}
	return t.next[i]
}

// PrevCount returns the number of backward links.
func (t *Token) PrevCount() int { return len(t.prev) }

// Prev returns the i-th backward link.
func (t *Token) Prev(i int) Handle {
	if i < 0 || i >= len(t.prev) {
		return None
	}
	return t.prev[i]
}

// NextNonNull returns the resolved next non-null data tokens.
func (t *Token) NextNonNull() []Handle { return t.nextNonNull }

// PrevNonNull returns the resolved previous non-null data tokens.
func (t *Token) PrevNonNull() []Handle { return t.prevNonNull }

// SetText replaces the token text and reclassifies it.
func (t *Token) SetText(text string) {
	t.text = text
	t.kind = Classify(text)
}

// SetField records the token's 0-based field index.
func (t *Token) SetField(i int) { t.field = i }

// SetSpineInfo records the token's spine-path label.
func (t *Token) SetSpineInfo(info string) { t.spineInfo = info }

// SetTrack records the token's track number.
func (t *Token) SetTrack(track int) { t.track = track }

// SetSubtrack records the token's subtrack number.
func (t *Token) SetSubtrack(sub int) { t.subtrack = sub }
