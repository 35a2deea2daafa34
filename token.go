package humdrum

import "github.com/jacoelho/humdrum/internal/token"

// Token is a handle to one field of one line. The zero Token is invalid;
// accessors on an invalid Token return zero values.
type Token struct {
	file *File
	h    token.Handle
}

func (f *File) tokenAt(h token.Handle) Token {
	if f == nil || h == token.None {
		return Token{}
	}
	return Token{file: f, h: h}
}

func (f *File) tokens(handles []token.Handle) []Token {
	if len(handles) == 0 {
		return nil
	}
	out := make([]Token, 0, len(handles))
	for _, h := range handles {
		out = append(out, f.tokenAt(h))
	}
	return out
}

func (t Token) raw() *token.Token {
	if t.file == nil {
		return nil
	}
	return t.file.arena.At(t.h)
}

// IsValid reports whether the token refers to a real field.
func (t Token) IsValid() bool { return t.raw() != nil }

// Text returns the token text.
func (t Token) Text() string {
	tok := t.raw()
	if tok == nil {
		return ""
	}
	return tok.Text()
}

// String returns the token text.
func (t Token) String() string { return t.Text() }

// SetText replaces the token text in place. The owning line's text is stale
// until File.RebuildLines is called; the spine structure is unaffected only
// while the replacement keeps the same classification.
func (t Token) SetText(text string) {
	if tok := t.raw(); tok != nil {
		tok.SetText(text)
	}
}

// LineIndex returns the 0-based index of the owning line.
func (t Token) LineIndex() int {
	tok := t.raw()
	if tok == nil {
		return -1
	}
	return tok.LineIndex()
}

// LineNumber returns the 1-based line number of the owning line.
func (t Token) LineNumber() int { return t.LineIndex() + 1 }

// FieldIndex returns the 0-based column position on the owning line.
func (t Token) FieldIndex() int {
	tok := t.raw()
	if tok == nil {
		return -1
	}
	return tok.Field()
}

// Track returns the logical spine number the token belongs to.
func (t Token) Track() int {
	tok := t.raw()
	if tok == nil {
		return 0
	}
	return tok.Track()
}

// Subtrack returns the token's subspine number within its track on its line.
// Zero means the track occupies a single column on the line.
func (t Token) Subtrack() int {
	tok := t.raw()
	if tok == nil {
		return 0
	}
	return tok.Subtrack()
}

// SpineInfo returns the hierarchical spine-path label encoding the token's
// ancestry through splits and merges.
func (t Token) SpineInfo() string {
	tok := t.raw()
	if tok == nil {
		return ""
	}
	return tok.SpineInfo()
}

// IsData reports whether the token carries data, including the null "."
// placeholder.
func (t Token) IsData() bool {
	tok := t.raw()
	return tok != nil && tok.IsData()
}

// IsNull reports whether the token is a null data, interpretation, or
// comment placeholder.
func (t Token) IsNull() bool {
	tok := t.raw()
	return tok != nil && tok.IsNull()
}

// IsManipulator reports whether the token changes spine topology. Exclusive
// interpretations and terminators count as manipulators.
func (t Token) IsManipulator() bool {
	tok := t.raw()
	return tok != nil && tok.IsManipulator()
}

// IsInterpretation reports whether the token is any interpretation,
// manipulator or not.
func (t Token) IsInterpretation() bool {
	tok := t.raw()
	return tok != nil && tok.Kind() >= token.Interpretation
}

// IsExclusive reports whether the token opens a track ("**name").
func (t Token) IsExclusive() bool { return t.kindIs(token.Exclusive) }

// IsSplit reports whether the token is the split manipulator "*^".
func (t Token) IsSplit() bool { return t.kindIs(token.Split) }

// IsMerge reports whether the token is the merge manipulator "*v".
func (t Token) IsMerge() bool { return t.kindIs(token.Merge) }

// IsExchange reports whether the token is the exchange manipulator "*x".
func (t Token) IsExchange() bool { return t.kindIs(token.Exchange) }

// IsAdd reports whether the token is the add manipulator "*+".
func (t Token) IsAdd() bool { return t.kindIs(token.Add) }

// IsTerminator reports whether the token is the terminate manipulator "*-".
func (t Token) IsTerminator() bool { return t.kindIs(token.Terminate) }

func (t Token) kindIs(k token.Kind) bool {
	tok := t.raw()
	return tok != nil && tok.Kind() == k
}

// NextCount returns the number of forward links to tokens on the next
// structural line. A split token has two; a terminator has none.
func (t Token) NextCount() int {
	tok := t.raw()
	if tok == nil {
		return 0
	}
	return tok.NextCount()
}

// Next returns the i-th forward-linked token.
func (t Token) Next(i int) Token {
	tok := t.raw()
	if tok == nil {
		return Token{}
	}
	return t.file.tokenAt(tok.Next(i))
}

// PrevCount returns the number of backward links to tokens on the previous
// structural line. The target of a K-way merge has K.
func (t Token) PrevCount() int {
	tok := t.raw()
	if tok == nil {
		return 0
	}
	return tok.PrevCount()
}

// Prev returns the i-th backward-linked token.
func (t Token) Prev(i int) Token {
	tok := t.raw()
	if tok == nil {
		return Token{}
	}
	return t.file.tokenAt(tok.Prev(i))
}

// NextNonNull returns the next non-null data tokens the token resolves to,
// skipping intervening null placeholders.
func (t Token) NextNonNull() []Token {
	tok := t.raw()
	if tok == nil {
		return nil
	}
	return t.file.tokens(tok.NextNonNull())
}

// PrevNonNull returns the previous non-null data tokens the token resolves
// to. For a null data token these are the tokens it sustains.
func (t Token) PrevNonNull() []Token {
	tok := t.raw()
	if tok == nil {
		return nil
	}
	return t.file.tokens(tok.PrevNonNull())
}
