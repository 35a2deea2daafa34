package token

// Arena owns every token of one parsed file. Lines and the track table refer
// to tokens by handle; the arena is the single owner.
type Arena struct {
	tokens []Token
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// New appends a token for the given line and returns its handle.
func (a *Arena) New(text string, lineIndex int) Handle {
	a.tokens = append(a.tokens, Token{
		text:      text,
		kind:      Classify(text),
		lineIndex: lineIndex,
	})
	return Handle(len(a.tokens) - 1)
}

// At returns the token for a handle, or nil for None or an out-of-range
// handle.
func (a *Arena) At(h Handle) *Token {
	if a == nil || h < 0 || int(h) >= len(a.tokens) {
		return nil
	}
	return &a.tokens[h]
}

// Len returns the number of tokens owned by the arena.
func (a *Arena) Len() int {
	if a == nil {
		return 0
	}
	return len(a.tokens)
}

// Link records a forward link from one token to another together with the
// matching backward link.
func (a *Arena) Link(from, to Handle) {
	f := a.At(from)
	t := a.At(to)
	if f == nil || t == nil {
		return
	}
	f.next = append(f.next, to)
	t.prev = append(t.prev, from)
}

// AddNextNonNull records a resolved next non-null data token, skipping
// duplicates.
func (a *Arena) AddNextNonNull(h, target Handle) {
	t := a.At(h)
	if t == nil {
		return
	}
	t.nextNonNull = appendUnique(t.nextNonNull, target)
}

// AddPrevNonNull records a resolved previous non-null data token, skipping
// duplicates.
func (a *Arena) AddPrevNonNull(h, target Handle) {
	t := a.At(h)
	if t == nil {
		return
	}
	t.prevNonNull = appendUnique(t.prevNonNull, target)
}

func appendUnique(list []Handle, h Handle) []Handle {
	for _, have := range list {
		if have == h {
			return list
		}
	}
	return append(list, h)
}

// Reset discards all tokens while keeping the backing storage.
func (a *Arena) Reset() {
	if a == nil {
		return
	}
	a.tokens = a.tokens[:0]
}
