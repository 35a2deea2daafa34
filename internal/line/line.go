// Package line defines one input line of a Humdrum file: its classification,
// its tokenization into arena tokens, and regeneration of the line text from
// token contents.
package line

import (
	"strings"

	"github.com/jacoelho/humdrum/internal/token"
)

// Kind classifies a line from its leading characters.
type Kind uint8

const (
	// Empty is a blank line.
	Empty Kind = iota
	// GlobalComment is a "!!" comment or "!!!" reference record.
	GlobalComment
	// LocalComment is a "!" comment participating in spine structure.
	LocalComment
	// Interpretation is a "*" line, including manipulator lines.
	Interpretation
	// Data is any other line.
	Data
)

// Classify derives a line kind from its raw text.
func Classify(text string) Kind {
	switch {
	case text == "":
		return Empty
	case strings.HasPrefix(text, "!!"):
		return GlobalComment
	case strings.HasPrefix(text, "!"):
		return LocalComment
	case strings.HasPrefix(text, "*"):
		return Interpretation
	default:
		return Data
	}
}

// Line is one input line and the ordered tokens produced from it. The line
// owns its tokens through the file's arena; token links are populated later
// by stitching.
type Line struct {
	text   string
	index  int
	kind   Kind
	tokens []token.Handle
}

// New creates a line from raw text at the given 0-based file position.
func New(text string, index int) *Line {
	return &Line{text: text, index: index, kind: Classify(text)}
}

// Text returns the current line text. After token edits the text is stale
// until Rebuild is called.
func (l *Line) Text() string { return l.text }

// Index returns the 0-based position of the line in the file.
func (l *Line) Index() int { return l.index }

// Number returns the 1-based line number used in diagnostics.
func (l *Line) Number() int { return l.index + 1 }

// Kind returns the line classification.
func (l *Line) Kind() Kind { return l.kind }

// SetIndex records the line's 0-based position in the file.
func (l *Line) SetIndex(i int) { l.index = i }

// HasSpines reports whether the line participates in the spine/column model.
// Blank lines and global comments sit outside the spine graph.
func (l *Line) HasSpines() bool {
	return l.kind == LocalComment || l.kind == Interpretation || l.kind == Data
}

// IsInterpretation reports whether the line is an interpretation line.
func (l *Line) IsInterpretation() bool { return l.kind == Interpretation }

// IsExclusive reports whether the line starts with an exclusive
// interpretation.
func (l *Line) IsExclusive() bool {
	return strings.HasPrefix(l.text, "**")
}

// IsManipulator reports whether any token on the line manipulates spine
// topology.
func (l *Line) IsManipulator(arena *token.Arena) bool {
	for _, h := range l.tokens {
		if arena.At(h).IsManipulator() {
			return true
		}
	}
	return false
}

// TokenCount returns the number of tokens on the line.
func (l *Line) TokenCount() int { return len(l.tokens) }

// Token returns the handle of the i-th token, or token.None when out of
// range.
func (l *Line) Token(i int) token.Handle {
	if i < 0 || i >= len(l.tokens) {
		return token.None
	}
	return l.tokens[i]
}

// Tokenize splits the line text into arena tokens on the tab delimiter.
// Lines outside the spine model become a single token holding the whole line
// text. Any existing tokens are discarded.
func (l *Line) Tokenize(arena *token.Arena) {
	l.tokens = l.tokens[:0]
	if !l.HasSpines() {
		l.tokens = append(l.tokens, arena.New(l.text, l.index))
		return
	}
	for _, field := range strings.Split(l.text, "\t") {
		l.tokens = append(l.tokens, arena.New(field, l.index))
	}
}

// Rebuild regenerates the line text from current token contents.
func (l *Line) Rebuild(arena *token.Arena) {
	if len(l.tokens) == 0 {
		return
	}
	parts := make([]string, 0, len(l.tokens))
	for _, h := range l.tokens {
		parts = append(parts, arena.At(h).Text())
	}
	l.text = strings.Join(parts, "\t")
}
