package humdrum

import "github.com/jacoelho/humdrum/internal/line"

// Line is a handle to one line of a parsed file. The zero Line is invalid.
type Line struct {
	file  *File
	index int
}

func (l Line) raw() *line.Line {
	if l.file == nil || l.index < 0 || l.index >= len(l.file.lines) {
		return nil
	}
	return l.file.lines[l.index]
}

// IsValid reports whether the line refers to a real file line.
func (l Line) IsValid() bool { return l.raw() != nil }

// Text returns the current line text. After in-place token edits the text is
// stale until File.RebuildLines is called.
func (l Line) Text() string {
	ln := l.raw()
	if ln == nil {
		return ""
	}
	return ln.Text()
}

// String returns the line text.
func (l Line) String() string { return l.Text() }

// Index returns the 0-based position of the line in the file.
func (l Line) Index() int { return l.index }

// Number returns the 1-based line number.
func (l Line) Number() int { return l.index + 1 }

// HasSpines reports whether the line participates in the spine structure.
// Blank lines and global comments do not.
func (l Line) HasSpines() bool {
	ln := l.raw()
	return ln != nil && ln.HasSpines()
}

// IsData reports whether the line is an ordinary data line.
func (l Line) IsData() bool { return l.kindIs(line.Data) }

// IsInterpretation reports whether the line is an interpretation line.
func (l Line) IsInterpretation() bool { return l.kindIs(line.Interpretation) }

// IsGlobalComment reports whether the line is a global comment or reference
// record.
func (l Line) IsGlobalComment() bool { return l.kindIs(line.GlobalComment) }

// IsLocalComment reports whether the line is a local comment.
func (l Line) IsLocalComment() bool { return l.kindIs(line.LocalComment) }

// IsEmpty reports whether the line is blank.
func (l Line) IsEmpty() bool { return l.kindIs(line.Empty) }

func (l Line) kindIs(k line.Kind) bool {
	ln := l.raw()
	return ln != nil && ln.Kind() == k
}

// IsExclusive reports whether the line starts a set of exclusive
// interpretations.
func (l Line) IsExclusive() bool {
	ln := l.raw()
	return ln != nil && ln.IsExclusive()
}

// IsManipulator reports whether any token on the line manipulates spine
// topology.
func (l Line) IsManipulator() bool {
	ln := l.raw()
	return ln != nil && ln.IsManipulator(l.file.arena)
}

// FieldCount returns the number of fields on the line. Lines outside the
// spine structure hold a single field with the full line text.
func (l Line) FieldCount() int {
	ln := l.raw()
	if ln == nil {
		return 0
	}
	return ln.TokenCount()
}

// Token returns the token at the given 0-based field index. Negative indices
// count from the end of the line.
func (l Line) Token(field int) Token {
	ln := l.raw()
	if ln == nil {
		return Token{}
	}
	if field < 0 {
		field += ln.TokenCount()
	}
	return l.file.tokenAt(ln.Token(field))
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	if f == nil {
		return 0
	}
	return len(f.lines)
}

// Line returns the line at the given 0-based index. Negative indices count
// from the end of the file.
func (f *File) Line(index int) Line {
	if f == nil {
		return Line{}
	}
	if index < 0 {
		index += len(f.lines)
	}
	if index < 0 || index >= len(f.lines) {
		return Line{}
	}
	return Line{file: f, index: index}
}

// Token returns the token at the given line and field indices. Negative
// indices count from the end on both axes.
func (f *File) Token(lineIndex, field int) Token {
	return f.Line(lineIndex).Token(field)
}
