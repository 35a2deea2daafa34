package humdrum

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RebuildLines regenerates every line's text from current token contents.
// Call after editing token texts in place.
func (f *File) RebuildLines() {
	if f == nil {
		return
	}
	for _, ln := range f.lines {
		ln.Rebuild(f.arena)
	}
}

// WriteTo writes the file's line text to w, one line per record. The output
// reflects line text as last tokenized or rebuilt.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, ln := range f.lines {
		n, err := io.WriteString(w, ln.Text()+"\n")
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("write line %d: %w", ln.Number(), err)
		}
	}
	return total, nil
}

// WriteSpineInfo writes one line per file line with each token's spine-path
// label, tab separated.
func (f *File) WriteSpineInfo(w io.Writer) error {
	return f.writePerToken(w, func(t Token) string { return t.SpineInfo() })
}

// WriteTrackInfo writes one line per file line with each token's track and
// subtrack numbers, tab separated.
func (f *File) WriteTrackInfo(w io.Writer) error {
	return f.writePerToken(w, func(t Token) string {
		if t.Subtrack() > 0 {
			return strconv.Itoa(t.Track()) + "." + strconv.Itoa(t.Subtrack())
		}
		return strconv.Itoa(t.Track())
	})
}

// WriteDataTypeInfo writes one line per file line with each token's current
// datatype, tab separated. The datatype is the exclusive interpretation of
// the token's track.
func (f *File) WriteDataTypeInfo(w io.Writer) error {
	return f.writePerToken(w, func(t Token) string {
		return f.TrackStart(t.Track()).Text()
	})
}

func (f *File) writePerToken(w io.Writer, label func(Token) string) error {
	for i := 0; i < f.LineCount(); i++ {
		ln := f.Line(i)
		if !ln.HasSpines() {
			if _, err := io.WriteString(w, ln.Text()+"\n"); err != nil {
				return fmt.Errorf("write line %d: %w", ln.Number(), err)
			}
			continue
		}
		parts := make([]string, 0, ln.FieldCount())
		for j := 0; j < ln.FieldCount(); j++ {
			parts = append(parts, label(ln.Token(j)))
		}
		if _, err := io.WriteString(w, strings.Join(parts, "\t")+"\n"); err != nil {
			return fmt.Errorf("write line %d: %w", ln.Number(), err)
		}
	}
	return nil
}
