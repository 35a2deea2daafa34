package humdrum

import (
	"bufio"
	"io"
	"os"
	"strings"

	humerrors "github.com/jacoelho/humdrum/errors"
	"github.com/jacoelho/humdrum/internal/line"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Parse reads Humdrum data from a reader and analyzes its spine structure.
// The returned File is non-nil even on failure so the stored error remains
// retrievable through ParseError.
func Parse(r io.Reader, opts ...Option) (*File, error) {
	cfg := applyOptions(opts)
	f := newFile()
	if err := f.readLines(r, cfg); err != nil {
		f.parseErr = err
		return f, err
	}
	if err := f.Analyze(); err != nil {
		return f, err
	}
	return f, nil
}

// ParseString reads Humdrum data from an in-memory string.
func ParseString(contents string, opts ...Option) (*File, error) {
	return Parse(strings.NewReader(contents), opts...)
}

// ParseFile reads Humdrum data from a file path. An empty path or "-" reads
// standard input.
func ParseFile(path string, opts ...Option) (*File, error) {
	if path == "" || path == "-" {
		return Parse(os.Stdin, opts...)
	}
	file, err := os.Open(path)
	if err != nil {
		f := newFile()
		f.parseErr = humerrors.NewStructuralf(humerrors.ErrIO, 0, -1,
			"cannot open file %s for reading: %v", path, err)
		return f, f.parseErr
	}
	defer func() {
		_ = file.Close()
	}()
	return Parse(file, opts...)
}

func (f *File) readLines(r io.Reader, cfg parseOptions) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if cfg.csv {
			text = line.ConvertCSV(text, cfg.separator)
		}
		f.Append(text)
	}
	if err := scanner.Err(); err != nil {
		return humerrors.NewStructuralf(humerrors.ErrIO, len(f.lines)+1, -1,
			"cannot read input: %v", err)
	}
	return nil
}
