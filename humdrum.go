// Package humdrum parses line-oriented, tab-delimited Humdrum data and
// reconstructs its evolving spine structure as a token graph. Spines may
// split, merge, exchange positions, spawn new spines, or terminate; the
// parser assigns every token a stable track number and spine-path label and
// links each token to its neighbors on adjacent lines.
package humdrum

import (
	"github.com/jacoelho/humdrum/internal/line"
	"github.com/jacoelho/humdrum/internal/stitch"
	"github.com/jacoelho/humdrum/internal/token"
	"github.com/jacoelho/humdrum/internal/topology"
	"github.com/jacoelho/humdrum/internal/tracks"
)

// File is one parsed Humdrum file: its lines, the arena owning every token,
// and the track table. A File is exclusively owned by the caller that parsed
// it; concurrent mutation of one File must be serialized by the caller.
type File struct {
	lines  []*line.Line
	arena  *token.Arena
	tracks *tracks.Table

	parseErr error
}

func newFile() *File {
	return &File{
		arena:  token.NewArena(),
		tracks: tracks.New(),
	}
}

// Valid reports whether the last analysis completed without a structural or
// I/O error. Traversal of an invalid file is undefined; callers must check
// Valid first.
func (f *File) Valid() bool {
	return f != nil && f.parseErr == nil
}

// ParseError returns the stored message of the last parse failure, or the
// empty string when the file is valid.
func (f *File) ParseError() string {
	if f == nil || f.parseErr == nil {
		return ""
	}
	return f.parseErr.Error()
}

// Err returns the structured error of the last parse failure, or nil.
func (f *File) Err() error {
	if f == nil {
		return nil
	}
	return f.parseErr
}

// Append adds one raw line to the end of the file. The spine structure is
// stale afterwards; call Analyze before traversing again.
func (f *File) Append(text string) {
	f.lines = append(f.lines, line.New(text, len(f.lines)))
}

// Analyze runs the full analysis pipeline over the current lines: tokenize,
// index, spine topology, token links, track numbers, and non-null data token
// resolution. Every stage failure halts the pipeline and invalidates the
// file. Lines are re-tokenized from their current text; call RebuildLines
// first if token texts were edited in place.
func (f *File) Analyze() error {
	f.parseErr = f.analyze()
	return f.parseErr
}

func (f *File) analyze() error {
	f.analyzeLines()
	f.analyzeTokens()
	if err := f.analyzeSpines(); err != nil {
		return err
	}
	if err := f.analyzeLinks(); err != nil {
		return err
	}
	f.analyzeTracks()
	f.resolveNonNullTokens()
	return nil
}

// analyzeLines stamps each line with its immutable 0-based index.
func (f *File) analyzeLines() {
	for i, ln := range f.lines {
		ln.SetIndex(i)
	}
}

// analyzeTokens regenerates the token arena from current line text.
func (f *File) analyzeTokens() {
	f.arena.Reset()
	for _, ln := range f.lines {
		ln.Tokenize(f.arena)
	}
}

// analyzeSpines runs the topology tracker across all structural lines,
// validating column-count evolution and recording track starts and ends.
func (f *File) analyzeSpines() error {
	f.tracks.Reset()
	tracker := topology.NewTracker()
	for _, ln := range f.lines {
		if !ln.HasSpines() {
			f.arena.At(ln.Token(0)).SetField(0)
			continue
		}
		if err := tracker.Advance(ln, f.arena, f.tracks); err != nil {
			return err
		}
	}
	return nil
}

// analyzeLinks stitches every pair of consecutive structural lines together.
func (f *File) analyzeLinks() error {
	var prev *line.Line
	for _, ln := range f.lines {
		if !ln.HasSpines() {
			continue
		}
		if prev != nil {
			if err := stitch.Lines(f.arena, prev, ln); err != nil {
				return err
			}
		}
		prev = ln
	}
	return nil
}

// analyzeTracks derives each token's track number from its spine-path label
// and numbers subtracks left to right within each line.
func (f *File) analyzeTracks() {
	counts := make(map[int]int)
	ordinal := make(map[int]int)
	for _, ln := range f.lines {
		if !ln.HasSpines() {
			continue
		}
		clear(counts)
		for i := 0; i < ln.TokenCount(); i++ {
			counts[topology.TrackOf(f.arena.At(ln.Token(i)).SpineInfo())]++
		}
		clear(ordinal)
		for i := 0; i < ln.TokenCount(); i++ {
			tok := f.arena.At(ln.Token(i))
			track := topology.TrackOf(tok.SpineInfo())
			tok.SetTrack(track)
			if counts[track] > 1 {
				ordinal[track]++
				tok.SetSubtrack(ordinal[track])
			} else {
				tok.SetSubtrack(0)
			}
		}
	}
}
