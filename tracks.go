package humdrum

// TrackFilter selects which tokens a track extraction keeps. The zero value
// keeps everything.
type TrackFilter struct {
	// ExcludeNulls drops null data, interpretation, and comment placeholders.
	ExcludeNulls bool
	// ExcludeManipulators drops spine manipulators other than the opening
	// exclusive interpretation and terminators.
	ExcludeManipulators bool
	// ExcludeGlobals drops lines outside the spine structure instead of
	// interleaving their single token in file order.
	ExcludeGlobals bool
}

func (tf TrackFilter) keeps(t Token) bool {
	if tf.ExcludeNulls && t.IsNull() {
		return false
	}
	if tf.ExcludeManipulators && t.IsManipulator() && !t.IsTerminator() && !t.IsExclusive() {
		return false
	}
	return true
}

// MaxTrack returns the number of primary spines in the data.
func (f *File) MaxTrack() int {
	if f == nil {
		return 0
	}
	return f.tracks.MaxTrack()
}

// TrackStart returns the exclusive interpretation that opened the given
// track, or an invalid Token when the track number is out of range.
func (f *File) TrackStart(track int) Token {
	if f == nil {
		return Token{}
	}
	return f.tokenAt(f.tracks.Start(track))
}

// TrackEndCount returns the number of terminators recorded for a track. A
// track that split before terminating may end more than once.
func (f *File) TrackEndCount(track int) int {
	if f == nil {
		return 0
	}
	if track < 0 {
		track += f.tracks.MaxTrack() + 1
	}
	return len(f.tracks.Ends(track))
}

// TrackEnd returns the sub-th terminator of a track. Negative indices count
// from the end on both arguments.
func (f *File) TrackEnd(track, sub int) Token {
	if f == nil {
		return Token{}
	}
	if track < 0 {
		track += f.tracks.MaxTrack() + 1
	}
	ends := f.tracks.Ends(track)
	if sub < 0 {
		sub += len(ends)
	}
	if sub < 0 || sub >= len(ends) {
		return Token{}
	}
	return f.tokenAt(ends[sub])
}

// PrimaryTrackTokens extracts the first-subspine token sequence of a track by
// walking forward links from the track start. Unless excluded, non-spine
// lines contribute their single token interleaved in file order.
func (f *File) PrimaryTrackTokens(track int, filter TrackFilter) []Token {
	if f == nil {
		return nil
	}
	start := f.TrackStart(track)
	if !start.IsValid() {
		return nil
	}

	var out []Token
	if !filter.ExcludeGlobals {
		for i := 0; i < start.LineIndex(); i++ {
			if !f.Line(i).HasSpines() {
				out = append(out, f.Line(i).Token(0))
			}
		}
	}

	for cur := start; cur.IsValid(); {
		if filter.keeps(cur) {
			if !filter.ExcludeGlobals && len(out) > 0 {
				for i := out[len(out)-1].LineIndex() + 1; i < cur.LineIndex(); i++ {
					if !f.Line(i).HasSpines() {
						out = append(out, f.Line(i).Token(0))
					}
				}
			}
			out = append(out, cur)
		}
		if cur.NextCount() == 0 {
			break
		}
		cur = cur.Next(0)
	}

	if !filter.ExcludeGlobals && len(out) > 0 {
		for i := out[len(out)-1].LineIndex() + 1; i < f.LineCount(); i++ {
			if !f.Line(i).HasSpines() {
				out = append(out, f.Line(i).Token(0))
			}
		}
	}
	return out
}

// TrackTokens extracts, line by line, every token of a track including all
// subspines. Each element holds the track's tokens of one line; lines
// contributing nothing after filtering are skipped. Unless excluded,
// non-spine lines appear as a single-token row.
func (f *File) TrackTokens(track int, filter TrackFilter) [][]Token {
	if f == nil {
		return nil
	}
	var out [][]Token
	for i := 0; i < f.LineCount(); i++ {
		ln := f.Line(i)
		if !ln.HasSpines() {
			if !filter.ExcludeGlobals {
				out = append(out, []Token{ln.Token(0)})
			}
			continue
		}
		var row []Token
		for j := 0; j < ln.FieldCount(); j++ {
			tok := ln.Token(j)
			if tok.Track() != track || !filter.keeps(tok) {
				continue
			}
			row = append(row, tok)
		}
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	return out
}
