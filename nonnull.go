package humdrum

import "github.com/jacoelho/humdrum/internal/token"

// resolveNonNullTokens records, for every data token, the previous and next
// non-null data tokens it resolves to. A null "." placeholder resolves to
// the token it sustains. The pass walks each track forward from its start
// and backward from every terminator, branching at splits and merges.
func (f *File) resolveNonNullTokens() {
	for track := 1; track <= f.tracks.MaxTrack(); track++ {
		if h := f.tracks.Start(track); h != token.None {
			f.resolvePrevForTrack(h, nil)
		}
	}
	for track := 1; track <= f.tracks.MaxTrack(); track++ {
		for _, h := range f.tracks.Ends(track) {
			f.resolveNextForTrack(h, nil)
		}
	}
}

// resolvePrevForTrack walks forward links assigning previous non-null
// tokens. lastSeen holds the most recent non-null data tokens on the path.
func (f *File) resolvePrevForTrack(start token.Handle, lastSeen []token.Handle) {
	for cur := start; ; {
		t := f.arena.At(cur)
		if t.NextCount() == 0 {
			return
		}
		if !t.IsData() {
			for i := 1; i < t.NextCount(); i++ {
				f.resolvePrevForTrack(t.Next(i), lastSeen)
			}
		} else {
			for _, p := range lastSeen {
				f.arena.AddPrevNonNull(cur, p)
			}
			if !t.IsNull() {
				lastSeen = []token.Handle{cur}
			}
		}
		cur = t.Next(0)
	}
}

// resolveNextForTrack walks backward links assigning next non-null tokens.
func (f *File) resolveNextForTrack(end token.Handle, lastSeen []token.Handle) {
	for cur := end; ; {
		t := f.arena.At(cur)
		if t.PrevCount() == 0 {
			return
		}
		for i := 1; i < t.PrevCount(); i++ {
			f.resolveNextForTrack(t.Prev(i), lastSeen)
		}
		if t.IsData() {
			for _, p := range lastSeen {
				f.arena.AddNextNonNull(cur, p)
			}
			if !t.IsNull() {
				lastSeen = []token.Handle{cur}
			}
		}
		cur = t.Prev(0)
	}
}
