package tracks_test

import (
	"testing"

	"github.com/jacoelho/humdrum/internal/token"
	"github.com/jacoelho/humdrum/internal/tracks"
)

func TestOpenAssignsIncreasingTrackNumbers(t *testing.T) {
	arena := token.NewArena()
	table := tracks.New()

	if got, want := table.MaxTrack(), 0; got != want {
		t.Fatalf("max track of empty table = %d, want %d", got, want)
	}

	a := arena.New("**kern", 0)
	b := arena.New("**dynam", 0)
	if got, want := table.Open(a), 1; got != want {
		t.Fatalf("first track = %d, want %d", got, want)
	}
	if got, want := table.Open(b), 2; got != want {
		t.Fatalf("second track = %d, want %d", got, want)
	}
	if got, want := table.MaxTrack(), 2; got != want {
		t.Fatalf("max track = %d, want %d", got, want)
	}
	if got, want := table.Start(1), a; got != want {
		t.Fatalf("start of track 1 = %v, want %v", got, want)
	}
	if got, want := table.Start(2), b; got != want {
		t.Fatalf("start of track 2 = %v, want %v", got, want)
	}
}

func TestReserveHoldsSlotForNextOpen(t *testing.T) {
	arena := token.NewArena()
	table := tracks.New()
	table.Open(arena.New("**kern", 0))

	table.Reserve()
	if !table.HasReserved() {
		t.Fatalf("reserved slot not reported")
	}
	if got, want := table.MaxTrack(), 2; got != want {
		t.Fatalf("max track after reserve = %d, want %d", got, want)
	}
	if got := table.Start(2); got != token.None {
		t.Fatalf("reserved start = %v, want None", got)
	}

	h := arena.New("**dynam", 3)
	if got, want := table.Open(h), 2; got != want {
		t.Fatalf("opened reserved track = %d, want %d", got, want)
	}
	if table.HasReserved() {
		t.Fatalf("reserved slot still reported after open")
	}
	if got, want := table.Start(2), h; got != want {
		t.Fatalf("start of track 2 = %v, want %v", got, want)
	}

	// the next open appends; track numbers are never reused
	if got, want := table.Open(arena.New("**text", 5)), 3; got != want {
		t.Fatalf("track after filled slot = %d, want %d", got, want)
	}
}

func TestCloseRecordsMultipleEnds(t *testing.T) {
	arena := token.NewArena()
	table := tracks.New()
	table.Open(arena.New("**kern", 0))

	e1 := arena.New("*-", 5)
	e2 := arena.New("*-", 5)
	table.Close(1, e1)
	table.Close(1, e2)

	ends := table.Ends(1)
	if got, want := len(ends), 2; got != want {
		t.Fatalf("end count = %d, want %d", got, want)
	}
	if ends[0] != e1 || ends[1] != e2 {
		t.Fatalf("ends = %v, want [%v %v]", ends, e1, e2)
	}

	// out-of-range closes are ignored
	table.Close(0, e1)
	table.Close(9, e1)
	if got := table.Ends(0); got != nil {
		t.Fatalf("track 0 ends = %v, want nil", got)
	}
}

func TestResetReturnsToReservedTrackZero(t *testing.T) {
	arena := token.NewArena()
	table := tracks.New()
	table.Open(arena.New("**kern", 0))
	table.Close(1, arena.New("*-", 3))

	table.Reset()
	if got, want := table.MaxTrack(), 0; got != want {
		t.Fatalf("max track after reset = %d, want %d", got, want)
	}
	if got := table.Start(1); got != token.None {
		t.Fatalf("start of track 1 after reset = %v, want None", got)
	}
}
