package humdrum_test

import (
	"strings"
	"testing"

	"github.com/jacoelho/humdrum"
	humerrors "github.com/jacoelho/humdrum/errors"
)

func mustParse(t *testing.T, contents string, opts ...humdrum.Option) *humdrum.File {
	t.Helper()
	f, err := humdrum.ParseString(contents, opts...)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !f.Valid() {
		t.Fatalf("file not valid after successful parse: %s", f.ParseError())
	}
	return f
}

func TestSingleSpineFile(t *testing.T) {
	f := mustParse(t, "**kern\n4c\n4d\n*-\n")

	if got, want := f.LineCount(), 4; got != want {
		t.Fatalf("line count = %d, want %d", got, want)
	}
	if got, want := f.MaxTrack(), 1; got != want {
		t.Fatalf("max track = %d, want %d", got, want)
	}
	if got, want := f.TrackStart(1).Text(), "**kern"; got != want {
		t.Fatalf("track 1 start = %q, want %q", got, want)
	}
	if got, want := f.TrackEndCount(1), 1; got != want {
		t.Fatalf("track 1 end count = %d, want %d", got, want)
	}
	if got, want := f.TrackEnd(1, 0).Text(), "*-"; got != want {
		t.Fatalf("track 1 end = %q, want %q", got, want)
	}
	for i := 0; i < f.LineCount(); i++ {
		if got, want := f.Token(i, 0).Track(), 1; got != want {
			t.Errorf("line %d track = %d, want %d", i, got, want)
		}
	}
}

func TestSplitAndMergeTopology(t *testing.T) {
	f := mustParse(t, "**kern\n*^\n4c\t4d\n4e\t4f\n*v\t*v\n*-\n")

	// transient width of 2 between the split and merge lines
	for _, i := range []int{2, 3, 4} {
		if got, want := f.Line(i).FieldCount(), 2; got != want {
			t.Errorf("line %d field count = %d, want %d", i, got, want)
		}
	}
	if got, want := f.Line(5).FieldCount(), 1; got != want {
		t.Fatalf("line after merge field count = %d, want %d", got, want)
	}

	split := f.Token(1, 0)
	if got, want := split.NextCount(), 2; got != want {
		t.Fatalf("split forward count = %d, want %d", got, want)
	}

	// the two subspines carry sibling spine-path labels on the same track
	if got, want := f.Token(2, 0).SpineInfo(), "(1)a"; got != want {
		t.Fatalf("first subspine label = %q, want %q", got, want)
	}
	if got, want := f.Token(2, 1).SpineInfo(), "(1)b"; got != want {
		t.Fatalf("second subspine label = %q, want %q", got, want)
	}
	if f.Token(2, 0).Track() != 1 || f.Token(2, 1).Track() != 1 {
		t.Fatalf("subspines left track 1: %d and %d", f.Token(2, 0).Track(), f.Token(2, 1).Track())
	}
	if f.Token(2, 0).Subtrack() != 1 || f.Token(2, 1).Subtrack() != 2 {
		t.Fatalf("subtracks = %d and %d, want 1 and 2", f.Token(2, 0).Subtrack(), f.Token(2, 1).Subtrack())
	}

	// both merge tokens land on the single terminator
	terminator := f.Token(5, 0)
	if got, want := terminator.Text(), "*-"; got != want {
		t.Fatalf("line 5 token = %q, want %q", got, want)
	}
	if got, want := terminator.PrevCount(), 2; got != want {
		t.Fatalf("terminator backward count = %d, want %d", got, want)
	}
	for i := 0; i < 2; i++ {
		merge := f.Token(4, i)
		if got, want := merge.NextCount(), 1; got != want {
			t.Fatalf("merge token %d forward count = %d, want %d", i, got, want)
		}
		if got := merge.Next(0); got != terminator {
			t.Fatalf("merge token %d forward link = %v, want terminator", i, got)
		}
	}

	// the merge collapses the sibling labels back to the parent
	if got, want := terminator.SpineInfo(), "1"; got != want {
		t.Fatalf("post-merge label = %q, want %q", got, want)
	}
}

func TestAddManipulatorAllocatesNextTrack(t *testing.T) {
	f := mustParse(t, "**kern\n*+\n4c\t**dynam\n4d\tf\n*-\t*-\n")

	if got, want := f.MaxTrack(), 2; got != want {
		t.Fatalf("max track = %d, want %d", got, want)
	}
	if got, want := f.TrackStart(2).Text(), "**dynam"; got != want {
		t.Fatalf("track 2 start = %q, want %q", got, want)
	}
	if got, want := f.Token(3, 1).Track(), 2; got != want {
		t.Fatalf("new spine data track = %d, want %d", got, want)
	}
	if got, want := f.TrackEndCount(2), 1; got != want {
		t.Fatalf("track 2 end count = %d, want %d", got, want)
	}

	// the new exclusive interpretation has no backward link
	if got, want := f.TrackStart(2).PrevCount(), 0; got != want {
		t.Fatalf("track 2 start backward count = %d, want %d", got, want)
	}
}

func TestTrackNumbersAreMonotonic(t *testing.T) {
	f := mustParse(t, strings.Join([]string{
		"**kern\t**dynam",
		"*-\t*",
		"*+",
		"*\t**text",
		"a\tb",
		"*-\t*-",
	}, "\n"))

	if got, want := f.MaxTrack(), 3; got != want {
		t.Fatalf("max track = %d, want %d", got, want)
	}
	// track 1 terminated before track 3 was added; its number is not reused
	if got, want := f.TrackStart(3).Text(), "**text"; got != want {
		t.Fatalf("track 3 start = %q, want %q", got, want)
	}
	if got, want := f.Token(4, 1).Track(), 3; got != want {
		t.Fatalf("added spine data track = %d, want %d", got, want)
	}
}

func TestExchangeSymmetry(t *testing.T) {
	f := mustParse(t, "**kern\t**dynam\nA\tB\n*x\t*x\nC\tD\n*-\t*-\n")

	if got, want := f.Token(3, 0).Prev(0), f.Token(2, 1); got != want {
		t.Fatalf("next-line token 0 linked from %v, want previous token 1", got)
	}
	if got, want := f.Token(3, 1).Prev(0), f.Token(2, 0); got != want {
		t.Fatalf("next-line token 1 linked from %v, want previous token 0", got)
	}
	// the datatype labels travel with the exchange
	if got, want := f.Token(3, 0).Track(), 2; got != want {
		t.Fatalf("exchanged column 0 track = %d, want %d", got, want)
	}
	if got, want := f.Token(3, 1).Track(), 1; got != want {
		t.Fatalf("exchanged column 1 track = %d, want %d", got, want)
	}
}

func TestWidthConservationWithoutManipulators(t *testing.T) {
	f := mustParse(t, "**kern\t**dynam\t**text\n4c\tf\tla\n.\t.\t.\n4d\tp\tsol\n*-\t*-\t*-\n")
	for i := 0; i < f.LineCount(); i++ {
		if got, want := f.Line(i).FieldCount(), 3; got != want {
			t.Fatalf("line %d field count = %d, want %d", i, got, want)
		}
	}
}

func TestMismatchedLineLengthsReportBothLines(t *testing.T) {
	f, err := humdrum.ParseString("**kern\t**dynam\n4c\tf\n4d\n")
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	if f.Valid() {
		t.Fatalf("file reported valid after failure")
	}
	structural, ok := humerrors.AsStructural(err)
	if !ok {
		t.Fatalf("error %v is not structural", err)
	}
	if got, want := structural.Code, string(humerrors.ErrFieldCount); got != want {
		t.Fatalf("error code = %q, want %q", got, want)
	}
	if !strings.Contains(f.ParseError(), "lines 2 and 3") {
		t.Fatalf("parse error %q does not name both lines", f.ParseError())
	}
}

func TestDataBeforeExclusiveIsFatal(t *testing.T) {
	f, err := humdrum.ParseString("4c\n**kern\n")
	if err == nil || f.Valid() {
		t.Fatalf("expected parse failure, valid=%v err=%v", f.Valid(), err)
	}
	structural, ok := humerrors.AsStructural(err)
	if !ok {
		t.Fatalf("error %v is not structural", err)
	}
	if got, want := structural.Code, string(humerrors.ErrFirstLine); got != want {
		t.Fatalf("error code = %q, want %q", got, want)
	}
}

func TestNonNullTokenResolution(t *testing.T) {
	f := mustParse(t, "**kern\n4c\n.\n4d\n*-\n")

	null := f.Token(2, 0)
	if prev := null.PrevNonNull(); len(prev) != 1 || prev[0].Text() != "4c" {
		t.Fatalf("null previous non-null = %v, want [4c]", prev)
	}
	if next := null.NextNonNull(); len(next) != 1 || next[0].Text() != "4d" {
		t.Fatalf("null next non-null = %v, want [4d]", next)
	}
	data := f.Token(3, 0)
	if prev := data.PrevNonNull(); len(prev) != 1 || prev[0].Text() != "4c" {
		t.Fatalf("4d previous non-null = %v, want [4c]", prev)
	}
}

func TestNegativeIndexing(t *testing.T) {
	f := mustParse(t, "**kern\n4c\n4d\n*-\n")

	if got, want := f.Line(-1).Text(), "*-"; got != want {
		t.Fatalf("Line(-1) = %q, want %q", got, want)
	}
	if got, want := f.Token(-2, 0).Text(), "4d"; got != want {
		t.Fatalf("Token(-2, 0) = %q, want %q", got, want)
	}
	if got, want := f.TrackEnd(1, -1).Text(), "*-"; got != want {
		t.Fatalf("TrackEnd(1, -1) = %q, want %q", got, want)
	}
	if f.Line(-99).IsValid() {
		t.Fatalf("far out-of-range negative line reported valid")
	}
}

func TestCSVParity(t *testing.T) {
	tsv := mustParse(t, "**kern\t**dynam\n4c\tf\n.\t.\n*-\t*-\n")
	csv := mustParse(t, "**kern,**dynam\n4c,f\n.,.\n*-,*-\n", humdrum.WithCSV())

	if got, want := csv.LineCount(), tsv.LineCount(); got != want {
		t.Fatalf("line count = %d, want %d", got, want)
	}
	if got, want := csv.MaxTrack(), tsv.MaxTrack(); got != want {
		t.Fatalf("max track = %d, want %d", got, want)
	}
	for i := 0; i < tsv.LineCount(); i++ {
		if got, want := csv.Line(i).FieldCount(), tsv.Line(i).FieldCount(); got != want {
			t.Fatalf("line %d field count = %d, want %d", i, got, want)
		}
		for j := 0; j < tsv.Line(i).FieldCount(); j++ {
			if got, want := csv.Token(i, j).Text(), tsv.Token(i, j).Text(); got != want {
				t.Errorf("token %d/%d = %q, want %q", i, j, got, want)
			}
			if got, want := csv.Token(i, j).Track(), tsv.Token(i, j).Track(); got != want {
				t.Errorf("token %d/%d track = %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestRebuildLinesAfterTokenEdit(t *testing.T) {
	input := "**kern\t**dynam\n4c\tf\n*-\t*-\n"
	f := mustParse(t, input)

	// untouched files round trip bit for bit
	var out strings.Builder
	if _, err := f.WriteTo(&out); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := out.String(); got != input {
		t.Fatalf("round trip = %q, want %q", got, input)
	}

	f.Token(1, 0).SetText("8cc")
	f.RebuildLines()
	if got, want := f.Line(1).Text(), "8cc\tf"; got != want {
		t.Fatalf("rebuilt line = %q, want %q", got, want)
	}
}

func TestAppendRequiresReanalysis(t *testing.T) {
	f := mustParse(t, "**kern\n4c\n")
	if got, want := f.TrackEndCount(1), 0; got != want {
		t.Fatalf("end count before append = %d, want %d", got, want)
	}

	f.Append("4d")
	f.Append("*-")
	if err := f.Analyze(); err != nil {
		t.Fatalf("analyze after append: %v", err)
	}
	if got, want := f.LineCount(), 4; got != want {
		t.Fatalf("line count = %d, want %d", got, want)
	}
	if got, want := f.TrackEndCount(1), 1; got != want {
		t.Fatalf("end count after append = %d, want %d", got, want)
	}
}

func TestEmptyInputIsValid(t *testing.T) {
	f := mustParse(t, "")
	if got, want := f.LineCount(), 0; got != want {
		t.Fatalf("line count = %d, want %d", got, want)
	}
	if got, want := f.MaxTrack(), 0; got != want {
		t.Fatalf("max track = %d, want %d", got, want)
	}
}

func TestParseFileMissingPath(t *testing.T) {
	f, err := humdrum.ParseFile("testdata/does-not-exist.krn")
	if err == nil || f.Valid() {
		t.Fatalf("expected I/O failure, valid=%v err=%v", f.Valid(), err)
	}
	structural, ok := humerrors.AsStructural(err)
	if !ok {
		t.Fatalf("error %v is not structural", err)
	}
	if got, want := structural.Code, string(humerrors.ErrIO); got != want {
		t.Fatalf("error code = %q, want %q", got, want)
	}
}
