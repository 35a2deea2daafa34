// Command humlint checks the spine structure of a Humdrum file and can dump
// the derived spine-path, track, or datatype labels.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/humdrum"
	humerrors "github.com/jacoelho/humdrum/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("humlint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	csv := fs.Bool("csv", false, "read comma-delimited input")
	separator := fs.String("separator", ",", "CSV field separator (implies -csv)")
	spineInfo := fs.Bool("spine-info", false, "dump spine-path labels per token")
	trackInfo := fs.Bool("track-info", false, "dump track numbers per token")
	dataTypeInfo := fs.Bool("datatype-info", false, "dump datatypes per token")
	fs.Usage = func() {
		_ = writef(stderr, "Usage: humlint [options] <file.krn>\n\n")
		_ = writeln(stderr, "Checks the spine structure of a Humdrum file.")
		_ = writeln(stderr, "A file argument of \"-\" or none reads standard input.")
		_ = writeln(stderr)
		_ = writeln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		_ = writeln(stderr, "error: at most one file argument is allowed")
		fs.Usage()
		return 2
	}
	path := "-"
	if len(remaining) == 1 {
		path = remaining[0]
	}

	var opts []humdrum.Option
	if *csv || *separator != "," {
		opts = append(opts, humdrum.WithCSVSeparator(*separator))
	}

	file, err := humdrum.ParseFile(path, opts...)
	if err != nil {
		if structural, ok := humerrors.AsStructural(err); ok {
			_ = writeln(stderr, structural.Error())
		} else {
			_ = writef(stderr, "error: %v\n", err)
		}
		_ = writef(stderr, "%s fails structural analysis\n", displayName(path))
		return 1
	}

	switch {
	case *spineInfo:
		err = file.WriteSpineInfo(stdout)
	case *trackInfo:
		err = file.WriteTrackInfo(stdout)
	case *dataTypeInfo:
		err = file.WriteDataTypeInfo(stdout)
	default:
		err = writef(stdout, "%s is structurally valid: %d lines, %d tracks\n",
			displayName(path), file.LineCount(), file.MaxTrack())
	}
	if err != nil {
		_ = writef(stderr, "error writing output: %v\n", err)
		return 1
	}
	return 0
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
