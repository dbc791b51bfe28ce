// Package loader reads Turtle documents line by line and feeds them
// through the classifier into a document accumulator. File access and
// progress reporting live here so the core parser stays pure.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/semanticowl/semowl/pkg/turtle"
)

// ErrNotTurtle is returned under PolicyFail when a line cannot be
// classified as any Turtle construct.
var ErrNotTurtle = errors.New("input is not a turtle document")

// Policy decides what a load does with unrecognizable lines.
type Policy int

const (
	// PolicySkip counts unrecognizable lines and keeps going. One bad
	// line in a million-line ontology does not void the load.
	PolicySkip Policy = iota

	// PolicyFail aborts the load on the first unrecognizable line.
	PolicyFail
)

// maxLineSize bounds a single physical line. Ontology serializers emit
// long annotation literals, but not this long.
const maxLineSize = 1024 * 1024

// defaultProgressEvery is how many lines pass between progress callbacks
// when the caller does not choose an interval.
const defaultProgressEvery = 1000

// Options configures a Loader.
type Options struct {
	Policy Policy

	// Progress, when set, is called with the running line count every
	// ProgressEvery lines and once more at the end of the input.
	Progress      func(lines int)
	ProgressEvery int
}

// Loader turns a line stream into a turtle.Document.
type Loader struct {
	opts Options
}

// New creates a loader with the given options.
func New(opts Options) *Loader {
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = defaultProgressEvery
	}
	return &Loader{opts: opts}
}

// Load reads the input one line at a time, classifies each line and folds
// it into a document. The returned stats report skipped lines, malformed
// declarations and truncation; under PolicySkip the error is non-nil only
// for read failures.
func (l *Loader) Load(r io.Reader) (*turtle.Document, turtle.Stats, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	acc := turtle.NewAccumulator()
	lines := 0

	for sc.Scan() {
		line := sc.Text()
		lines++

		c := turtle.Classify(line)
		if c.Kind == turtle.KindNotATurtle && l.opts.Policy == PolicyFail {
			doc, stats := acc.Finish()
			return doc, stats, fmt.Errorf("line %d: %w", lines, ErrNotTurtle)
		}
		acc.Feed(c, line)

		if l.opts.Progress != nil && lines%l.opts.ProgressEvery == 0 {
			l.opts.Progress(lines)
		}
	}
	if err := sc.Err(); err != nil {
		doc, stats := acc.Finish()
		return doc, stats, fmt.Errorf("reading input: %w", err)
	}

	if l.opts.Progress != nil {
		l.opts.Progress(lines)
	}

	doc, stats := acc.Finish()
	return doc, stats, nil
}

// LoadFile opens a file and loads it.
func (l *Loader) LoadFile(path string) (*turtle.Document, turtle.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, turtle.Stats{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, stats, err := l.Load(f)
	if err != nil {
		return doc, stats, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, stats, nil
}
