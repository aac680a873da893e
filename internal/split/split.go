// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split runs the line classifier over an annotated source stream and
// routes each line to the stripped-source or documentation output. The pass
// is sequential and stateless: every line is classified on its own, and the
// two outputs never depend on each other's content.
package split

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/ezlatexdoc/internal/line"
)

// maxLineBytes bounds a single input line. Annotated LaTeX sources are
// line-oriented; anything past this is not a text file we can split.
const maxLineBytes = 1 << 20

// Outputs couples the two output streams of a run: the stripped source and
// the extracted documentation.
type Outputs struct {
	Src io.Writer
	Doc io.Writer
}

// Discard returns Outputs that throw both streams away. Inspect runs use it
// to collect Stats without writing derived files.
func Discard() Outputs {
	return Outputs{Src: io.Discard, Doc: io.Discard}
}

// Stats counts classified lines by kind for one input.
type Stats struct {
	Directives  int
	Comments    int
	DocLines    int
	SourceLines int
}

// Total returns the number of input lines read.
func (s Stats) Total() int {
	return s.Directives + s.Comments + s.DocLines + s.SourceLines
}

// Split reads r line by line, classifies each line, and writes its processed
// form to the matching output. Directives are dropped, kept comments and
// source lines go to out.Src, documentation lines go to out.Doc. Output
// lines are terminated with a single \n regardless of the input convention;
// a trailing \r from CRLF input is removed before classification.
func Split(r io.Reader, out Outputs) (Stats, error) {
	var stats Stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		l := line.Classify(strings.TrimSuffix(sc.Text(), "\r"))
		switch l.Kind {
		case line.KindDirective:
			stats.Directives++
		case line.KindComment:
			stats.Comments++
			if err := writeLine(out.Src, l.Processed); err != nil {
				return stats, fmt.Errorf("writing stripped source: %w", err)
			}
		case line.KindDoc:
			stats.DocLines++
			if err := writeLine(out.Doc, l.Processed); err != nil {
				return stats, fmt.Errorf("writing documentation: %w", err)
			}
		case line.KindSource:
			stats.SourceLines++
			if err := writeLine(out.Src, l.Processed); err != nil {
				return stats, fmt.Errorf("writing stripped source: %w", err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}

	return stats, nil
}

func writeLine(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
