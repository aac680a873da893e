// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package line classifies single lines of an annotated LaTeX-style source
// file by their percent-sign prefix. A line is a directive, a kept comment,
// a documentation comment, or ordinary source; the classification decides
// which output stream the line belongs to and what text it contributes
// there. Classification is purely syntactic and carries no state from one
// line to the next.
package line

import "strings"

// Kind identifies which of the two derived outputs, if any, a line
// contributes to.
type Kind int

const (
	// KindDirective is a %%%-prefixed line. Directives are reserved for
	// future use and produce no output in either stream.
	KindDirective Kind = iota

	// KindComment is a %%-prefixed comment, kept verbatim in the stripped
	// source.
	KindComment

	// KindDoc is a %-prefixed documentation line, extracted to the
	// documentation output with its marker removed.
	KindDoc

	// KindSource is any other line, kept in the stripped source with any
	// trailing comment removed.
	KindSource
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDirective:
		return "directive"
	case KindComment:
		return "comment"
	case KindDoc:
		return "doc"
	case KindSource:
		return "source"
	}
	return "unknown"
}

// Line prefix markers, most specific first. Rule order resolves the overlap:
// a %%% line is a directive, never a comment.
const (
	directiveMarker = "%%%"
	commentMarker   = "%%"
	docMarker       = "%"
)

// Line is a classified input line.
type Line struct {
	// Orig is the raw line as read from the input, without its terminator.
	Orig string

	// Processed is the text the line contributes to its output stream.
	// Always empty for directives.
	Processed string

	// Kind is the line's classification.
	Kind Kind
}

// Classify determines a line's kind from its leading characters and computes
// its processed form. The marker rules are checked most-specific first and
// the source rule matches anything, so every line classifies to exactly one
// kind.
func Classify(orig string) Line {
	switch {
	case strings.HasPrefix(orig, directiveMarker):
		return Line{Orig: orig, Kind: KindDirective}
	case strings.HasPrefix(orig, commentMarker):
		return Line{Orig: orig, Processed: orig, Kind: KindComment}
	case strings.HasPrefix(orig, docMarker):
		return Line{Orig: orig, Processed: orig[len(docMarker):], Kind: KindDoc}
	default:
		return Line{Orig: orig, Processed: stripTrailingComment(orig), Kind: KindSource}
	}
}

// stripTrailingComment removes an end-of-line comment from a source line.
// The percent sign itself stays so the stripped line remains syntactically
// valid LaTeX ("x = 1 % note" becomes "x = 1 %"). The scan is a literal
// first-occurrence search: an escaped \% is treated like any other percent
// sign. Stripping an already-stripped line is a no-op, since the kept marker
// is the line's last character.
func stripTrailingComment(s string) string {
	if i := strings.IndexByte(s, '%'); i >= 0 {
		return s[:i+1]
	}
	return s
}
