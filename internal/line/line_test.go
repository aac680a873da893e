// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package line

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		wantKind      Kind
		wantProcessed string
	}{
		{
			name:          "directive",
			in:            "%%% ignore-me",
			wantKind:      KindDirective,
			wantProcessed: "",
		},
		{
			name:          "kept_comment_verbatim",
			in:            "%% kept note",
			wantKind:      KindComment,
			wantProcessed: "%% kept note",
		},
		{
			name:          "doc_comment_marker_stripped",
			in:            "% this is documentation",
			wantKind:      KindDoc,
			wantProcessed: " this is documentation",
		},
		{
			name:          "source_trailing_comment",
			in:            "x = 1 % trailing note",
			wantKind:      KindSource,
			wantProcessed: "x = 1 %",
		},
		{
			name:          "source_plain",
			in:            "plain code line",
			wantKind:      KindSource,
			wantProcessed: "plain code line",
		},
		{
			name:          "empty_line_is_source",
			in:            "",
			wantKind:      KindSource,
			wantProcessed: "",
		},
		{
			name:          "bare_directive_marker",
			in:            "%%%",
			wantKind:      KindDirective,
			wantProcessed: "",
		},
		{
			name:          "bare_comment_marker",
			in:            "%%",
			wantKind:      KindComment,
			wantProcessed: "%%",
		},
		{
			name:          "bare_doc_marker",
			in:            "%",
			wantKind:      KindDoc,
			wantProcessed: "",
		},
		{
			name:          "doc_without_space",
			in:            "%documentation",
			wantKind:      KindDoc,
			wantProcessed: "documentation",
		},
		{
			name:          "indented_marker_is_source",
			in:            "  % not a doc line",
			wantKind:      KindSource,
			wantProcessed: "  %",
		},
		{
			name:          "escaped_percent_still_strips",
			in:            `100\% of profits % note`,
			wantKind:      KindSource,
			wantProcessed: `100\%`,
		},
		{
			name:          "source_ending_in_marker",
			in:            "x = 1 %",
			wantKind:      KindSource,
			wantProcessed: "x = 1 %",
		},
		{
			name:          "four_markers_is_directive",
			in:            "%%%% padding",
			wantKind:      KindDirective,
			wantProcessed: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in)
			if got.Kind != tt.wantKind {
				t.Fatalf("kind mismatch:\n got: %v\nwant: %v", got.Kind, tt.wantKind)
			}
			if got.Processed != tt.wantProcessed {
				t.Fatalf("processed mismatch:\n got: %q\nwant: %q", got.Processed, tt.wantProcessed)
			}
			if got.Orig != tt.in {
				t.Fatalf("orig mismatch: got %q, want %q", got.Orig, tt.in)
			}
		})
	}
}

// Lines that survive into the stripped source must classify to the same
// output when run through the classifier again.
func TestClassifyIdempotentOnStrippedSource(t *testing.T) {
	inputs := []string{
		"%% kept note",
		"x = 1 % trailing note",
		"plain code line",
		"",
		"  % not a doc line",
	}

	for _, in := range inputs {
		first := Classify(in)
		if first.Kind == KindDirective || first.Kind == KindDoc {
			t.Fatalf("input %q does not belong in the stripped source", in)
		}
		second := Classify(first.Processed)
		if second.Kind != first.Kind {
			t.Errorf("reclassifying %q: kind changed from %v to %v", first.Processed, first.Kind, second.Kind)
		}
		if second.Processed != first.Processed {
			t.Errorf("reclassifying %q: processed changed to %q", first.Processed, second.Processed)
		}
	}
}

func TestKindString(t *testing.T) {
	want := map[Kind]string{
		KindDirective: "directive",
		KindComment:   "comment",
		KindDoc:       "doc",
		KindSource:    "source",
		Kind(99):      "unknown",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), k.String(), s)
		}
	}
}
