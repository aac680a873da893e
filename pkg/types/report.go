// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// FileReport records the outcome of classifying one input file.
type FileReport struct {
	// Input is the annotated source file that was read.
	Input string `json:"input" yaml:"input"`

	// SrcOutput is the stripped-source path written, empty for inspect runs.
	SrcOutput string `json:"src_output,omitempty" yaml:"src_output,omitempty"`

	// DocOutput is the documentation path written, empty for inspect runs.
	DocOutput string `json:"doc_output,omitempty" yaml:"doc_output,omitempty"`

	// Directives counts %%%-prefixed lines (discarded).
	Directives int `json:"directives" yaml:"directives"`

	// Comments counts %%-prefixed lines kept in the stripped source.
	Comments int `json:"comments" yaml:"comments"`

	// DocLines counts %-prefixed lines extracted to the documentation output.
	DocLines int `json:"doc_lines" yaml:"doc_lines"`

	// SourceLines counts ordinary source lines.
	SourceLines int `json:"source_lines" yaml:"source_lines"`

	// TotalLines is the number of input lines read.
	TotalLines int `json:"total_lines" yaml:"total_lines"`
}

// RunReport is the on-disk record of one CLI run over one or more inputs.
type RunReport struct {
	// Command names the subcommand that produced the report
	// ("strip" or "inspect").
	Command string `json:"command" yaml:"command"`

	// Timestamp is when the run finished, in UTC.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Files holds one entry per input, in processing order.
	Files []FileReport `json:"files" yaml:"files"`
}
