// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ezlatexdoc CLI:
// strip-stage configuration and the run report schema.
package types

// SplitConfig holds settings for the strip stage.
type SplitConfig struct {
	// SrcExtension is the extension used to derive the stripped-source
	// output path from the input path (default ".sty").
	SrcExtension string `json:"src_extension" yaml:"src_extension"`

	// DocExtension is the extension used to derive the documentation
	// output path from the input path (default ".tex").
	DocExtension string `json:"doc_extension" yaml:"doc_extension"`

	// Force allows overwriting output files that already exist.
	Force bool `json:"force" yaml:"force"`
}

// DefaultSplitConfig returns the stock strip settings.
func DefaultSplitConfig() SplitConfig {
	return SplitConfig{
		SrcExtension: ".sty",
		DocExtension: ".tex",
	}
}
