// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report reads and writes YAML run reports. A report records, per
// input file, how many lines fell into each classification and where the
// derived outputs went, so a run's outcome can be checked without re-reading
// the sources.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ezlatexdoc/pkg/types"
)

// New builds a RunReport for the named command, stamped with the current
// time in UTC.
func New(command string, files []types.FileReport) types.RunReport {
	return types.RunReport{
		Command:   command,
		Timestamp: time.Now().UTC(),
		Files:     files,
	}
}

// Write saves the report to path as YAML.
func Write(path string, r types.RunReport) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a previously saved report from disk.
func Read(path string) (*types.RunReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", path, err)
	}
	var r types.RunReport
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &r, nil
}
