// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/ezlatexdoc/pkg/types"
)

// StdoutPath routes an output to standard output instead of a file.
const StdoutPath = "-"

// Options control where SplitFile writes its outputs and whether existing
// files may be overwritten.
type Options struct {
	// SrcOutput is an explicit stripped-source path; empty derives the path
	// from the input and SrcExt. StdoutPath writes to standard output.
	SrcOutput string

	// DocOutput is an explicit documentation path; empty derives the path
	// from the input and DocExt. StdoutPath writes to standard output.
	DocOutput string

	// SrcExt is the extension for derived stripped-source paths (".sty"
	// when empty).
	SrcExt string

	// DocExt is the extension for derived documentation paths (".tex"
	// when empty).
	DocExt string

	// Force overwrites output files that already exist. Without it an
	// existing output is an error.
	Force bool
}

// FileResult holds the outcome of splitting one input file.
type FileResult struct {
	Input   string
	SrcPath string
	DocPath string
	Stats   Stats
}

// Report converts the result to its run-report form.
func (r FileResult) Report() types.FileReport {
	return types.FileReport{
		Input:       r.Input,
		SrcOutput:   r.SrcPath,
		DocOutput:   r.DocPath,
		Directives:  r.Stats.Directives,
		Comments:    r.Stats.Comments,
		DocLines:    r.Stats.DocLines,
		SourceLines: r.Stats.SourceLines,
		TotalLines:  r.Stats.Total(),
	}
}

// SplitFile splits a single annotated source file into its stripped-source
// and documentation outputs, printing a one-line status to w. Output paths
// not set in opts are derived from the input path by swapping its extension.
// Any I/O failure aborts the file.
func SplitFile(input string, opts Options, w io.Writer) (FileResult, error) {
	srcPath := opts.SrcOutput
	if srcPath == "" {
		srcPath = derivePath(input, defaultExt(opts.SrcExt, ".sty"))
	}
	docPath := opts.DocOutput
	if docPath == "" {
		docPath = derivePath(input, defaultExt(opts.DocExt, ".tex"))
	}
	if err := checkPaths(input, srcPath, docPath); err != nil {
		return FileResult{}, err
	}

	in, err := os.Open(input)
	if err != nil {
		return FileResult{}, fmt.Errorf("opening %s: %w", input, err)
	}
	defer in.Close()

	srcW, closeSrc, err := openOutput(srcPath, opts.Force)
	if err != nil {
		return FileResult{}, err
	}
	docW, closeDoc, err := openOutput(docPath, opts.Force)
	if err != nil {
		closeSrc()
		return FileResult{}, err
	}

	stats, splitErr := Split(in, Outputs{Src: srcW, Doc: docW})
	if err := closeSrc(); splitErr == nil && err != nil {
		splitErr = fmt.Errorf("writing %s: %w", srcPath, err)
	}
	if err := closeDoc(); splitErr == nil && err != nil {
		splitErr = fmt.Errorf("writing %s: %w", docPath, err)
	}
	if splitErr != nil {
		return FileResult{}, splitErr
	}

	fmt.Fprintf(w, "stripped: %s (src %s, doc %s)\n", input, srcPath, docPath)
	return FileResult{Input: input, SrcPath: srcPath, DocPath: docPath, Stats: stats}, nil
}

// InspectFile classifies input and returns its line counts without writing
// any derived files.
func InspectFile(input string) (FileResult, error) {
	in, err := os.Open(input)
	if err != nil {
		return FileResult{}, fmt.Errorf("opening %s: %w", input, err)
	}
	defer in.Close()

	stats, err := Split(in, Discard())
	if err != nil {
		return FileResult{}, err
	}
	return FileResult{Input: input, Stats: stats}, nil
}

// BatchResult summarizes a run over multiple inputs.
type BatchResult struct {
	Stripped int
	Failed   int
	Files    []FileResult
}

// Total returns the number of inputs processed.
func (r BatchResult) Total() int {
	return r.Stripped + r.Failed
}

// HasFailures reports whether any input failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// SplitBatch splits each input independently, printing per-file status to w
// and a summary at the end. A failing file does not stop the batch; each
// file is a complete stateless pass of its own.
func SplitBatch(inputs []string, opts Options, w io.Writer) BatchResult {
	var result BatchResult
	for _, input := range inputs {
		res, err := SplitFile(input, opts, w)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", input, err)
			result.Failed++
			continue
		}
		result.Stripped++
		result.Files = append(result.Files, res)
	}
	fmt.Fprintf(w, "\nBatch summary: %d stripped, %d failed (total: %d)\n",
		result.Stripped, result.Failed, result.Total())
	return result
}

// derivePath swaps the input path's extension for ext.
func derivePath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

func defaultExt(ext, fallback string) string {
	if ext == "" {
		return fallback
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}

// checkPaths rejects output paths that would clobber the input or each
// other. Happens with derived paths when the input already carries the
// output extension (e.g. stripping a .tex file with doc extension .tex).
func checkPaths(input, srcPath, docPath string) error {
	if srcPath != StdoutPath && srcPath == input {
		return fmt.Errorf("stripped-source output %s would overwrite the input", srcPath)
	}
	if docPath != StdoutPath && docPath == input {
		return fmt.Errorf("documentation output %s would overwrite the input", docPath)
	}
	if srcPath == docPath && srcPath != StdoutPath {
		return fmt.Errorf("stripped-source and documentation outputs are both %s", srcPath)
	}
	return nil
}

// openOutput opens path for writing and returns a buffered writer plus a
// close function that flushes it. Without force, an existing file is an
// error rather than silently truncated.
func openOutput(path string, force bool) (io.Writer, func() error, error) {
	if path == StdoutPath {
		w := bufio.NewWriter(os.Stdout)
		return w, w.Flush, nil
	}

	flag := os.O_WRONLY | os.O_CREATE
	if force {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, nil, fmt.Errorf("output %s already exists (use --force to overwrite)", path)
		}
		return nil, nil, fmt.Errorf("creating %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	closer := func() error {
		if err := w.Flush(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return w, closer, nil
}
