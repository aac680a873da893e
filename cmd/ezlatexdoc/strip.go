// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ezlatexdoc/internal/report"
	"github.com/pdiddy/ezlatexdoc/internal/split"
	"github.com/pdiddy/ezlatexdoc/pkg/types"
)

var stripCmd = &cobra.Command{
	Use:   "strip <input>...",
	Short: "Split annotated sources into stripped source and documentation",
	Long: `Strip reads each annotated input file and writes two derived files:
the stripped source (documentation and directives removed) and the extracted
documentation. Output paths are derived from the input path by swapping its
extension, or given explicitly with --src-output and --doc-output for a
single input. "-" as an output path writes that stream to stdout.

Existing output files are never overwritten unless --force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := stripOptions(cmd, len(args))
		if err != nil {
			return err
		}

		var files []types.FileReport
		var runErr error
		if len(args) == 1 {
			res, err := split.SplitFile(args[0], opts, os.Stderr)
			if err != nil {
				return err
			}
			files = append(files, res.Report())
		} else {
			result := split.SplitBatch(args, opts, os.Stderr)
			for _, f := range result.Files {
				files = append(files, f.Report())
			}
			if result.HasFailures() {
				runErr = fmt.Errorf("%d of %d inputs failed", result.Failed, result.Total())
			}
		}

		if err := writeRunReport(cmd, "strip", files); err != nil {
			return err
		}
		return runErr
	},
}

func init() {
	stripCmd.Flags().String("src-output", "", "stripped-source output path (single input only)")
	stripCmd.Flags().String("doc-output", "", "documentation output path (single input only)")
	stripCmd.Flags().String("src-ext", types.DefaultSplitConfig().SrcExtension, "extension for derived stripped-source paths")
	stripCmd.Flags().String("doc-ext", types.DefaultSplitConfig().DocExtension, "extension for derived documentation paths")
	stripCmd.Flags().Bool("force", false, "overwrite output files that already exist")
	stripCmd.Flags().String("report", "", "write a YAML run report to this path")

	viper.BindPFlag("src_extension", stripCmd.Flags().Lookup("src-ext"))
	viper.BindPFlag("doc_extension", stripCmd.Flags().Lookup("doc-ext"))
	viper.BindPFlag("force", stripCmd.Flags().Lookup("force"))

	rootCmd.AddCommand(stripCmd)
}

// stripOptions assembles split.Options from flags and configuration. Flags
// are viper-bound, so explicit flags win over EZLATEXDOC_* environment
// variables, which win over the config file.
func stripOptions(cmd *cobra.Command, inputs int) (split.Options, error) {
	srcOut, _ := cmd.Flags().GetString("src-output")
	docOut, _ := cmd.Flags().GetString("doc-output")
	if inputs > 1 && (srcOut != "" || docOut != "") {
		return split.Options{}, fmt.Errorf("--src-output and --doc-output require a single input file")
	}

	cfg := splitConfig()
	return split.Options{
		SrcOutput: srcOut,
		DocOutput: docOut,
		SrcExt:    cfg.SrcExtension,
		DocExt:    cfg.DocExtension,
		Force:     cfg.Force,
	}, nil
}

// splitConfig resolves the effective strip settings from viper.
func splitConfig() types.SplitConfig {
	cfg := types.DefaultSplitConfig()
	if v := viper.GetString("src_extension"); v != "" {
		cfg.SrcExtension = v
	}
	if v := viper.GetString("doc_extension"); v != "" {
		cfg.DocExtension = v
	}
	cfg.Force = viper.GetBool("force")
	return cfg
}

// writeRunReport saves a YAML report when --report was given.
func writeRunReport(cmd *cobra.Command, command string, files []types.FileReport) error {
	path, _ := cmd.Flags().GetString("report")
	if path == "" {
		return nil
	}
	return report.Write(path, report.New(command, files))
}
