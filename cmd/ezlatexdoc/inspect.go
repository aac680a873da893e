// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ezlatexdoc/internal/split"
	"github.com/pdiddy/ezlatexdoc/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>...",
	Short: "Classify lines without writing derived files",
	Long: `Inspect runs the line classifier over each input and prints how many
lines fall into each category, without creating the stripped-source or
documentation files. Useful as a dry run before strip.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []types.FileReport
		failed := 0
		for _, input := range args {
			res, err := split.InspectFile(input)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed:  %s (%v)\n", input, err)
				failed++
				continue
			}
			s := res.Stats
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d lines (%d source, %d doc, %d comment, %d directive)\n",
				input, s.Total(), s.SourceLines, s.DocLines, s.Comments, s.Directives)
			files = append(files, res.Report())
		}

		if err := writeRunReport(cmd, "inspect", files); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d inputs failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(inspectCmd)
}
