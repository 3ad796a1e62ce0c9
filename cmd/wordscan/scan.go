package main

import (
	"github.com/spf13/cobra"
	"wordscan/internal/pkg/app"
)

var scanOpts app.ScanOptions

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find dictionary words in a text and print a summary",
	Long: `Scan loads the automaton from --dict when given, otherwise from the
--nodes/--lens dumps, and prints the number of characters, hits and elapsed
milliseconds. --csv additionally writes every hit to a CSV file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Scan(cmd.Context(), scanOpts, cmd.OutOrStdout())
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanOpts.Text, "text", "", "Text file to scan (default files.text)")
	scanCmd.Flags().StringVar(&scanOpts.Dictionary, "dict", "", "Compile this dictionary instead of loading dumps")
	scanCmd.Flags().StringVar(&scanOpts.Nodes, "nodes", "", "Node dump path (default files.nodes)")
	scanCmd.Flags().StringVar(&scanOpts.Lengths, "lens", "", "Length dump path (default files.lengths)")
	scanCmd.Flags().BoolVar(&scanOpts.Sort, "sort", false, "Re-sort an unsorted --dict instead of failing")
	scanCmd.Flags().StringVar(&scanOpts.CSV, "csv", "", "Write hits as CSV to this path")

	scanCmd.MarkFlagsMutuallyExclusive("dict", "nodes")
	scanCmd.MarkFlagsMutuallyExclusive("dict", "lens")
}
