package main

import (
	"github.com/spf13/cobra"
	"wordscan/internal/pkg/app"
)

var buildOpts app.BuildOptions

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile a sorted dictionary into node and length dumps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return application.Build(buildOpts)
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildOpts.Dictionary, "dict", "", "Dictionary file, one word per line (default files.dictionary)")
	buildCmd.Flags().StringVar(&buildOpts.Nodes, "out-nodes", "", "Node dump path (default files.nodes)")
	buildCmd.Flags().StringVar(&buildOpts.Lengths, "out-lens", "", "Length dump path (default files.lengths)")
	buildCmd.Flags().BoolVar(&buildOpts.Sort, "sort", false, "Re-sort an unsorted dictionary instead of failing")
}
