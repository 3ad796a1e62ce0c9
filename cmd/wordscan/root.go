package main

import (
	"context"
	"github.com/spf13/cobra"
	"wordscan/internal/pkg/app"
)

var (
	cfgFile  string
	logLevel string

	application *app.App
)

var rootCmd = &cobra.Command{
	Use:           "wordscan",
	Short:         "wordscan - whole-word dictionary matching over large texts",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		application, err = app.New(cfgFile, logLevel)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return application.Close()
	},
}

func execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.json", "Path to the JSON config, created with defaults when missing")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override app.log_level (trace, debug, info, warn, error, fatal)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(serveCmd)
}
