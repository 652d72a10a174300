package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattmcc/microformats2/mf2"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "mf2parse",
	Short: "A Microformats2 (MF2) parser for HTML documents",
	Long: `mf2parse walks an HTML document, recognizes h-*/p-*/u-*/e-*/dt-*
class tokens, and prints the canonical MF2 JSON representation of the
items it finds.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		handler, err := newLogHandler(os.Stderr, logLevel, logFormat)
		if err != nil {
			return err
		}
		mf2.SetDiagnostics(slog.New(handler))
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: error, warn, info, debug")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "logfmt", "log format: logfmt, json")
}
