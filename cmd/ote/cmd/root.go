package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ote",
	Short: "OpenTraceEagle - programmatic Eagle board file generation",
	Long: `OpenTraceEagle (ote) generates Eagle .brd board files and bill-of-materials
reports from board description scripts.

Examples:
  ote brd gen board.ote --fragments ./fragments -o board.brd
  ote brd bom board.ote -o bom.csv --heading "Project 3"`,
	Version: "0.2.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the command logger. Verbose runs get a development
// logger on stdout; otherwise logging is a no-op and commands speak
// through their own output only.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stdout"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
