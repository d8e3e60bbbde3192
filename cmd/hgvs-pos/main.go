// Package main provides the hgvs-pos command-line tool.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "hgvs-pos",
		Short:         "Parse, validate, and order HGVS transcript positions",
		Long:          "hgvs-pos parses transcript position notation (exonic, intronic, and UTR positions such as 76, 88+1, -14, *6-22), validates it against the grammar, and orders positions in transcript order.",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newParseCmd(&verbose))
	cmd.AddCommand(newSortCmd())
	cmd.AddCommand(newCompareCmd())
	cmd.AddCommand(newCheckCmd(&verbose))
	cmd.AddCommand(newStoreCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig loads ~/.hgvs-pos.yaml if present and sets defaults.
func initConfig() {
	viper.SetDefault("check.workers", 0)
	viper.SetDefault("store.path", defaultStorePath())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".hgvs-pos")
	viper.SetConfigType("yaml")
	_ = viper.ReadInConfig() // missing config file is fine
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "positions.duckdb"
	}
	return filepath.Join(home, ".hgvs-pos", "positions.duckdb")
}

// newLogger returns a development logger when verbose is set, otherwise
// a no-op logger.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
