package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "dawgctl",
	Short: "Build and query minimal acyclic word-list automatons",
	Long: `dawgctl loads newline-delimited word lists into a DAWG,
queries them with prefix/substring/suffix/range filters, and dumps
the result as text, GraphViz DOT, or JSON.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format (stats only)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}

func printVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func checkMinArgs(args []string, min int, usage string) error {
	if len(args) < min {
		return fmt.Errorf("expected at least %d argument(s), got %d\nUsage: %s", min, len(args), usage)
	}
	return nil
}
