package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dumpFormat string

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", "text", "output format: text, dot, or json")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <automaton.dawg>",
		Short: "Render the automaton as a tree, a GraphViz digraph, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	a, err := loadAutomaton(path)
	if err != nil {
		return err
	}
	b := a.Uncompress()

	switch dumpFormat {
	case "text":
		return b.Fprint(os.Stdout)
	case "dot":
		return b.DOT(os.Stdout)
	case "json":
		data, err := b.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, dot, or json)", dumpFormat)
	}
}
