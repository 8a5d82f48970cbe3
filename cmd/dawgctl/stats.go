package main

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <automaton.dawg>",
		Short: "Print size, node count, and max string length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

func runStats(path string) error {
	a, err := loadAutomaton(path)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"size_words":    a.Size(),
			"node_count":    a.NodeCount(),
			"max_length":    a.MaxLength(),
			"with_incoming": a.WithIncomingTransitions(),
		})
	}
	printInfo("size (words):    %d\n", a.Size())
	printInfo("node count:      %d\n", a.NodeCount())
	printInfo("max length:      %d\n", a.MaxLength())
	printInfo("with incoming:   %v\n", a.WithIncomingTransitions())
	return nil
}
