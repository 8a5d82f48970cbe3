package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newContainsCmd())
}

func newContainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <automaton.dawg> <word>",
		Short: "Report whether word is stored in the automaton",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContains(args[0], args[1])
		},
	}
}

func runContains(path, word string) error {
	a, err := loadAutomaton(path)
	if err != nil {
		return err
	}
	ok := a.Contains(word)
	if ok {
		printInfo("true\n")
		return nil
	}
	printInfo("false\n")
	os.Exit(1)
	return nil
}
