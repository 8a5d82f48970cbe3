package main

import (
	"fmt"
	"os"

	"github.com/dawgo/dawg"
	"github.com/spf13/cobra"
)

var (
	queryPrefix     string
	querySubstring  string
	querySuffix     string
	queryFrom       string
	queryTo         string
	queryDescending bool
	queryLimit      int
)

func init() {
	cmd := newQueryCmd()
	cmd.Flags().StringVar(&queryPrefix, "prefix", "", "only strings starting with this prefix")
	cmd.Flags().StringVar(&querySubstring, "substring", "", "only strings containing this substring")
	cmd.Flags().StringVar(&querySuffix, "suffix", "", "only strings ending with this suffix")
	cmd.Flags().StringVar(&queryFrom, "from", "", "lower range bound (inclusive)")
	cmd.Flags().StringVar(&queryTo, "to", "", "upper range bound (inclusive)")
	cmd.Flags().BoolVar(&queryDescending, "desc", false, "emit results in descending order")
	cmd.Flags().IntVar(&queryLimit, "limit", 0, "stop after this many results (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <automaton.dawg>",
		Short: "Enumerate strings matching a combined prefix/substring/suffix/range filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(args[0])
		},
	}
}

func loadAutomaton(path string) (*dawg.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	a := &dawg.Automaton{}
	if err := a.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return a, nil
}

func runQuery(path string) error {
	a, err := loadAutomaton(path)
	if err != nil {
		return err
	}

	q := dawg.Query{
		Prefix:     queryPrefix,
		Substring:  querySubstring,
		Suffix:     querySuffix,
		Descending: queryDescending,
	}
	if queryFrom != "" {
		q.HasFrom = true
		q.From = queryFrom
	}
	if queryTo != "" {
		q.HasTo = true
		q.To = queryTo
	}

	n := 0
	for s := range dawg.Enumerate(a, q) {
		printInfo("%s\n", s)
		n++
		if queryLimit > 0 && n >= queryLimit {
			break
		}
	}
	return nil
}
