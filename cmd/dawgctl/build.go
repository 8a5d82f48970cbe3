package main

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dawgo/dawg"
	"github.com/spf13/cobra"
)

var (
	buildOut      string
	buildIncoming bool
	buildSorted   bool
)

func init() {
	cmd := newBuildCmd()
	cmd.Flags().StringVarP(&buildOut, "out", "o", "", "write the compressed automaton to this path (required)")
	cmd.Flags().BoolVar(&buildIncoming, "with-incoming", false, "maintain the reverse-edge index (accelerates suffix queries)")
	cmd.Flags().BoolVar(&buildSorted, "sorted", false, "the input is already sorted; use the delayed-minimization insert path")
	cmd.MarkFlagRequired("out")
	rootCmd.AddCommand(cmd)
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <wordlist>",
		Short: "Build a compact automaton from a newline-delimited word list",
		Long: `The build command reads one word per line (optionally gzip
compressed, by a .gz suffix) and writes a compact, persisted automaton.

Example:
  dawgctl build words.txt -o words.dawg
  dawgctl build words.txt.gz -o words.dawg --with-incoming`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0])
		},
	}
}

func runBuild(path string) error {
	b := dawg.NewBuilder()
	if err := b.SetWithIncomingTransitions(buildIncoming); err != nil {
		return err
	}

	printVerbose("loading %s\n", path)
	var err error
	if buildSorted {
		err = loadSorted(b, path)
	} else {
		_, err = b.AddFromFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	printVerbose("inserted words (size=%d)\n", b.Size())

	a := b.Compress()
	data, err := a.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to serialize automaton: %w", err)
	}
	if err := os.WriteFile(buildOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", buildOut, err)
	}

	printInfo("wrote %s (%d strings, %d words)\n", buildOut, b.Size(), a.Size())
	return nil
}

// loadSorted feeds AddSorted straight from the scanner, taking
// advantage of the delayed-minimization insert path for input already
// known to be in non-decreasing order.
func loadSorted(b *dawg.Builder, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		r = gz
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	b.AddSorted(func(yield func(string) bool) {
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
	})
	return scanner.Err()
}
