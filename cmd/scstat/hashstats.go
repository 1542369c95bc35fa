package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sctools/sckit/sc/hashfn"
	"github.com/sctools/sckit/sc/hashtab"
)

var hashstatsSeed uint32

func init() {
	cmd := newHashstatsCmd()
	cmd.Flags().Uint32Var(&hashstatsSeed, "seed", 0, "Hash seed")
	rootCmd.AddCommand(cmd)
}

func newHashstatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hashstats <file>",
		Short: "Report hash table occupancy for the lines of a file",
		Long: `The hashstats command inserts every line of the input into a hash
table keyed by the lookup3 word hash and prints occupancy statistics:
element and slot counts, load factor, longest chain, and the resize
counters. Use it to sanity check hash quality on a real key set.

Example:
  scstat hashstats words.txt
  scstat hashstats words.txt --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHashstats(args[0])
		},
	}
}

func hashLine(s string, userData any) uint32 {
	seed := userData.(uint32)
	words := make([]uint32, 0, (len(s)+3)/4)
	var w uint32
	for i := 0; i < len(s); i++ {
		w = w<<8 | uint32(s[i])
		if i%4 == 3 {
			words = append(words, w)
			w = 0
		}
	}
	if len(s)%4 != 0 {
		words = append(words, w)
	}
	return hashfn.HashWords(words, seed)
}

func equalLine(a, b string, _ any) bool { return a == b }

func runHashstats(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	h := hashtab.New(hashLine, equalLine, hashstatsSeed, nil)
	lines, dupes := 0, 0

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for sc.Scan() {
		lines++
		if _, inserted := h.InsertUnique(sc.Text()); !inserted {
			dupes++
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	s := h.Stats()
	p := message.NewPrinter(language.English)
	p.Printf("lines          %d (%d duplicates)\n", lines, dupes)
	p.Printf("elements       %d\n", s.Elems)
	p.Printf("slots          %d\n", s.Slots)
	p.Printf("load factor    %.3f\n", s.LoadFactor)
	p.Printf("longest chain  %d (dev %.3f)\n", s.ChainMax, s.ChainDev)
	p.Printf("resizes        %d of %d checks\n", s.ResizeActions, s.ResizeChecks)
	return nil
}
