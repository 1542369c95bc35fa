package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sctools/sckit/internal/mmfile"
	"github.com/sctools/sckit/sc/array"
)

var (
	checksumElemSize  int
	checksumFirstElem int
)

func init() {
	cmd := newChecksumCmd()
	cmd.Flags().IntVar(&checksumElemSize, "elem-size", 1, "Element size in bytes")
	cmd.Flags().IntVar(&checksumFirstElem, "first-elem", 0, "Element index to start from")
	rootCmd.AddCommand(cmd)
}

func newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <file>",
		Short: "Compute the Adler-32 content checksum of a file",
		Long: `The checksum command views a file as an array of fixed-size elements
and prints the Adler-32 checksum of its contents. Two processes holding
the same bytes print the same value, which makes the output suitable
for cross-process agreement checks.

Example:
  scstat checksum data.bin
  scstat checksum data.bin --elem-size 8 --first-elem 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecksum(args[0])
		},
	}
}

func runChecksum(path string) error {
	if checksumElemSize <= 0 {
		return fmt.Errorf("element size must be positive, got %d", checksumElemSize)
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	if len(data)%checksumElemSize != 0 {
		return fmt.Errorf(
			"file size %d is not a multiple of element size %d",
			len(data), checksumElemSize,
		)
	}
	printVerbose("Mapped %d bytes (%d elements)\n", len(data), len(data)/checksumElemSize)

	a := array.New(checksumElemSize)
	a.Resize(len(data) / checksumElemSize)
	for i := range a.Len() {
		copy(a.Index(i), data[i*checksumElemSize:])
	}

	if checksumFirstElem < 0 || checksumFirstElem > a.Len() {
		return fmt.Errorf("first element %d out of range [0, %d]", checksumFirstElem, a.Len())
	}
	printInfo("%08x\n", a.Checksum(checksumFirstElem))
	return nil
}
