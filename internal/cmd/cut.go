package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eBay/tsv-utils-sub002/tsv"
)

// NewCutCmd creates and returns the cut subcommand for the tsv-utils CLI.
// It selects and reorders fields from input lines.
func NewCutCmd() *cobra.Command {
	var (
		fields    string
		delimiter string
		header    bool
	)

	cmd := &cobra.Command{
		Use:   "cut [FILE]...",
		Short: "Select and reorder fields from input lines",
		Long: `Select fields from delimited input lines and write them to standard
output in the order given.

Fields are one-based numbers, ranges like 2-5, or, with --header, field
names resolved against the header line. With --header the header of the
first input is written (reordered) once and the headers of later inputs are
dropped.

Reads standard input when no FILE (or "-") is given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCut(os.Stdout, fields, delimiter, header, args)
		},
	}

	cmd.Flags().StringVarP(&fields, "fields", "f", "", "Fields to select, in output order (required)")
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "\t", "Single-byte field delimiter")
	cmd.Flags().BoolVarP(&header, "header", "H", false, "Treat the first line of each input as a header")

	cmd.MarkFlagRequired("fields")

	return cmd
}

func runCut(w io.Writer, fields, delimiter string, header bool, args []string) error {
	delim, err := parseDelimiter(delimiter)
	if err != nil {
		return err
	}

	var indices []int
	if !header {
		if indices, err = tsv.ParseFieldList(fields, nil); err != nil {
			return err
		}
	}

	out := bufio.NewWriter(w)
	inputs := args
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	for fileNum, name := range inputs {
		if err := cutInput(out, name, fields, delim, header, fileNum == 0, &indices); err != nil {
			return err
		}
	}
	return out.Flush()
}

func cutInput(out *bufio.Writer, name, fields string, delim byte, header, first bool, indices *[]int) error {
	var r io.ReadCloser
	display := name
	if name == "-" {
		r = io.NopCloser(os.Stdin)
		display = "standard input"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		r = f
	}
	defer r.Close()

	lr := tsv.NewLineReader(r)
	var lineNum int64
	for {
		line, err := lr.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", display, err)
		}
		lineNum++

		if lineNum == 1 && header {
			if !first {
				continue
			}
			names := strings.Split(string(line), string(delim))
			*indices, err = tsv.ParseFieldList(fields, names)
			if err != nil {
				return err
			}
			// Header passes through, reordered like the data lines.
		}

		spans, err := tsv.ExtractFields(line, *indices, delim)
		if err != nil {
			return fmt.Errorf("%s, line %d: %w", display, lineNum, err)
		}
		for i, span := range spans {
			if i > 0 {
				if err := out.WriteByte(delim); err != nil {
					return err
				}
			}
			if _, err := out.Write(span); err != nil {
				return err
			}
		}
		if err := out.WriteByte('\n'); err != nil {
			return err
		}
	}
}
