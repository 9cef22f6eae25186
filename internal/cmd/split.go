package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eBay/tsv-utils-sub002/split"
	"github.com/eBay/tsv-utils-sub002/tsv"
)

type splitOptions struct {
	linesPerFile int64
	numFiles     int
	keyFields    string
	header       bool
	headerInOnly bool
	dir          string
	prefix       string
	suffix       string
	suffixSet    bool
	appendMode   bool
	staticSeed   bool
	seedValue    uint32
	seedValueSet bool
	delimiter    string
	maxOpenFiles int
}

// NewSplitCmd creates and returns the split subcommand for the tsv-utils
// CLI. It partitions input lines into multiple output files.
func NewSplitCmd() *cobra.Command {
	opts := &splitOptions{}

	cmd := &cobra.Command{
		Use:   "split [FILE]...",
		Short: "Partition input lines into multiple output files",
		Long: `Split input lines into multiple output files under one of three policies.

With --lines-per-file, sequential output files of the given line count are
written (at most one output file is open at a time). With --num-files, each
line is assigned to one of N shard files, either uniformly at random or, with
--key-fields, by a seeded hash of the key field bytes so that identical keys
always land in the same file. A key field list of "0" hashes the whole line.

With --header the first line of each input is treated as a header: it is
written once at the top of every output file that receives data. With
--header-in-only the header is stripped from the inputs without being
written anywhere.

Without --append, pre-existing output files are an error. With --append
they are extended, and a header already present on disk is not repeated;
re-runs with the same file count, key fields, and seed keep appending each
key's lines to the same shard.

Reads standard input when no FILE (or "-") is given.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.suffixSet = cmd.Flags().Changed("suffix")
			opts.seedValueSet = cmd.Flags().Changed("seed-value")
			cfg, err := buildSplitConfig(opts, args)
			if err != nil {
				return err
			}
			return split.Run(cfg)
		},
	}

	f := cmd.Flags()
	f.Int64VarP(&opts.linesPerFile, "lines-per-file", "l", 0, "Split into files of this many lines each")
	f.IntVarP(&opts.numFiles, "num-files", "n", 0, "Split into this many shard files (at least 2)")
	f.StringVarP(&opts.keyFields, "key-fields", "k", "", "Fields whose values decide the shard; 0 uses the whole line")
	f.BoolVarP(&opts.header, "header", "H", false, "Treat the first line of each input as a header and write it to every output")
	f.BoolVarP(&opts.headerInOnly, "header-in-only", "I", false, "Treat the first line of each input as a header but write it nowhere")
	f.StringVar(&opts.dir, "dir", "", "Directory to write the output files to (default current directory)")
	f.StringVar(&opts.prefix, "prefix", "part_", "Output filename prefix")
	f.StringVar(&opts.suffix, "suffix", "", "Output filename suffix (default: the first input file's extension)")
	f.BoolVarP(&opts.appendMode, "append", "a", false, "Append to pre-existing output files instead of rejecting them")
	f.BoolVarP(&opts.staticSeed, "static-seed", "s", false, "Use a fixed built-in seed for reproducible runs")
	f.Uint32VarP(&opts.seedValue, "seed-value", "v", 0, "Use this seed for reproducible runs")
	f.StringVarP(&opts.delimiter, "delimiter", "d", "\t", "Single-byte field delimiter")
	f.IntVar(&opts.maxOpenFiles, "max-open-files", 0, "Limit on simultaneously open output files")

	return cmd
}

func buildSplitConfig(opts *splitOptions, args []string) (*split.Config, error) {
	headerMode := split.HeaderNone
	switch {
	case opts.header && opts.headerInOnly:
		return nil, split.ErrHeaderConflict
	case opts.header:
		headerMode = split.HeaderWriteAll
	case opts.headerInOnly:
		headerMode = split.HeaderStripOnly
	}

	delim, err := parseDelimiter(opts.delimiter)
	if err != nil {
		return nil, err
	}

	keyFields, wholeLine, err := parseKeyFields(opts.keyFields)
	if err != nil {
		return nil, err
	}

	suffix := opts.suffix
	if !opts.suffixSet {
		suffix = defaultSuffix(args)
	}

	return &split.Config{
		LinesPerFile: opts.linesPerFile,
		NumFiles:     opts.numFiles,
		KeyFields:    keyFields,
		WholeLineKey: wholeLine,
		HeaderMode:   headerMode,
		Dir:          opts.dir,
		Prefix:       opts.prefix,
		Suffix:       suffix,
		Append:       opts.appendMode,
		Delim:        delim,
		Seed:         resolveSeed(opts),
		MaxOpenFiles: opts.maxOpenFiles,
		Inputs:       args,
	}, nil
}

func parseDelimiter(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single byte, got %q", s)
	}
	return s[0], nil
}

// parseKeyFields resolves a --key-fields value. "0" selects the whole line
// and cannot be combined with field numbers.
func parseKeyFields(spec string) (indices []int, wholeLine bool, err error) {
	if spec == "" {
		return nil, false, nil
	}
	for _, entry := range strings.Split(spec, ",") {
		if entry == "0" {
			if strings.ContainsRune(spec, ',') {
				return nil, false, split.ErrWholeLineKeyMix
			}
			return nil, true, nil
		}
	}
	indices, err = tsv.ParseFieldList(spec, nil)
	if err != nil {
		return nil, false, err
	}
	return indices, false, nil
}

// defaultSuffix is the first input file's extension, or empty when reading
// standard input.
func defaultSuffix(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return ""
	}
	return filepath.Ext(args[0])
}

func resolveSeed(opts *splitOptions) uint32 {
	switch {
	case opts.seedValueSet:
		return opts.seedValue
	case opts.staticSeed:
		return split.DefaultStaticSeed
	default:
		return split.UnpredictableSeed()
	}
}
