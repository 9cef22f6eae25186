package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eBay/tsv-utils-sub002/version"
)

// NewRootCmd creates and returns the root cobra command for the tsv-utils
// CLI. It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tsv-utils",
		Short: "tsv-utils - Unix-style line-oriented TSV/CSV processing utilities",
		Long: `tsv-utils is a suite of Unix-style utilities for line-oriented
TSV/CSV data.

One input line is one logical record: fields are separated by a single
delimiter byte (TAB by default) with no quoting or escaping. All tools read
files or standard input and are designed to compose in pipelines.

Use subcommands to perform different operations:
  - split: Partition input lines into multiple output files
  - cut: Select and reorder fields from input lines`,
		Version: version.GetFullVersion(),
	}

	groupTools := "tools"
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupTools,
		Title: "Data Processing Tools",
	})

	splitCmd := NewSplitCmd()
	cutCmd := NewCutCmd()

	splitCmd.GroupID = groupTools
	cutCmd.GroupID = groupTools

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(cutCmd)

	return rootCmd
}
