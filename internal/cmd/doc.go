// Package cmd provides the command-line interface implementation for tsv-utils.
//
// This package contains all the subcommand implementations for the tsv-utils
// CLI tool. It uses the Cobra library for command structure and Fang for
// styled execution.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - split: Partitioning input lines into multiple output files
//   - cut: Field selection and reordering
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The command layer only parses and
// resolves flags; all split semantics live in the split package, consumed
// through one immutable Config value per run.
package cmd
