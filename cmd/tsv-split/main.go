// tsv-split is the standalone binary for the split tool, for installs that
// want per-tool commands instead of the combined tsv-utils binary.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/eBay/tsv-utils-sub002/internal/cmd"
	"github.com/eBay/tsv-utils-sub002/version"
)

func main() {
	root := cmd.NewSplitCmd()
	root.Use = "tsv-split [FILE]..."
	root.Version = version.GetFullVersion()
	if err := fang.Execute(context.Background(), root); err != nil {
		os.Exit(1)
	}
}
