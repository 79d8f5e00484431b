// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

// Command wadutil64 extracts, builds, and pads WAD archives for the
// Nintendo 64 port of the shooter this module's codec targets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wadutil64",
		Short: "Extract, build, and pad N64 WAD archives",
	}
	root.AddCommand(newExtractCmd())
	root.AddCommand(newBuildCmd())
	root.AddCommand(newPadCmd())
	return root
}
