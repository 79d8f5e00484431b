// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/thekovic/wadutil64/internal/archive"
)

func newPadCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pad <archive.wad>",
		Short: "Re-layout a WAD's entries on four-byte boundaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPad(args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (defaults to overwriting the input)")
	return cmd
}

func runPad(archivePath, out string) error {
	raw, err := os.ReadFile(archivePath)
	if err != nil {
		return fmt.Errorf("wadutil64: reading %q: %w", archivePath, err)
	}

	w, err := archive.Open(raw)
	if err != nil {
		return fmt.Errorf("wadutil64: opening %q: %w", archivePath, err)
	}

	payloads := make(map[string][]byte, len(w.Dir.Entries))
	bar := progressbar.Default(int64(len(w.Dir.Entries)), "padding")
	for _, e := range w.Dir.Entries {
		raw, err := archive.RawPayload(w.Data, e)
		if err != nil {
			return fmt.Errorf("wadutil64: reading entry %q: %w", e.Name, err)
		}
		payloads[e.Name] = raw
		_ = bar.Add(1)
	}

	rebuilt, err := archive.Realign(w.Dir.Entries, payloads)
	if err != nil {
		return err
	}

	if out == "" {
		out = archivePath
	}
	if err := os.WriteFile(out, rebuilt, 0o644); err != nil {
		return fmt.Errorf("wadutil64: writing %q: %w", out, err)
	}
	return nil
}
