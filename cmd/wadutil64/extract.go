// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/thekovic/wadutil64

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/thekovic/wadutil64/internal/archive"
)

func newExtractCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "extract <archive.wad>",
		Short: "Decompress every entry of a WAD into a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args[0], outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "extracted", "output directory")
	return cmd
}

func runExtract(archivePath, outDir string) error {
	raw, err := os.ReadFile(archivePath)
	if err != nil {
		return fmt.Errorf("wadutil64: reading %q: %w", archivePath, err)
	}

	w, err := archive.Open(raw)
	if err != nil {
		return fmt.Errorf("wadutil64: opening %q: %w", archivePath, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("wadutil64: creating %q: %w", outDir, err)
	}

	bar := progressbar.Default(int64(len(w.Dir.Entries)), "extracting")
	payloads, err := w.Extract(func(name string, n, total int) {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}

	for _, e := range w.Dir.Entries {
		path := filepath.Join(outDir, sanitizeEntryName(e.Name))
		if err := os.WriteFile(path, payloads[e.Name], 0o644); err != nil {
			return fmt.Errorf("wadutil64: writing %q: %w", path, err)
		}
	}
	return nil
}

// sanitizeEntryName strips path separators from an archive entry name so it
// cannot escape the destination directory when used as a file name.
func sanitizeEntryName(name string) string {
	return filepath.Base(filepath.Clean(name))
}
