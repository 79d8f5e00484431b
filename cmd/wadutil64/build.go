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

func newBuildCmd() *cobra.Command {
	var (
		template string
		inDir    string
	)

	cmd := &cobra.Command{
		Use:   "build <archive.wad>",
		Short: "Rebuild a WAD from a directory of entry payloads",
		Long: "build reuses the entry order and compression flags of --template " +
			"and replaces each entry's payload with the file of the same name " +
			"found under --in, recompressing as needed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(template, inDir, args[0])
		},
	}
	cmd.Flags().StringVar(&template, "template", "", "existing archive to copy directory layout from (required)")
	cmd.Flags().StringVar(&inDir, "in", "extracted", "directory of entry payloads to pack")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func runBuild(templatePath, inDir, outPath string) error {
	templateRaw, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("wadutil64: reading template %q: %w", templatePath, err)
	}
	w, err := archive.Open(templateRaw)
	if err != nil {
		return fmt.Errorf("wadutil64: opening template %q: %w", templatePath, err)
	}

	payloads := make(map[string][]byte, len(w.Dir.Entries))
	bar := progressbar.Default(int64(len(w.Dir.Entries)), "packing")
	for _, e := range w.Dir.Entries {
		path := filepath.Join(inDir, sanitizeEntryName(e.Name))
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("wadutil64: reading payload %q: %w", path, err)
		}
		payloads[e.Name] = data
		_ = bar.Add(1)
	}

	built, err := archive.Build(w.Dir.Entries, payloads, nil)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, built, 0o644); err != nil {
		return fmt.Errorf("wadutil64: writing %q: %w", outPath, err)
	}
	return nil
}
