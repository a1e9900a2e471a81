// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect, export, and check book catalogs",
	Long: `Catalog works with the catalog bookfinder searches: the built-in one, or
the YAML file named by --catalog. Use subcommands to list it, export it,
or check a catalog file before using it.`,
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog in search order",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatCatalogList(cmd.OutOrStdout(), books, jsonOutput)
	},
}

func formatCatalogList(w io.Writer, c *catalog.Catalog, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c.Books())
	}

	fmt.Fprintf(w, "%-4s  %-20s  %s\n", "#", "Author", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for i, b := range c.All() {
		author := b.Author
		if len(author) > 20 {
			author = author[:17] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-20s  %s\n", i+1, author, b.Title)
	}
	fmt.Fprintf(w, "\n%d books\n", c.Len())
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as YAML or JSON",
	Long: `Export writes the current catalog to --out, or to stdout when --out is
empty. The YAML form can be edited and passed back with --catalog.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "yaml", "":
		if err := books.WriteYAML(w); err != nil {
			return err
		}
	case "json":
		if err := books.WriteJSON(w); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	if outPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d books to %s\n", books.Len(), outPath)
	}
	return nil
}

// --- check subcommand ---

var catalogCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a YAML catalog file",
	Long: `Check parses a catalog file and reports the first problem: unknown keys
(for example a misspelled "description"), records without an author or
title, or an empty book list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d books OK\n", args[0], c.Len())
		return nil
	},
}

func init() {
	catalogListCmd.Flags().Bool("json", false, "output the catalog as JSON")

	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("out", "", "output file (default: stdout)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
	rootCmd.AddCommand(catalogCmd)
}
