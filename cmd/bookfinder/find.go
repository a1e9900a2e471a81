// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/finder"
	"github.com/pdiddy/bookfinder/internal/form"
	"github.com/pdiddy/bookfinder/internal/logging"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Fill in the book form from an author or title",
	Long: `Find fills a book form with --author and --title, submits it, and prints
the resulting fields. Matching is exact. The first catalog record whose
author or title matches wins; with no match, author and title are printed
as given and the description reads "Book Not Found".`,
	RunE: runFind,
}

// findOutput is the JSON shape printed by find --json.
type findOutput struct {
	Found       bool   `json:"found"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func runFind(cmd *cobra.Command, args []string) error {
	author, _ := cmd.Flags().GetString("author")
	title, _ := cmd.Flags().GetString("title")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	defer logging.Track(logger, "find")()

	f := form.NewBookForm()
	if err := f.SetValue(form.FieldAuthor, author); err != nil {
		return err
	}
	if err := f.SetValue(form.FieldTitle, title); err != nil {
		return err
	}

	r := finder.New(books, finder.WithLogger(logger)).Find(finder.Query{Author: author, Title: title})
	if err := form.Apply(f, r); err != nil {
		return err
	}
	_, found := r.Found()

	return formatFindOutput(cmd.OutOrStdout(), f, found, jsonOutput)
}

func formatFindOutput(w io.Writer, f *form.Form, found, jsonOutput bool) error {
	if !jsonOutput {
		return form.Print(w, f)
	}

	out := findOutput{Found: found}
	out.Author, _ = f.Value(form.FieldAuthor)
	out.Title, _ = f.Value(form.FieldTitle)
	out.Description, _ = f.Value(form.FieldDescription)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	findCmd.Flags().String("author", "", "author name (exact)")
	findCmd.Flags().String("title", "", "book title (exact)")
	findCmd.Flags().Bool("json", false, "output the form as JSON")

	rootCmd.AddCommand(findCmd)
}
