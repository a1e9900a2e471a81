// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/bookfinder/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit a book form interactively",
	Long: `Shell opens an interactive book form. Set the author and title fields,
then run find to fill in the form from the catalog. Type help for the
list of commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, _ := cmd.Flags().GetString("history")

		s, err := shell.New(books, cmd.OutOrStdout(), logger)
		if err != nil {
			return err
		}
		return s.Run(history)
	},
}

func init() {
	shellCmd.Flags().String("history", ".bookfinder_history", "history file (empty disables history)")

	rootCmd.AddCommand(shellCmd)
}
