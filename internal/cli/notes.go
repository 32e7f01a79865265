package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your notes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.client.Notes(cmd.Context())
			if err != nil {
				return renderError(err)
			}

			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, "No notes yet. Create one with `notes create`.")
				return nil
			}

			for _, n := range notes {
				fmt.Fprintf(out, "%s  %s  %s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Title)
				if n.Description != "" {
					fmt.Fprintf(out, "    %s\n", n.Description)
				}
			}
			fmt.Fprintf(out, "\n%d note(s)\n", len(notes))
			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := a.client.CreateNote(cmd.Context(), args[0], description)
			if err != nil {
				return renderError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created note %s: %s\n", note.ID, note.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "note body")
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "update <id> <title>",
		Short: "Replace a note's title and description",
		Long: `Update replaces the note's content wholesale. The title is required;
an omitted --description clears the existing one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := a.client.UpdateNote(cmd.Context(), args[0], args[1], description)
			if err != nil {
				return renderError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s: %s\n", note.ID, note.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "note body")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := a.client.DeleteNote(cmd.Context(), args[0])
			if err != nil {
				return renderError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s: %s\n", note.ID, note.Title)
			return nil
		},
	}
}
