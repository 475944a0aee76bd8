package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seminar/internal/deck"
)

func newOutlineCmd() *cobra.Command {
	var withText bool
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the sections in presentation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOutline(cmd.OutOrStdout(), withText)
		},
	}
	cmd.Flags().BoolVar(&withText, "text", false, "include each slide's body as plain text")
	return cmd
}

func writeOutline(w io.Writer, withText bool) error {
	for i, s := range deck.Sections() {
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n", deck.Badge(i), s.ID, s.Label); err != nil {
			return err
		}
		if !withText {
			continue
		}
		for _, line := range deck.Resolve(s.ID).PlainText() {
			if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}
