package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/daybook/pkg/core"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the whole journal document",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()

		doc, err := service.Document(context.Background())
		if err != nil {
			if errors.Is(err, core.ErrNoDocument) {
				fmt.Fprintln(os.Stderr, "No notes file configured. Run 'daybook path <file>' first.")
				os.Exit(1)
			}
			fatal("Failed to load document", err)
		}

		fmt.Print(doc.Build())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
