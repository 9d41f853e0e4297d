package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path [file]",
	Short: "Show or set the notes file path",
	Long:  `Without an argument, prints the configured notes file path. With one, stores it.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()
		ctx := context.Background()

		if len(args) == 0 {
			path, err := service.NotesPath(ctx)
			if err != nil {
				fatal("Failed to read settings", err)
			}
			if path == "" {
				fmt.Println("(no notes file configured)")
				return
			}
			fmt.Println(path)
			return
		}

		if err := service.SetNotesPath(ctx, args[0]); err != nil {
			fatal("Failed to set notes file path", err)
		}
		fmt.Printf("Notes file set to %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}
