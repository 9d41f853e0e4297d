package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var dayStdin bool

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Read or edit a single day",
}

var dayGetCmd = &cobra.Command{
	Use:   "get <day>",
	Short: "Print a day's bullets",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()

		content, ok, err := service.Day(context.Background(), args[0])
		if err != nil {
			fatal("Failed to load day", err)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "No entry for %s\n", args[0])
			os.Exit(1)
		}
		fmt.Println(content)
	},
}

var daySetCmd = &cobra.Command{
	Use:   "set <day> [content]",
	Short: "Replace a day's bullets",
	Long: `Replaces a day's content with the given text (or stdin with --stdin).
Category markers from the previous version are carried over by line
position, so editing bullet text keeps its classification.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var content string
		switch {
		case dayStdin:
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		case len(args) == 2:
			content = args[1]
		default:
			fmt.Fprintln(os.Stderr, "Error: provide content as an argument or via --stdin")
			cmd.Usage()
			os.Exit(1)
		}

		service := newService()
		if err := service.SaveDay(context.Background(), args[0], content); err != nil {
			fatal("Failed to save day", err)
		}
		fmt.Printf("Saved %s\n", args[0])
	},
}

var dayRmCmd = &cobra.Command{
	Use:   "rm <day>",
	Short: "Remove a day",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()
		if err := service.SaveDay(context.Background(), args[0], ""); err != nil {
			fatal("Failed to remove day", err)
		}
		fmt.Printf("Removed %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.AddCommand(dayGetCmd)
	dayCmd.AddCommand(daySetCmd)
	dayCmd.AddCommand(dayRmCmd)
	daySetCmd.Flags().BoolVar(&dayStdin, "stdin", false, "Read content from stdin")
}
