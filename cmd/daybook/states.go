package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/daybook/pkg/taxonomy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	statesYAML  bool
	stateTitle  string
	stateDesc   string
	stateColor  string
	stateCode   string
	updateTitle string
	updateDesc  string
	updateColor string
)

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Manage the category taxonomy",
}

var statesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories (defaults first, then customs)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()

		states, err := service.States(context.Background())
		if err != nil {
			fatal("Failed to load states", err)
		}

		if statesYAML {
			out, err := yaml.Marshal(states)
			if err != nil {
				fatal("Failed to serialize states", err)
			}
			fmt.Print(string(out))
			return
		}

		for _, st := range states {
			fmt.Printf("{%s}\t%s\t%s", st.Code, st.Title, st.Color)
			if st.Description != "" {
				fmt.Printf("\t%s", st.Description)
			}
			fmt.Println()
		}
	},
}

var statesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom category",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if stateTitle == "" {
			fmt.Fprintln(os.Stderr, "Error: --title is required")
			cmd.Usage()
			os.Exit(1)
		}

		service := newService()
		st, err := service.AddState(context.Background(), stateTitle, stateDesc, stateColor, stateCode)
		if err != nil {
			fatal("Failed to add state", err)
		}
		fmt.Printf("Added %s {%s}\n", st.Title, st.Code)
	},
}

var statesSetCmd = &cobra.Command{
	Use:   "set <code>",
	Short: "Patch a category (customs in place, defaults via override)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var patch taxonomy.Patch
		if cmd.Flags().Changed("title") {
			patch.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &updateDesc
		}
		if cmd.Flags().Changed("color") {
			patch.Color = &updateColor
		}
		if patch.Empty() {
			fmt.Fprintln(os.Stderr, "Error: nothing to change")
			cmd.Usage()
			os.Exit(1)
		}

		service := newService()
		if err := service.UpdateState(context.Background(), args[0], patch); err != nil {
			fatal("Failed to update state", err)
		}
		fmt.Printf("Updated {%s}\n", args[0])
	},
}

var statesRmCmd = &cobra.Command{
	Use:   "rm <code>",
	Short: "Remove a custom category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()
		if err := service.DeleteState(context.Background(), args[0]); err != nil {
			fatal("Failed to delete state", err)
		}
		fmt.Printf("Removed {%s}\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)
	statesCmd.AddCommand(statesListCmd)
	statesCmd.AddCommand(statesAddCmd)
	statesCmd.AddCommand(statesSetCmd)
	statesCmd.AddCommand(statesRmCmd)

	statesListCmd.Flags().BoolVar(&statesYAML, "yaml", false, "Output as YAML")

	statesAddCmd.Flags().StringVar(&stateTitle, "title", "", "Category title")
	statesAddCmd.Flags().StringVar(&stateDesc, "description", "", "Category description")
	statesAddCmd.Flags().StringVar(&stateColor, "color", "", "Category color")
	statesAddCmd.Flags().StringVar(&stateCode, "code", "", "Explicit short code (derived from title when empty)")

	statesSetCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	statesSetCmd.Flags().StringVar(&updateDesc, "description", "", "New description")
	statesSetCmd.Flags().StringVar(&updateColor, "color", "", "New color")
}
