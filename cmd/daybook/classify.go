package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/daybook"
	"github.com/aretw0/daybook/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

var (
	classifyAll   bool
	classifyForce bool
	classifyGlob  string
)

var classifyCmd = &cobra.Command{
	Use:   "classify [day]",
	Short: "Label bullets with category markers",
	Long: `Sends a day's bullets to the configured classifier and writes the
returned {code} markers back. Days whose bullets are already fully marked
are skipped unless --force is given.

Use --all for a full sweep, or --days with a glob over day keys
(e.g. --days '2024-01-*').`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()
		ctx := context.Background()

		switch {
		case classifyAll:
			runSweep(ctx, service)
		case classifyGlob != "":
			runGlob(ctx, service, classifyGlob)
		case len(args) == 1:
			runOne(ctx, service, args[0])
		default:
			fmt.Fprintln(os.Stderr, "Error: provide a day, --all, or --days <glob>")
			cmd.Usage()
			os.Exit(1)
		}
	},
}

func runOne(ctx context.Context, service *daybook.Service, day string) {
	res, err := service.ClassifyDay(ctx, day, classifyForce)
	if err != nil {
		fatal("Classification failed", err)
	}
	printResult(day, res)
	if !res.OK {
		os.Exit(1)
	}
}

func runSweep(ctx context.Context, service *daybook.Service) {
	updated, err := service.ClassifyAll(ctx, classifyForce)
	if err != nil {
		fatal("Sweep failed", err)
	}
	fmt.Printf("Updated %d day(s)\n", updated)
}

func runGlob(ctx context.Context, service *daybook.Service, pattern string) {
	doc, err := service.Document(ctx)
	if err != nil {
		fatal("Failed to load document", err)
	}

	matched := 0
	for _, day := range doc.Keys() {
		ok, err := doublestar.Match(pattern, day)
		if err != nil {
			fatal("Invalid pattern", err)
		}
		if !ok {
			continue
		}
		matched++

		res, err := service.ClassifyDay(ctx, day, classifyForce)
		if err != nil {
			fatal("Classification failed", err)
		}
		printResult(day, res)
	}

	if matched == 0 {
		fmt.Printf("No days match %q\n", pattern)
	}
}

func printResult(day string, res core.ClassifyResult) {
	switch {
	case res.Skipped:
		fmt.Printf("%s: already classified\n", day)
	case res.OK:
		fmt.Printf("%s: classified\n", day)
	default:
		fmt.Printf("%s: not classified (%s)\n", day, res.Reason)
	}
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyAll, "all", false, "Sweep every day in the document")
	classifyCmd.Flags().BoolVarP(&classifyForce, "force", "f", false, "Reclassify even fully marked days")
	classifyCmd.Flags().StringVar(&classifyGlob, "days", "", "Glob over day keys (e.g. '2024-01-*')")
}
