package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/daybook/pkg/adapters/fs"
	"github.com/aretw0/daybook/pkg/core"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow external changes to the notes file",
	Long:  `Watches the configured notes file and prints a line whenever it changes on disk. Ctrl-C to stop.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service := newService()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		path, err := service.NotesPath(ctx)
		if err != nil {
			fatal("Failed to read settings", err)
		}
		if path == "" {
			fatal("Cannot watch", core.ErrNoDocument)
		}

		store := fs.NewStore(slog.Default())
		events, err := store.Watch(ctx, path)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		fmt.Printf("Watching %s\n", path)
		for {
			select {
			case <-sig:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				fmt.Printf("%s  %s changed\n", time.Unix(ev.Timestamp, 0).Format(time.TimeOnly), path)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
