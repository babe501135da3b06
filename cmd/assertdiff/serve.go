package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"znkr.io/assertdiff/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [flags] ACTUAL EXPECTED",
	Short: "Serve an HTML report that is updated whenever one of the files changes",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if slices.Contains(args, "-") {
			return errors.New("serve can't read from stdin")
		}

		report, err := buildReport(args[0], args[1], opts)
		if err != nil {
			return err
		}

		// Start serving.
		srv, err := server.Run(serveAddr, report)
		if err != nil {
			return err
		}
		defer srv.Shutdown(context.Background())
		log.Printf("Now serving at http://%s, press Ctrl-C to shut down", srv.Addr())

		// Setup file watcher to trigger reloading of the report should any of the files change.
		// Editors often replace files instead of writing to them, that's why the directories are
		// watched instead of the files.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("starting watcher: %v", err)
		}
		defer watcher.Close()
		targets := make(map[string]bool)
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return fmt.Errorf("resolving %s: %v", arg, err)
			}
			targets[abs] = true
			if dir := filepath.Dir(abs); !slices.Contains(watcher.WatchList(), dir) {
				if err := watcher.Add(dir); err != nil {
					return fmt.Errorf("starting watch: %v", err)
				}
			}
		}
		{
			wl := watcher.WatchList()
			slices.Sort(wl)
			log.Printf("Watching:\n    %v", strings.Join(wl, "\n    "))
		}

		// Setup signals to react to Ctrl-C.
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)

		for {
			select {
			case event := <-watcher.Events:
				// Absolutely no need to react to chmod.
				if event.Has(fsnotify.Chmod) || !targets[filepath.Clean(event.Name)] {
					continue
				}
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					// The file is most likely replaced, the following create event triggers the
					// reload.
					continue
				}

				start := time.Now()
				report, err := buildReport(args[0], args[1], opts)
				if err != nil {
					log.Printf("failed to update report: %v", err)
					continue
				}
				srv.ReplaceReport(report)
				log.Printf("Report reloaded (%v)", time.Since(start))
			case err := <-watcher.Errors:
				return fmt.Errorf("watching: %v", err)
			case err, ok := <-srv.Error():
				if !ok {
					return nil
				}
				return fmt.Errorf("serving: %v", err)
			case <-sigint:
				fmt.Print("\r") // remove Ctrl-C output characters
				log.Printf("Received Ctrl-C, shutting down")
				return nil
			}
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:8080", "address to serve on")
}
