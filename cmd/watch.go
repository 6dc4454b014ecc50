package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/glinthq/glint/internal/highlight"
	"github.com/glinthq/glint/internal/log"
	"github.com/glinthq/glint/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-render a file whenever it changes",
	Long: `Watch a source file and re-render it to the terminal on every save,
debounced so editor write bursts produce a single render.

Stops on Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&grammarF, "grammar", "g", "",
		"grammar to use (default: auto-detect)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	svc := highlight.NewService(cfg)

	// watch has its own flag instance, so the viper binding on the
	// root command does not apply here.
	grammarID := cfg.Grammar
	if grammarF != "" {
		grammarID = grammarF
	}

	renderOnce := func() {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path is the user's own argument
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
			return
		}
		out := svc.Render(string(data), highlight.Options{
			Grammar: grammarID,
			Path:    path,
			Format:  highlight.FormatANSI,
		})
		// Clear screen and home the cursor before each render.
		fmt.Print("\033[2J\033[H")
		fmt.Println(out)
	}

	w, err := watcher.New(watcher.Config{
		Path:        path,
		DebounceDur: time.Duration(cfg.Watch.DebounceMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}
	log.Info(log.CatWatch, "watching", "path", path)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	renderOnce()
	for {
		select {
		case <-changes:
			log.Debug(log.CatWatch, "change detected", "path", path)
			renderOnce()
		case <-sigs:
			return nil
		}
	}
}
