// Package cmd implements the glint command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glinthq/glint/internal/config"
	"github.com/glinthq/glint/internal/highlight"
	"github.com/glinthq/glint/internal/log"
)

var (
	version  = "dev"
	cfgFile  string
	cfg      config.Config
	debug    bool
	grammarF string
	formatF  string
	outputF  string
)

var rootCmd = &cobra.Command{
	Use:   "glint [file]",
	Short: "A source-code syntax highlighter",
	Long: `Glint tokenizes source text into classified lexical spans and renders
them as ANSI-colored terminal output or HTML markup.

Reads from a file argument or from stdin, detects the grammar from the
filename and content unless one is forced with --grammar.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runHighlight,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/glint/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs to glint.debug.log")
	rootCmd.Flags().StringVarP(&grammarF, "grammar", "g", "",
		"grammar to use (default: auto-detect; see 'glint grammars')")
	rootCmd.Flags().StringVarP(&formatF, "format", "f", "",
		"output format: ansi, html, page, or json")
	rootCmd.Flags().StringVarP(&outputF, "output", "o", "",
		"write output to file instead of stdout")

	// Bind flags to viper
	_ = viper.BindPFlag("grammar", rootCmd.Flags().Lookup("grammar"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("grammar", defaults.Grammar)
	viper.SetDefault("theme.preset", defaults.Theme.Preset)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .glint/config.yaml (current directory)
		// 2. ~/.config/glint/config.yaml (user config)
		if _, err := os.Stat(".glint/config.yaml"); err == nil {
			viper.SetConfigFile(".glint/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "glint"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// Missing config is fine - defaults cover everything.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)

	initLogging()
}

func initLogging() {
	if !debug && os.Getenv("GLINT_DEBUG") == "" {
		return
	}
	if _, err := log.Init("glint.debug.log"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: debug log unavailable: %v\n", err)
		return
	}
	log.SetEnabled(true)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	source, path, err := readSource(args)
	if err != nil {
		return err
	}

	format, err := highlight.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	svc := highlight.NewService(cfg)
	out := svc.Render(source, highlight.Options{
		Grammar: cfg.Grammar,
		Path:    path,
		Format:  format,
	})

	return writeOutput(out)
}

// readSource reads the file argument, or stdin when no argument is
// given.
func readSource(args []string) (source, path string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(args[0]) //nolint:gosec // G304: path is the user's own argument
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

func writeOutput(out string) error {
	if outputF == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(outputF, []byte(out+"\n"), 0o644); err != nil { //nolint:gosec // G306: rendered output is not sensitive
		return fmt.Errorf("writing %s: %w", outputF, err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
