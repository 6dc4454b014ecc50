package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glinthq/glint/internal/config"
	"github.com/glinthq/glint/internal/render"
)

var setTheme string

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List built-in theme presets",
	Long: `List the built-in theme presets.

Use --set to persist a preset as the default in the config file:

  glint themes --set nord`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if setTheme != "" {
			return persistTheme(setTheme)
		}
		for _, name := range render.Presets() {
			marker := " "
			if name == cfg.Theme.Preset {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	themesCmd.Flags().StringVar(&setTheme, "set", "", "persist a preset as the default theme")
	rootCmd.AddCommand(themesCmd)
}

func persistTheme(name string) error {
	found := false
	for _, preset := range render.Presets() {
		if preset == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown theme preset %q (run 'glint themes' to list)", name)
	}

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = ".glint/config.yaml"
		if err := config.WriteDefaultConfig(configPath); err != nil {
			return err
		}
	}
	if err := config.SaveThemePreset(configPath, name); err != nil {
		return err
	}
	fmt.Printf("theme set to %s in %s\n", name, configPath)
	return nil
}
