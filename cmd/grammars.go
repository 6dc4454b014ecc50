package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glinthq/glint/internal/grammar"
)

var grammarsCmd = &cobra.Command{
	Use:   "grammars",
	Short: "List registered grammars",
	Long: `List all registered grammar IDs.

Any listed ID can be passed to --grammar to force tokenization under
that grammar instead of auto-detection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := grammar.NewRegistry()
		for _, id := range reg.IDs() {
			g, err := reg.Lookup(id)
			if err != nil {
				return err
			}
			embedded := ""
			if len(g.Embeddings) > 0 {
				embedded = " (embeds:"
				for _, emb := range g.Embeddings {
					embedded += " " + string(emb.Inner)
				}
				embedded += ")"
			}
			fmt.Printf("%-12s %s%s\n", id, g.Name, embedded)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grammarsCmd)
}
