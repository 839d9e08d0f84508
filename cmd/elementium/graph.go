package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/elementium"
	"github.com/aretw0/elementium/internal/presentation/graph"
	"github.com/aretw0/elementium/pkg/adapters/content"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph FILE...",
	Short: "Print the grant and option graph as a Mermaid flowchart",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		owned, _ := cmd.Flags().GetStringArray("with")

		rules, err := elementium.Load(args, elementium.WithLogger(logger))
		if err != nil {
			return err
		}

		var overlay *graph.Overlay
		if len(owned) > 0 {
			overlay = &graph.Overlay{}
			for _, raw := range owned {
				ref, err := content.ParseRef(raw)
				if err != nil {
					return fmt.Errorf("--with %s: %w", raw, err)
				}
				if _, err := rules.Registry().Resolve(ref); err != nil {
					return err
				}
				overlay.Owned = append(overlay.Owned, ref.Key())
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(rules.Registry(), overlay))
		return nil
	},
}

func init() {
	graphCmd.Flags().StringArrayP("with", "w", nil, `Highlight an owned element ("type:id"); repeatable`)
	rootCmd.AddCommand(graphCmd)
}
