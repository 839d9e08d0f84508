package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/elementium"
	"github.com/aretw0/elementium/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check rule content for consistency",
	Long: `Loads every content file into one registry and reports grants or choices
pointing at missing elements, grant cycles and self-dependent variables.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}

		rules, err := elementium.Load(args, elementium.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if err := validator.ValidateRegistry(rules.Registry()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Content is valid! ✅ (%d elements)\n", rules.Registry().Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
