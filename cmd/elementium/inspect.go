package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/elementium"
	"github.com/aretw0/elementium/internal/presentation/tui"
	"github.com/aretw0/elementium/pkg/adapters/content"
	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/observability"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Render the content catalog and, optionally, a character sheet",
	Long: `Lists the loaded descriptors grouped by type. With --with, a character is
built from the given "type:id" references and its variables are evaluated.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}
		typeNames, _ := cmd.Flags().GetStringSlice("type")
		with, _ := cmd.Flags().GetStringArray("with")
		plain, _ := cmd.Flags().GetBool("plain")
		showMetrics, _ := cmd.Flags().GetBool("metrics")

		types := make([]domain.Type, 0, len(typeNames))
		for _, name := range typeNames {
			t, err := domain.ParseType(name)
			if err != nil {
				return err
			}
			types = append(types, t)
		}
		refs := make([]domain.Ref, 0, len(with))
		for _, raw := range with {
			ref, err := content.ParseRef(raw)
			if err != nil {
				return fmt.Errorf("--with %s: %w", raw, err)
			}
			refs = append(refs, ref)
		}

		promReg := prometheus.NewRegistry()
		metrics, err := observability.NewMetrics(promReg)
		if err != nil {
			return err
		}

		rules, err := elementium.Load(args,
			elementium.WithLogger(logger),
			elementium.WithLifecycleHooks(metrics.Hooks()),
		)
		if err != nil {
			return err
		}

		markdown := tui.Catalog(rules.Registry(), types)
		if len(refs) > 0 {
			c, err := rules.NewCharacter(refs...)
			if err != nil {
				return err
			}
			values, err := c.AllVariableValues()
			if err != nil {
				return err
			}
			markdown += "\n" + tui.Sheet(rules.Registry(), values)
		}

		plain = plain || !tui.IsTerminal(cmd.OutOrStdout())
		out, err := tui.NewRenderer(plain)(markdown)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		if showMetrics {
			return printMetrics(cmd.OutOrStdout(), promReg)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringSliceP("type", "t", nil, "Only list these element types")
	inspectCmd.Flags().StringArrayP("with", "w", nil, `Element reference ("type:id") to add to the character; repeatable`)
	inspectCmd.Flags().Bool("plain", false, "Print raw markdown instead of styled output (implied when stdout is not a terminal)")
	inspectCmd.Flags().Bool("metrics", false, "Print evaluation counters after the sheet")
	rootCmd.AddCommand(inspectCmd)
}

// printMetrics writes one line per counter sample, sorted by metric name.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	slices.Sort(lines)

	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
