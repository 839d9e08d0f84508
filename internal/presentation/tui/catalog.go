package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/registry"
)

// Catalog renders the registered descriptors as markdown, one section per type.
// An empty types list means every registered type.
func Catalog(reg *registry.Registry, types []domain.Type) string {
	if len(types) == 0 {
		types = reg.Types()
	}

	var sb strings.Builder
	sb.WriteString("# Catalog\n")
	for _, t := range types {
		ds := reg.Descriptors(t)
		fmt.Fprintf(&sb, "\n## %s (%d)\n\n", title(t), len(ds))
		if len(ds) == 0 {
			sb.WriteString("_none_\n")
			continue
		}
		for _, d := range ds {
			writeDescriptor(&sb, reg, d)
		}
	}
	return sb.String()
}

func writeDescriptor(sb *strings.Builder, reg *registry.Registry, d *domain.Descriptor) {
	fmt.Fprintf(sb, "- **%s** `%s`: %s\n", d.Name, d.Key(), d.Summary())

	if len(d.Granted) > 0 {
		keys := make([]string, len(d.Granted))
		for i, ref := range d.Granted {
			keys[i] = "`" + ref.Key().String() + "`"
		}
		fmt.Fprintf(sb, "  - grants %s\n", strings.Join(keys, ", "))
	}

	for i, opt := range d.Options {
		choices, err := reg.ResolveChoices(d, i)
		if err != nil {
			fmt.Fprintf(sb, "  - choose %d: _%v_\n", opt.Count, err)
			continue
		}
		names := make([]string, len(choices))
		for j, c := range choices {
			names[j] = c.Name
		}
		fmt.Fprintf(sb, "  - choose %d of %s\n", opt.Count, strings.Join(names, ", "))
	}
}

// Sheet renders evaluated variable values as a markdown table,
// in the registry's variable order.
func Sheet(reg *registry.Registry, values map[string]any) string {
	var sb strings.Builder
	sb.WriteString("# Character\n\n| Variable | Value |\n| --- | --- |\n")
	for _, d := range reg.Descriptors(domain.TypeVariable) {
		v, ok := values[d.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "| %s | %v |\n", d.Name, v)
	}
	return sb.String()
}

func title(t domain.Type) string {
	name := t.String()
	if !t.Builtin() {
		return "Type " + name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
