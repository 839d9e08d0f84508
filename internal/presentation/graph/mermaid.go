package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/elementium/pkg/domain"
	"github.com/aretw0/elementium/pkg/registry"
)

// Overlay contains character data to highlight on the graph.
type Overlay struct {
	Owned []domain.Key
}

// GenerateMermaid produces a Mermaid flowchart of the registered content.
// Variables are left out since formulas are opaque. It applies semantic styling:
// - Class, Race: ((Circle))
// - Feature, Trait: [[Subroutine]]
// - Default: [Rectangle]
// Grants are solid arrows and options dotted ones, one per legal choice.
// Owned elements from the overlay are highlighted if provided.
func GenerateMermaid(reg *registry.Registry, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, t := range reg.Types() {
		if t == domain.TypeVariable {
			continue
		}
		for _, d := range reg.Descriptors(t) {
			safeID := sanitizeMermaidID(d.Key())

			opener, closer := "[", "]"
			switch d.Type {
			case domain.TypeClass, domain.TypeRace:
				opener, closer = "((", "))"
			case domain.TypeFeature, domain.TypeTrait:
				opener, closer = "[[", "]]"
			}
			name := strings.ReplaceAll(d.Name, "\"", "'")
			fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, name, closer)

			for _, ref := range d.Granted {
				fmt.Fprintf(&sb, "    %s --> %s\n", safeID, sanitizeMermaidID(ref.Key()))
			}

			for i, opt := range d.Options {
				choices, err := reg.ResolveChoices(d, i)
				if err != nil {
					continue
				}
				for _, c := range choices {
					fmt.Fprintf(&sb, "    %s -. \"choose %d\" .-> %s\n", safeID, opt.Count, sanitizeMermaidID(c.Key()))
				}
			}
		}
	}

	if overlay != nil && len(overlay.Owned) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef owned fill:#d1fae5,stroke:#047857,stroke-width:2px,color:#000;\n")

		seen := make(map[string]bool)
		for _, key := range overlay.Owned {
			safeID := sanitizeMermaidID(key)
			if !seen[safeID] {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s owned;\n", safeID)
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(key domain.Key) string {
	return strings.NewReplacer(
		":", "_",
		".", "_",
		"-", "_",
		"/", "_",
		" ", "_",
		"\\", "_",
	).Replace(key.String())
}
