package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lifeos/pkg/domain"
)

// Overlay contains execution state to visualize on the graph.
type Overlay struct {
	Completed []string
	Active    string
}

// GenerateMermaid produces a Mermaid flowchart from the protocol
// dependency graph. Edge styles encode the dependency kind:
// path dependencies are solid arrows, circular dependencies dotted,
// scale dependencies thick.
func GenerateMermaid(protocols []*domain.Protocol, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, p := range protocols {
		safeID := sanitizeMermaidID(p.Name)
		sb.WriteString(fmt.Sprintf("    %s[\"%s (%d steps)\"]\n", safeID, p.Name, len(p.Steps)))

		for _, dep := range p.Dependencies {
			safeDep := sanitizeMermaidID(dep.Protocol)

			arrow := "-->"
			switch dep.Type {
			case domain.DepCircular:
				arrow = fmt.Sprintf("-. \"%s\" .->", dep.Type)
			case domain.DepScale:
				arrow = fmt.Sprintf("== \"%s\" ==>", dep.Type)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeDep, arrow, safeID))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef completed fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef active fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, name := range overlay.Completed {
			safeID := sanitizeMermaidID(name)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s completed;\n", safeID))
			}
		}

		if overlay.Active != "" {
			sb.WriteString(fmt.Sprintf("    class %s active;\n", sanitizeMermaidID(overlay.Active)))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
