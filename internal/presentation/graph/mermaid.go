// Package graph renders plant topologies and stage tables as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/plantctl/internal/topology"
	"github.com/aretw0/plantctl/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// OverlayFromRun marks the stages a run has entered and the one it stopped at.
func OverlayFromRun(seq *domain.Sequence, run *domain.Run) *GraphOverlay {
	if run == nil {
		return nil
	}
	o := &GraphOverlay{}
	for i, st := range seq.Stages {
		if i < run.StageIndex {
			o.VisitedNodes = append(o.VisitedNodes, st.Name)
		}
	}
	if run.StageIndex < len(seq.Stages) {
		name := seq.Stages[run.StageIndex].Name
		if run.Status == domain.StatusCompleted {
			o.VisitedNodes = append(o.VisitedNodes, name)
		} else {
			o.CurrentNode = name
		}
	}
	return o
}

// GenerateTopology produces a Mermaid flowchart of a plant graph.
// Node shapes follow the block type:
//   - Emergency shutdown valve: [/Parallelogram/]
//   - Motor: [[Subroutine]]
//   - Controller: {{Hexagon}}
//   - Separator: [(Cylinder)]
//   - Transmitter: ((Circle))
//   - Default: [Rectangle]
func GenerateTopology(g *topology.Graph, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, n := range g.Nodes() {
		opener, closer := shape(n.Type)
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(n.Name), opener, n.Name, closer))
	}
	for _, e := range g.Edges() {
		sb.WriteString(fmt.Sprintf("    %s --- %s\n", sanitizeMermaidID(e.Source), sanitizeMermaidID(e.Target)))
	}
	writeOverlay(&sb, overlay)
	return sb.String()
}

func shape(blockType string) (string, string) {
	switch blockType {
	case domain.BlockTypeESV:
		return "[/", "/]"
	case domain.BlockTypeMotor:
		return "[[", "]]"
	case domain.BlockTypePID:
		return "{{", "}}"
	case domain.BlockTypeSeparator:
		return "[(", ")]"
	case domain.BlockTypeAlarmTransmitter:
		return "((", "))"
	default:
		return "[", "]"
	}
}

// GenerateSequence produces a Mermaid flowchart of a stage table. Each stage
// lists its writes and the edge to the next stage carries the exit predicate.
func GenerateSequence(seq *domain.Sequence, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    start((\"start\"))\n")

	for _, st := range seq.Stages {
		label := st.Name
		for _, w := range st.Actions {
			label += " <br/> " + escape(w.String())
		}
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", sanitizeMermaidID(st.Name), label))
	}
	sb.WriteString("    done((\"done\"))\n")

	if len(seq.Stages) > 0 {
		sb.WriteString(fmt.Sprintf("    start --> %s\n", sanitizeMermaidID(seq.Stages[0].Name)))
	}
	for i, st := range seq.Stages {
		next := "done"
		if i+1 < len(seq.Stages) {
			next = sanitizeMermaidID(seq.Stages[i+1].Name)
		}
		arrow := "-->"
		if st.Exit != nil {
			arrow = fmt.Sprintf("-- \"%s\" -->", escape(st.Exit.String()))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", sanitizeMermaidID(st.Name), arrow, next))
	}
	writeOverlay(&sb, overlay)
	return sb.String()
}

func writeOverlay(sb *strings.Builder, overlay *GraphOverlay) {
	if overlay == nil {
		return
	}
	sb.WriteString("\n    %% Overlay Styles\n")
	// Black text keeps the fills readable on both light and dark themes.
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	seen := make(map[string]bool)
	for _, id := range overlay.VisitedNodes {
		safeID := sanitizeMermaidID(id)
		if !seen[safeID] && safeID != "" {
			seen[safeID] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
		}
	}
	if overlay.CurrentNode != "" {
		sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode)))
	}
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", ":", "_", " ", "_", "[", "_", "]", "_")
	return r.Replace(id)
}
