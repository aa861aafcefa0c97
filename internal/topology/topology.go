// Package topology turns the blocks of one engine application into an
// undirected graph, lays it out, and exports it as DOT or JSON.
package topology

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/aretw0/plantctl/pkg/ports"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
)

// Node is one block in the graph.
type Node struct {
	id      int64
	Name    string
	Type    string
	Outputs []string
}

func (n *Node) ID() int64 { return n.id }

// DOTID names the node in DOT output.
func (n *Node) DOTID() string { return n.Name }

// Attributes are rendered as DOT node attributes.
func (n *Node) Attributes() []encoding.Attribute {
	if n.Type == "" {
		return nil
	}
	return []encoding.Attribute{{Key: "type", Value: n.Type}}
}

// Edge is one connection between two blocks, kept in its source direction.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is the plant topology.
type Graph struct {
	g      *simple.UndirectedGraph
	nodes  []*Node
	byName map[string]*Node
	edges  []Edge
}

// Build creates the graph from blocks. Every input connection becomes an
// edge between its source and destination block. Sources that are not in
// blocks still become nodes, with an empty type. Self loops and repeated
// connections collapse into one edge.
func Build(blocks []domain.Block) *Graph {
	t := &Graph{
		g:      simple.NewUndirectedGraph(),
		byName: make(map[string]*Node),
	}
	for _, b := range blocks {
		n := t.node(b.Name)
		n.Type = b.Type
		n.Outputs = append([]string(nil), b.OutputNames...)
	}
	for _, b := range blocks {
		for _, c := range b.Inputs {
			src := c.SourceBlock
			dst := c.DestinationBlock
			if dst == "" {
				dst = b.Name
			}
			if src == "" || src == dst {
				continue
			}
			from, to := t.node(src), t.node(dst)
			if t.g.HasEdgeBetween(from.ID(), to.ID()) {
				continue
			}
			t.g.SetEdge(t.g.NewEdge(from, to))
			t.edges = append(t.edges, Edge{Source: src, Target: dst})
		}
	}
	return t
}

func (t *Graph) node(name string) *Node {
	if n, ok := t.byName[name]; ok {
		return n
	}
	n := &Node{id: int64(len(t.nodes)), Name: name}
	t.nodes = append(t.nodes, n)
	t.byName[name] = n
	t.g.AddNode(n)
	return n
}

// Extract reads every block of app from the timeline and builds its graph.
func Extract(ctx context.Context, tl ports.Timeline, app string) (*Graph, error) {
	names, err := tl.BlockNames(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("list blocks of %q: %w", app, err)
	}
	blocks, err := tl.Blocks(ctx, app, names)
	if err != nil {
		return nil, fmt.Errorf("read blocks of %q: %w", app, err)
	}
	return Build(blocks), nil
}

// Graph exposes the underlying gonum graph.
func (t *Graph) Graph() graph.Undirected { return t.g }

// Nodes returns the nodes in name order.
func (t *Graph) Nodes() []*Node {
	out := append([]*Node(nil), t.nodes...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Edges returns the edges in insertion order.
func (t *Graph) Edges() []Edge {
	return append([]Edge(nil), t.edges...)
}

// Node looks a node up by block name.
func (t *Graph) Node(name string) (*Node, bool) {
	n, ok := t.byName[name]
	return n, ok
}

// Degree returns the number of neighbours of a block, or -1 if it is absent.
func (t *Graph) Degree(name string) int {
	n, ok := t.byName[name]
	if !ok {
		return -1
	}
	return t.g.From(n.ID()).Len()
}

// Position is a laid out node coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DefaultLayoutUpdates is the number of Eades iterations Layout runs.
const DefaultLayoutUpdates = 60

// Layout computes force-directed coordinates with the Eades algorithm.
// Graphs with fewer than two nodes are placed at the origin.
func (t *Graph) Layout(updates int) map[string]Position {
	out := make(map[string]Position, len(t.nodes))
	if len(t.nodes) < 2 {
		for _, n := range t.nodes {
			out[n.Name] = Position{}
		}
		return out
	}
	if updates <= 0 {
		updates = DefaultLayoutUpdates
	}
	eades := layout.EadesR2{Repulsion: 1, Rate: 0.05, Updates: updates, Theta: 0.2}
	o := layout.NewOptimizerR2(t.g, eades.Update)
	for o.Update() {
	}
	for _, n := range t.nodes {
		c := o.Coord2(n.ID())
		out[n.Name] = Position{X: c.X, Y: c.Y}
	}
	return out
}

// DOT renders the graph in Graphviz syntax.
func (t *Graph) DOT(name string) ([]byte, error) {
	return dot.Marshal(t.g, name, "", "  ")
}

// NodeInfo is the JSON form of a node.
type NodeInfo struct {
	Name    string   `json:"name"`
	Type    string   `json:"type,omitempty"`
	Degree  int      `json:"degree"`
	Outputs []string `json:"outputs,omitempty"`
	Position
}

// Document is the JSON export of a graph.
type Document struct {
	Application string     `json:"application,omitempty"`
	Nodes       []NodeInfo `json:"nodes"`
	Edges       []Edge     `json:"edges"`
}

// Document assembles the JSON export using the given layout (may be nil).
func (t *Graph) Document(app string, pos map[string]Position) Document {
	doc := Document{Application: app, Nodes: []NodeInfo{}, Edges: t.Edges()}
	if doc.Edges == nil {
		doc.Edges = []Edge{}
	}
	for _, n := range t.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeInfo{
			Name:     n.Name,
			Type:     n.Type,
			Degree:   t.Degree(n.Name),
			Outputs:  n.Outputs,
			Position: pos[n.Name],
		})
	}
	return doc
}

// WriteJSON writes the document with indentation.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
