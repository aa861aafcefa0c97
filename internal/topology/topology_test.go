package topology_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/aretw0/plantctl/internal/topology"
	"github.com/aretw0/plantctl/pkg/adapters/memory"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tutorialGraph(t *testing.T) *topology.Graph {
	t.Helper()
	ctx := context.Background()
	sim := memory.NewSimulator("p")
	tl, err := sim.Timeline(ctx, memory.TutorialTimeline)
	require.NoError(t, err)
	require.NoError(t, tl.Load(ctx, memory.TutorialModel, memory.TutorialModel, memory.TutorialModel))
	require.NoError(t, tl.Initialize(ctx))

	g, err := topology.Extract(ctx, tl, memory.TutorialApplication)
	require.NoError(t, err)
	return g
}

func TestExtract_Tutorial(t *testing.T) {
	g := tutorialGraph(t)

	assert.Len(t, g.Nodes(), 10)
	assert.Len(t, g.Edges(), 10)
	assert.Equal(t, 6, g.Degree("23VA0001"))
	assert.Equal(t, 2, g.Degree("23KA0001_m"))
	assert.Equal(t, 2, g.Degree("23LT0002"))
	assert.Equal(t, 1, g.Degree("23LT0001"))
	assert.Equal(t, -1, g.Degree("missing"))

	n, ok := g.Node("23LIC002")
	require.True(t, ok)
	assert.Equal(t, domain.BlockTypePID, n.Type)
}

func TestBuild_ExternalSourcesAndDuplicates(t *testing.T) {
	g := topology.Build([]domain.Block{
		{Name: "A", Type: "Tank", Inputs: []domain.Connection{
			{SourceBlock: "Feed", DestinationBlock: "A"},
			{SourceBlock: "Feed", DestinationBlock: "A", DestinationPort: "second"},
			{SourceBlock: "A", DestinationBlock: "A"},
			{SourceBlock: ""},
		}},
		{Name: "B", Inputs: []domain.Connection{{SourceBlock: "A"}}},
	})

	assert.Equal(t, []topology.Edge{{Source: "Feed", Target: "A"}, {Source: "A", Target: "B"}}, g.Edges())
	feed, ok := g.Node("Feed")
	require.True(t, ok)
	assert.Empty(t, feed.Type)
	assert.Equal(t, 2, g.Degree("A"))
}

func TestLayout(t *testing.T) {
	g := tutorialGraph(t)
	pos := g.Layout(0)
	require.Len(t, pos, 10)
	for name, p := range pos {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), name)
	}

	single := topology.Build([]domain.Block{{Name: "only"}})
	assert.Equal(t, map[string]topology.Position{"only": {}}, single.Layout(10))
}

func TestDOT(t *testing.T) {
	g := tutorialGraph(t)
	out, err := g.DOT("tutorial")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "graph tutorial {")
	assert.Contains(t, s, "23VA0001")
	assert.Contains(t, s, "--")
	assert.Contains(t, s, "AlarmTransmitter")
}

func TestDocumentJSON(t *testing.T) {
	g := tutorialGraph(t)
	doc := g.Document(memory.TutorialApplication, nil)

	var buf bytes.Buffer
	require.NoError(t, topology.WriteJSON(&buf, doc))

	var back topology.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, memory.TutorialApplication, back.Application)
	require.Len(t, back.Nodes, 10)
	assert.Equal(t, "23ESV0005", back.Nodes[0].Name, "nodes are sorted by name")
	for _, n := range back.Nodes {
		if n.Name == "23VA0001" {
			assert.Equal(t, 6, n.Degree)
		}
	}

	empty := topology.Build(nil).Document("", nil)
	assert.NotNil(t, empty.Edges)
	assert.NotNil(t, empty.Nodes)
}
