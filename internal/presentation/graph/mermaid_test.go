package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/plantctl/internal/compiler"
	"github.com/aretw0/plantctl/internal/presentation/graph"
	"github.com/aretw0/plantctl/internal/topology"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateTopology(t *testing.T) {
	g := topology.Build([]domain.Block{
		{Name: "25ESV0001", Type: domain.BlockTypeESV},
		{Name: "23VA0001", Type: domain.BlockTypeSeparator, Inputs: []domain.Connection{{SourceBlock: "25ESV0001"}}},
		{Name: "23LT0001", Type: domain.BlockTypeAlarmTransmitter, Inputs: []domain.Connection{{SourceBlock: "23VA0001"}}},
		{Name: "23KA0001_m", Type: domain.BlockTypeMotor},
		{Name: "23LIC002", Type: domain.BlockTypePID},
		{Name: "aux.block", Type: "Other"},
	})

	tests := []struct {
		name string
		want string
	}{
		{"ESV Shape", `25ESV0001[/"25ESV0001"/]`},
		{"Separator Shape", `23VA0001[("23VA0001")]`},
		{"Transmitter Shape", `23LT0001(("23LT0001"))`},
		{"Motor Shape", `23KA0001_m[["23KA0001_m"]]`},
		{"Controller Shape", `23LIC002{{"23LIC002"}}`},
		{"ID Sanitization", `aux_block["aux.block"]`},
		{"Edge", "25ESV0001 --- 23VA0001"},
	}

	got := graph.GenerateTopology(g, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, got, tt.want)
		})
	}
	assert.True(t, strings.HasPrefix(got, "graph LR\n"))
	assert.NotContains(t, got, "classDef")
}

func shutdown() *domain.Sequence {
	return &domain.Sequence{
		Name: "shutdown",
		Stages: []domain.Stage{
			{Name: "close-inlet", Actions: []domain.Write{{Variable: "25ESV0001:LocalInput", Value: false}}, Exit: compiler.MustCompile(`25ESV0001:IsDefinedClosed == true`)},
			{Name: "stop-pump", Actions: []domain.Write{{Variable: "23KA0001_m:LocalInput", Value: false}}, Exit: compiler.MustCompile(`mode == "off"`)},
		},
	}
}

func TestGenerateSequence(t *testing.T) {
	got := graph.GenerateSequence(shutdown(), nil)

	assert.Contains(t, got, "start --> close_inlet")
	assert.Contains(t, got, `close_inlet["close-inlet <br/> 25ESV0001:LocalInput := false"]`)
	assert.Contains(t, got, `close_inlet -- "25ESV0001:IsDefinedClosed == true" --> stop_pump`)
	assert.Contains(t, got, `stop_pump -- "mode == 'off'" --> done`)
}

func TestOverlayFromRun(t *testing.T) {
	seq := shutdown()

	running := &domain.Run{StageIndex: 1, Status: domain.StatusFailed}
	o := graph.OverlayFromRun(seq, running)
	assert.Equal(t, []string{"close-inlet"}, o.VisitedNodes)
	assert.Equal(t, "stop-pump", o.CurrentNode)

	got := graph.GenerateSequence(seq, o)
	assert.Contains(t, got, "class close_inlet visited;")
	assert.Contains(t, got, "class stop_pump current;")

	done := graph.OverlayFromRun(seq, &domain.Run{StageIndex: 1, Status: domain.StatusCompleted})
	assert.Equal(t, []string{"close-inlet", "stop-pump"}, done.VisitedNodes)
	assert.Empty(t, done.CurrentNode)

	assert.Nil(t, graph.OverlayFromRun(seq, nil))
}
