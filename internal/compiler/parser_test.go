package compiler_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/plantctl/internal/compiler"
	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readings is a map-backed ValueReader that records every read.
type readings struct {
	values map[string]domain.Value
	reads  []string
}

func (r *readings) Value(ctx context.Context, name, unit string) (domain.Value, error) {
	key := name
	if unit != "" {
		key = name + "{" + unit + "}"
	}
	r.reads = append(r.reads, key)
	v, ok := r.values[key]
	if !ok {
		return nil, &domain.UnknownVariableError{Name: name}
	}
	return v, nil
}

func TestParse_Evaluate(t *testing.T) {
	r := &readings{values: map[string]domain.Value{
		"25ESV0001:IsDefinedClosed":  true,
		"23KA0001_m:Speed[0]":        9.5,
		"23LT0001:MeasuredValue{mm}": 512.0,
		"valve":                      "closed",
	}}

	tests := []struct {
		src  string
		want bool
	}{
		{"25ESV0001:IsDefinedClosed == true", true},
		{"25ESV0001:IsDefinedClosed", true},
		{"!25ESV0001:IsDefinedClosed", false},
		{"23KA0001_m:Speed[0] <= 10.0", true},
		{"23KA0001_m:Speed[0] < 9.5", false},
		{"23KA0001_m:Speed[0] >= -1", true},
		{"23LT0001:MeasuredValue{mm} > 500", true},
		{"valve == closed", true},
		{`valve == "closed"`, true},
		{"valve != 'open'", true},
		{"23KA0001_m:Speed[0] > 100 || valve == closed", true},
		{"23KA0001_m:Speed[0] > 100 && valve == closed", false},
		{"(23KA0001_m:Speed[0] > 100 || valve == closed) && 25ESV0001:IsDefinedClosed", true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			pred, err := compiler.Compile(tt.src)
			require.NoError(t, err)
			got, err := pred.Evaluate(context.Background(), r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.src, pred.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	bad := []string{
		"",
		"a ==",
		"a <= closed",
		"(a == 1",
		"a = 1",
		"a == 1 b",
		"a{mm > 1",
		`a == "open`,
		"&& a",
	}
	for _, src := range bad {
		t.Run(fmt.Sprintf("%q", src), func(t *testing.T) {
			_, err := compiler.Compile(src)
			assert.Error(t, err)
		})
	}
}

func TestShortCircuit(t *testing.T) {
	r := &readings{values: map[string]domain.Value{"a": 1.0}}

	// "b" is unknown; the right side must not be read once the left side decides.
	pred := compiler.MustCompile("a == 1 || b == 1")
	ok, err := pred.Evaluate(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, r.reads)

	pred = compiler.MustCompile("a == 1 && b == 1")
	_, err = pred.Evaluate(context.Background(), r)
	assert.ErrorIs(t, err, domain.ErrUnknownVariable)
}

func TestVariables(t *testing.T) {
	pred := compiler.MustCompile("x{mm} > 1 && (y || z != 2)")
	assert.Equal(t, []domain.Variable{
		{Name: "x", Unit: "mm"},
		{Name: "y"},
		{Name: "z"},
	}, pred.Variables())
}

func TestOrderedComparisonOnString(t *testing.T) {
	r := &readings{values: map[string]domain.Value{"valve": "closed"}}
	pred := compiler.MustCompile("valve > 1")
	_, err := pred.Evaluate(context.Background(), r)
	assert.Error(t, err)
}
