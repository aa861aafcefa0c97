package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"Floats", 10.0, 10.0, true},
		{"Float vs Int", 10.0, 10, true},
		{"Bool vs Bool", true, true, true},
		{"Bool vs Number", true, 1.0, true},
		{"False vs Zero", false, 0.0, true},
		{"Strings", "closed", "closed", true},
		{"Strings Differ", "closed", "open", false},
		{"String Bool", "true", true, true},
		{"String Number", "5", 5.0, true},
		{"String vs Number Mismatch", "closed", 1.0, false},
		{"Nil", nil, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestAsBool(t *testing.T) {
	b, ok := AsBool(0.0)
	assert.True(t, ok)
	assert.False(t, b)

	b, ok = AsBool(2.5)
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = AsBool("maybe")
	assert.False(t, ok)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.5", FormatValue(1.5))
	assert.Equal(t, "false", FormatValue(false))
	assert.Equal(t, "closed", FormatValue("closed"))
	assert.Equal(t, "42", FormatValue(42))
	assert.Equal(t, "", FormatValue(nil))
}

func TestVariableString(t *testing.T) {
	assert.Equal(t, "23LT0001:MeasuredValue [mm]", Variable{Name: "23LT0001:MeasuredValue", Unit: "mm"}.String())
	assert.Equal(t, "25ESV0001:LocalInput", Variable{Name: "25ESV0001:LocalInput"}.String())
}

func TestSequenceVariables_DistinctUnits(t *testing.T) {
	seq := &Sequence{
		Stages: []Stage{{
			Actions: []Write{{Variable: "valve", Value: false}},
		}},
		Record: []Variable{
			{Name: "level", Unit: "mm"},
			{Name: "level", Unit: "m"},
			{Name: "level", Unit: "mm"},
			{Name: "valve"},
		},
	}
	assert.Equal(t, []Variable{
		{Name: "valve"},
		{Name: "level", Unit: "mm"},
		{Name: "level", Unit: "m"},
	}, seq.Variables())
}
