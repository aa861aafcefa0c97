package main

import (
	"testing"

	"github.com/aretw0/plantctl/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWrite(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Write
	}{
		{"25ESV0001:LocalInput=false", domain.Write{Variable: "25ESV0001:LocalInput", Value: false}},
		{"23LIC002:InternalSetpoint=500@mm", domain.Write{Variable: "23LIC002:InternalSetpoint", Value: 500.0, Unit: "mm"}},
		{"23LIC002:Mode=Auto", domain.Write{Variable: "23LIC002:Mode", Value: "Auto"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseWrite(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "novalue", "=1"} {
		_, err := parseWrite(bad)
		assert.Error(t, err, bad)
	}
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"run"}, {"sequences", "list"}, {"sequences", "validate"}, {"sequences", "show"},
		{"topology"}, {"inspect"}, {"tune"}, {"serve"},
		{"runs", "list"}, {"runs", "show"}, {"runs", "export"}, {"runs", "delete"}, {"version"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
