package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ByerDev/mazegeneratorsolver/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"10x20"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 1+41)
	assert.Empty(t, lines[0])
	for _, l := range lines[1:] {
		assert.Len(t, []rune(l), 1+21)
	}
	assert.Equal(t, " "+string(render.WallGlyph)+string(render.PathGlyph), string([]rune(lines[1])[:3]))
	assert.Contains(t, stderr.String(), "[MAZE]")
	assert.NotContains(t, stdout.String(), "[MAZE]")
}

func TestRunBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"2x2", "3x3"}},
		{"no separator", []string{"22"}},
		{"negative", []string{"-2x2"}},
		{"zero", []string{"0x5"}},
		{"letters", []string{"axb"}},
		{"flag", []string{"--help"}},
		{"area overflows", []string{"4294967296x4294967296"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 1, run(tt.args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "usage:")
		})
	}
}
