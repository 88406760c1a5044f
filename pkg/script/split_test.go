package script

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: []string{}},
		{name: "blank", input: "   \t", expected: []string{}},
		{name: "comment line", input: "# orbit tweaks", expected: []string{}},
		{name: "words", input: "set orbit parent Earth", expected: []string{"set", "orbit", "parent", "Earth"}},
		{name: "extra spaces", input: "  set   orbit\tparent  Earth ", expected: []string{"set", "orbit", "parent", "Earth"}},
		{name: "double quotes", input: `set landmarks landmarks.0.name "Sea of Rains"`, expected: []string{"set", "landmarks", "landmarks.0.name", "Sea of Rains"}},
		{name: "single quotes", input: `set base radiusDifficultyScale '{"Hard": 2}'`, expected: []string{"set", "base", "radiusDifficultyScale", `{"Hard": 2}`}},
		{name: "newline escape", input: `set terrain textureFormula "A = 1\nB = 2"`, expected: []string{"set", "terrain", "textureFormula", "A = 1\nB = 2"}},
		{name: "escaped space", input: `load my\ planet.txt`, expected: []string{"load", "my planet.txt"}},
		{name: "empty quoted", input: `set orbit parent ""`, expected: []string{"set", "orbit", "parent", ""}},
		{name: "trailing comment", input: "reset # start over", expected: []string{"reset"}},
		{name: "hash inside word", input: "set base radius 1#2", expected: []string{"set", "base", "radius", "1#2"}},
		{name: "quoted hash", input: `set orbit parent "#1"`, expected: []string{"set", "orbit", "parent", "#1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSplit_Errors(t *testing.T) {
	_, err := Split(`set orbit parent "Earth`)
	assert.True(t, errors.Is(err, ErrUnclosedQuote))
	assert.Contains(t, err.Error(), "double")

	_, err = Split(`set orbit parent 'Earth`)
	assert.True(t, errors.Is(err, ErrUnclosedQuote))

	_, err = Split(`set orbit parent Earth\`)
	assert.True(t, errors.Is(err, ErrTrailingEscape))
}

func TestJoin_RoundTrip(t *testing.T) {
	inputs := [][]string{
		{"set", "orbit", "parent", "Earth"},
		{"set", "x", "y", ""},
		{"set", "landmarks", "landmarks.0.name", `Bob's "Peak"`},
		{"set", "terrain", "textureFormula", "A = 1\n\tB = C\\2"},
		{"set", "orbit", "parent", "#hash"},
	}
	for _, words := range inputs {
		got, err := Split(Join(words))
		require.NoError(t, err)
		assert.Equal(t, words, got)
	}
}
