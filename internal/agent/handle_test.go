package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Error-42/othello-arena/internal/othello"
)

func TestDecodeResponse(t *testing.T) {
	t.Run("accepts a bare move token", func(t *testing.T) {
		// When: decoding a single-line response
		result := decodeResponse("d3\n")

		// Then: the move is parsed and no note is attached
		require.Equal(t, StateSuccess, result.State)
		assert.Equal(t, othello.Move{X: 3, Y: 2}, result.Move)
		assert.Empty(t, result.Note)
	})

	t.Run("accepts a move token with a note", func(t *testing.T) {
		result := decodeResponse("a1\n  searched 2M nodes  \n")

		require.Equal(t, StateSuccess, result.State)
		assert.Equal(t, othello.Move{X: 0, Y: 0}, result.Move)
		assert.Equal(t, "searched 2M nodes", result.Note)
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		result := decodeResponse("\n\n  h8  \n\n")

		require.Equal(t, StateSuccess, result.State)
		assert.Equal(t, othello.Move{X: 7, Y: 7}, result.Move)
	})

	tests := []struct {
		name   string
		output string
	}{
		{name: "empty output", output: ""},
		{name: "three lines", output: "d3\nnote\nextra\n"},
		{name: "token too long", output: "d33\n"},
		{name: "token too short", output: "d\n"},
		{name: "column out of range", output: "z9\n"},
		{name: "row out of range", output: "d9\n"},
		{name: "row zero", output: "d0\n"},
		{name: "prose instead of a token", output: "I resign\n"},
	}

	for _, tc := range tests {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			// When: decoding malformed output
			result := decodeResponse(tc.output)

			// Then: it is classified as invalid output, never success
			assert.Equal(t, StateInvalidOutput, result.State)
			assert.NotEmpty(t, result.Reason)
		})
	}
}
