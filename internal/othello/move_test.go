package othello

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Error-42/othello-arena/internal/apperror"
)

func TestMoveTokenRoundTrip(t *testing.T) {
	// Given: every coordinate of the 8x8 board
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			mv := Move{X: x, Y: y}

			// When: encoding and decoding the token
			parsed, err := ParseMove(mv.String())

			// Then: the move round-trips exactly
			require.NoError(t, err, "token %s", mv)
			assert.Equal(t, mv, parsed)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "too short", token: "d"},
		{name: "too long", token: "d35"},
		{name: "column out of range", token: "i3"},
		{name: "uppercase column", token: "D3"},
		{name: "row zero", token: "d0"},
		{name: "row out of range", token: "d9"},
		{name: "swapped order", token: "3d"},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("rejects %s", tc.name), func(t *testing.T) {
			_, err := ParseMove(tc.token)

			assert.ErrorIs(t, err, apperror.ErrInvalidMove)
		})
	}
}
