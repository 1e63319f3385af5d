package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareAt(t *testing.T) {
	a1 := SquareAt(0, 0)
	h8 := SquareAt(7, 7)
	assert.Equal(t, 0, FileOf(a1))
	assert.Equal(t, 0, RankOf(a1))
	assert.Equal(t, 7, FileOf(h8))
	assert.Equal(t, 7, RankOf(h8))
	assert.Equal(t, "a1", a1.String())
	assert.Equal(t, "h8", h8.String())
}

func TestMakeSquare(t *testing.T) {
	assert.Equal(t, SquareAt(0, 0), MakeSquare("a1"))
	assert.Equal(t, SquareAt(7, 7), MakeSquare("h8"))
	assert.Equal(t, SqNone, MakeSquare("i1"))
	assert.Equal(t, SqNone, MakeSquare("a9"))
	assert.Equal(t, SqNone, MakeSquare("aa"))
}

func TestIsOnBoard(t *testing.T) {
	assert.True(t, SquareAt(0, 0).IsOnBoard())
	assert.True(t, SquareAt(7, 7).IsOnBoard())
	assert.False(t, Square(0).IsOnBoard())
	assert.False(t, SqNone.IsOnBoard())
}

func TestKnightDeltasLandOnBoardFromCenter(t *testing.T) {
	// every knight delta from a central square must land on-board
	center := SquareAt(4, 4)
	for _, d := range KnightDeltas {
		to := center + Square(d)
		assert.True(t, to.IsOnBoard())
	}
}
