package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopparsynth/mailchess/internal/types"
)

func TestParseStartPosition(t *testing.T) {
	b, err := Parse(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, White, b.MovingTeam())
	assert.Equal(t, SqNone, b.EnPassantTarget())
}

func TestParseAppliesEnPassantTarget(t *testing.T) {
	b, err := Parse("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	assert.NoError(t, err)
	assert.Equal(t, SquareAt(4, 2), b.EnPassantTarget())
}

func TestParseDashEnPassantFieldMeansNone(t *testing.T) {
	b, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, SqNone, b.EnPassantTarget())
}

func TestParseMissingEnPassantFieldMeansNone(t *testing.T) {
	b, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	assert.NoError(t, err)
	assert.Equal(t, SqNone, b.EnPassantTarget())
}

func TestParseInvalidSideToMove(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)
}

func TestStringRoundTripsPlacementAndSideToMove(t *testing.T) {
	b, err := Parse(StartFEN)
	assert.NoError(t, err)
	out := String(b)
	assert.Contains(t, out, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	assert.Contains(t, out, " w ")
}
