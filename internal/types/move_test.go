package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveString(t *testing.T) {
	m := Move{From: MakeSquare("e2"), To: MakeSquare("e4"), Team: White, PieceType: Pawn, Info: PawnDouble}
	assert.Equal(t, "e2e4", m.String())
}

func TestMovePromotionString(t *testing.T) {
	m := Move{From: MakeSquare("e7"), To: MakeSquare("e8"), Team: White, PieceType: Pawn, Info: int8(Queen)}
	assert.Equal(t, "e7e8q", m.String())
	pt, ok := m.IsPromotion()
	assert.True(t, ok)
	assert.Equal(t, Queen, pt)
}

func TestMoveNoneIsZeroValueSafe(t *testing.T) {
	assert.Equal(t, "none", MoveNone.String())
	assert.False(t, MoveNone.IsCastle())
	_, ok := MoveNone.IsPromotion()
	assert.False(t, ok)
}

func TestCastleMoveString(t *testing.T) {
	m := Move{From: KingHome(White), To: RookKingsideHome(White), Team: White, PieceType: King, Info: KingCastle}
	assert.True(t, m.IsCastle())
	assert.Equal(t, "e1g1", m.String())
}
