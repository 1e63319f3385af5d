package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodePiece(t *testing.T) {
	for team := White; team <= Black; team++ {
		for pt := Pawn; pt <= King; pt++ {
			code := EncodePiece(team, pt)
			gotTeam, gotPt := DecodePiece(code)
			assert.Equal(t, team, gotTeam)
			assert.Equal(t, pt, gotPt)
		}
	}
}

func TestSquareCodeIsPiece(t *testing.T) {
	assert.False(t, Offboard.IsPiece())
	assert.False(t, Empty.IsPiece())
	assert.True(t, EncodePiece(White, King).IsPiece())
}

func TestPieceTypeFromLetter(t *testing.T) {
	assert.Equal(t, Knight, PieceTypeFromLetter('N'))
	assert.Equal(t, Knight, PieceTypeFromLetter('n'))
	assert.Equal(t, PieceTypeNone, PieceTypeFromLetter('x'))
}
