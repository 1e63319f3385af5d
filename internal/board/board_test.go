package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopparsynth/mailchess/internal/types"
)

func snapshot(b *Board) (state [BoardSize]SquareCode, white, black []PieceRecord, idx [BoardSize]int16) {
	state = b.state
	white = append([]PieceRecord(nil), b.pieces[White]...)
	black = append([]PieceRecord(nil), b.pieces[Black]...)
	idx = b.posToIndex
	return
}

func assertReversible(t *testing.T, b *Board, m Move) {
	t.Helper()
	state0, white0, black0, idx0 := snapshot(b)
	team0 := b.movingTeam

	b.Make(m)
	b.Undo()

	state1, white1, black1, idx1 := snapshot(b)
	assert.Equal(t, state0, state1)
	assert.Equal(t, white0, white1)
	assert.Equal(t, black0, black1)
	assert.Equal(t, idx0, idx1)
	assert.Equal(t, team0, b.movingTeam)
}

func TestMakeUndoQuietMove(t *testing.T) {
	b := New()
	SetupStartPosition(b)
	m := Move{From: MakeSquare("e2"), To: MakeSquare("e4"), Team: White, PieceType: Pawn, Info: PawnDouble}
	assertReversible(t, b, m)
}

func TestMakeUndoCapture(t *testing.T) {
	b := New()
	SetupStartPosition(b)
	b.Make(Move{From: MakeSquare("e2"), To: MakeSquare("e4"), Team: White, PieceType: Pawn, Info: PawnDouble})
	b.Make(Move{From: MakeSquare("d7"), To: MakeSquare("d5"), Team: Black, PieceType: Pawn, Info: PawnDouble})
	m := Move{From: MakeSquare("e4"), To: MakeSquare("d5"), Team: White, PieceType: Pawn, Capture: true, Info: PawnPush}
	assertReversible(t, b, m)
}

func TestMakeUndoEnPassant(t *testing.T) {
	b := New()
	SetupStartPosition(b)
	b.Make(Move{From: MakeSquare("e2"), To: MakeSquare("e4"), Team: White, PieceType: Pawn, Info: PawnDouble})
	b.Make(Move{From: MakeSquare("a7"), To: MakeSquare("a6"), Team: Black, PieceType: Pawn, Info: PawnPush})
	b.Make(Move{From: MakeSquare("e4"), To: MakeSquare("e5"), Team: White, PieceType: Pawn, Info: PawnPush})
	b.Make(Move{From: MakeSquare("d7"), To: MakeSquare("d5"), Team: Black, PieceType: Pawn, Info: PawnDouble})
	assert.Equal(t, MakeSquare("d6"), b.EnPassantTarget())
	m := Move{From: MakeSquare("e5"), To: MakeSquare("d6"), Team: White, PieceType: Pawn, Capture: true, Info: PawnEnPassant}
	assertReversible(t, b, m)
}

func TestMakeUndoPromotion(t *testing.T) {
	b := New()
	b.PlacePiece(White, Pawn, MakeSquare("e7"), false)
	b.PlacePiece(White, King, MakeSquare("e1"), false)
	b.PlacePiece(Black, King, MakeSquare("a8"), false)
	b.movingTeam = White
	m := Move{From: MakeSquare("e7"), To: MakeSquare("e8"), Team: White, PieceType: Pawn, Info: int8(Queen)}
	assertReversible(t, b, m)
}

func TestMakeUndoPromotionWithCapture(t *testing.T) {
	b := New()
	b.PlacePiece(White, Pawn, MakeSquare("e7"), false)
	b.PlacePiece(Black, Rook, MakeSquare("d8"), false)
	b.PlacePiece(White, King, MakeSquare("e1"), false)
	b.PlacePiece(Black, King, MakeSquare("h8"), false)
	b.movingTeam = White
	m := Move{From: MakeSquare("e7"), To: MakeSquare("d8"), Team: White, PieceType: Pawn, Capture: true, Info: int8(Queen)}
	assertReversible(t, b, m)
}

func TestMakeUndoCastle(t *testing.T) {
	b := New()
	SetupStartPosition(b)
	for _, sq := range []Square{MakeSquare("f1"), MakeSquare("g1")} {
		b.state[sq] = Empty
	}
	b.pieces[White] = filterOut(b.pieces[White], MakeSquare("f1"), MakeSquare("g1"))
	rebuildIndexForTest(b)
	m := Move{From: MakeSquare("e1"), To: MakeSquare("h1"), Team: White, PieceType: King, Info: KingCastle}
	assertReversible(t, b, m)
}

func filterOut(list []PieceRecord, squares ...Square) []PieceRecord {
	out := list[:0]
	for _, p := range list {
		skip := false
		for _, sq := range squares {
			if p.Pos == sq {
				skip = true
			}
		}
		if !skip {
			out = append(out, p)
		}
	}
	return out
}

func rebuildIndexForTest(b *Board) {
	for i := range b.posToIndex {
		b.posToIndex[i] = -1
	}
	for _, team := range [2]Team{White, Black} {
		for i, p := range b.pieces[team] {
			b.posToIndex[p.Pos] = int16(i)
		}
	}
}

func TestRepetitionCount(t *testing.T) {
	b := New()
	SetupStartPosition(b)
	assert.Equal(t, 0, b.RepetitionCount())
	b.Make(Move{From: MakeSquare("g1"), To: MakeSquare("f3"), Team: White, PieceType: Knight})
	b.Make(Move{From: MakeSquare("g8"), To: MakeSquare("f6"), Team: Black, PieceType: Knight})
	b.Make(Move{From: MakeSquare("f3"), To: MakeSquare("g1"), Team: White, PieceType: Knight})
	b.Make(Move{From: MakeSquare("f6"), To: MakeSquare("g8"), Team: Black, PieceType: Knight})
	// the first shuffle clears both knights' first-move flags, which are
	// part of the key, so only a second shuffle repeats a position
	b.Make(Move{From: MakeSquare("g1"), To: MakeSquare("f3"), Team: White, PieceType: Knight})
	b.Make(Move{From: MakeSquare("g8"), To: MakeSquare("f6"), Team: Black, PieceType: Knight})
	b.Make(Move{From: MakeSquare("f3"), To: MakeSquare("g1"), Team: White, PieceType: Knight})
	b.Make(Move{From: MakeSquare("f6"), To: MakeSquare("g8"), Team: Black, PieceType: Knight})
	assert.Equal(t, 1, b.RepetitionCount())
}
