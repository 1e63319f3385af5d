//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package board implements the engine's position representation: a
// 10x12 mailbox array with a sentinel frame (two rows above and below
// the board, one column on each side), a flat
// per-team piece list, and a make/undo history stack built from
// reversible edits rather than full position snapshots (castling is the
// one exception, see make.go).
package board

import (
	"strings"

	"github.com/op/go-logging"

	myLogging "github.com/kopparsynth/mailchess/internal/logging"
	. "github.com/kopparsynth/mailchess/internal/types"
)

var log *logging.Logger = myLogging.GetLog()

// Board is the mutable chess position. Callers drive it exclusively
// through Make/Undo; nothing else mutates state or pieces.
type Board struct {
	state       [BoardSize]SquareCode
	pieces      [2][]PieceRecord
	posToIndex  [BoardSize]int16 // index into pieces[team(state[sq])], -1 if empty/offboard
	movingTeam  Team
	history     []moveRecord
	keyHistory  []Key // zobrist keys of every position reached, for repetition detection
	pendingEP   Square // en-passant target seeded by setup, consulted only while history is empty
}

// New returns an empty board with the sentinel frame initialised and no
// pieces placed. Use Setup (fen package) or SetupStartPosition to fill it.
func New() *Board {
	b := &Board{}
	for i := range b.state {
		b.state[i] = Offboard
	}
	for f := 0; f < 8; f++ {
		for r := 0; r < 8; r++ {
			b.state[SquareAt(f, r)] = Empty
		}
	}
	for i := range b.posToIndex {
		b.posToIndex[i] = -1
	}
	b.pieces[White] = make([]PieceRecord, 0, MaxPieces)
	b.pieces[Black] = make([]PieceRecord, 0, MaxPieces)
	b.history = make([]moveRecord, 0, 128)
	b.keyHistory = make([]Key, 0, 128)
	b.movingTeam = White
	b.pendingEP = SqNone
	return b
}

// Clone returns a deep, independent copy of b.
func (b *Board) Clone() *Board {
	c := &Board{
		state:      b.state,
		posToIndex: b.posToIndex,
		movingTeam: b.movingTeam,
		pendingEP:  b.pendingEP,
	}
	c.pieces[White] = append([]PieceRecord(nil), b.pieces[White]...)
	c.pieces[Black] = append([]PieceRecord(nil), b.pieces[Black]...)
	c.history = append([]moveRecord(nil), b.history...)
	c.keyHistory = append([]Key(nil), b.keyHistory...)
	return c
}

// PlacePiece is only valid during setup, before any move has been made:
// it adds a piece record and writes the square code directly, with no
// history bookkeeping.
func (b *Board) PlacePiece(team Team, pt PieceType, sq Square, firstMove bool) {
	b.state[sq] = EncodePiece(team, pt)
	idx := len(b.pieces[team])
	b.pieces[team] = append(b.pieces[team], PieceRecord{Pos: sq, FirstMove: firstMove})
	b.posToIndex[sq] = int16(idx)
}

// MovingTeam returns the side to move.
func (b *Board) MovingTeam() Team { return b.movingTeam }

// SetMovingTeam is only used by setup code (FEN "side to move" field).
func (b *Board) SetMovingTeam(t Team) { b.movingTeam = t }

// At returns the square code at sq (Offboard, Empty, or an encoded
// piece).
func (b *Board) At(sq Square) SquareCode { return b.state[sq] }

// Pieces returns the piece-record slice for team. Callers must treat it
// as read-only; indices shift across Make/Undo calls.
func (b *Board) Pieces(team Team) []PieceRecord { return b.pieces[team] }

// PieceRecordAt returns the piece record occupying sq, plus a bool
// indicating whether sq is actually occupied.
func (b *Board) PieceRecordAt(sq Square) (PieceRecord, bool) {
	code := b.state[sq]
	if !code.IsPiece() {
		return PieceRecord{}, false
	}
	team, _ := DecodePiece(code)
	idx := b.posToIndex[sq]
	if idx < 0 {
		return PieceRecord{}, false
	}
	return b.pieces[team][idx], true
}

// FirstMoveAt reports the FirstMove flag of the piece at sq. Used by the
// move generator for castling and double-push eligibility.
func (b *Board) FirstMoveAt(sq Square) bool {
	rec, ok := b.PieceRecordAt(sq)
	return ok && rec.FirstMove
}

// KingSquare finds the given team's king by a linear scan of its piece
// list (at most 16 entries, cheap relative to move generation itself).
func (b *Board) KingSquare(team Team) Square {
	for _, p := range b.pieces[team] {
		if _, pt := DecodePiece(b.state[p.Pos]); pt == King {
			return p.Pos
		}
	}
	return SqNone
}

// LastMove returns the most recently made move and true, or
// (MoveNone, false) if the history is empty.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return MoveNone, false
	}
	return b.history[len(b.history)-1].move, true
}

// EnPassantTarget returns the square a pawn could capture en passant
// onto, derived from whether the last move was a double pawn push, and
// SqNone otherwise. The board deliberately does not store this as a
// dedicated field for moves made during play: the history already
// carries the information needed to derive it, and deriving it keeps
// Make/Undo symmetrical. The one exception is pendingEP, set by setup
// code (the fen package) for a position loaded directly from a FEN
// string whose en-passant field names a target the empty history can't
// express; it only applies before the first move is made.
func (b *Board) EnPassantTarget() Square {
	if len(b.history) == 0 {
		return b.pendingEP
	}
	last, ok := b.LastMove()
	if !ok || last.PieceType != Pawn || last.Info != PawnDouble {
		return SqNone
	}
	return Square((int(last.From) + int(last.To)) / 2)
}

// SetPendingEnPassant records the en-passant target square declared by a
// freshly parsed FEN string. Only meaningful before the first move is
// made; Make/MakeNull make it irrelevant once history is non-empty.
func (b *Board) SetPendingEnPassant(sq Square) {
	b.pendingEP = sq
}

// PlyCount returns the number of half-moves made so far.
func (b *Board) PlyCount() int { return len(b.history) }

// Key returns the Zobrist key of the current position.
func (b *Board) Key() Key { return b.keyHistory[len(b.keyHistory)-1] }

// RepetitionCount returns how many times the current position's key has
// occurred previously in keyHistory (not counting the current entry).
func (b *Board) RepetitionCount() int {
	if len(b.keyHistory) == 0 {
		return 0
	}
	current := b.keyHistory[len(b.keyHistory)-1]
	count := 0
	for i := 0; i < len(b.keyHistory)-1; i++ {
		if b.keyHistory[i] == current {
			count++
		}
	}
	return count
}

// String renders an ASCII diagram with rank 8 on top, matching the way
// engines conventionally print a board for log output.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		sb.WriteByte('1' + byte(r))
		sb.WriteString(" |")
		for f := 0; f < 8; f++ {
			sb.WriteString(b.state[SquareAt(f, r)].String())
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString("side to move: " + b.movingTeam.String() + "\n")
	return sb.String()
}
