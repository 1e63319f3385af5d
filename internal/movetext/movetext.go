//
// FrankyGo - UCI chess engine in GO for learning purposes
//

// Package movetext encodes and decodes the long-algebraic move text
// used at the UCI boundary: two concatenated squares, e.g. "e2e4", plus
// an optional trailing promotion letter, e.g. "e7e8q". Castling is
// written as the king's own two-square slide, e.g. "e1g1", which does
// not match this engine's rook-centric internal Move.To field, so
// decoding a castle requires asking the move generator which legal
// move produces that king destination.
package movetext

import (
	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/movegen"
	"github.com/kopparsynth/mailchess/internal/moveslice"
	. "github.com/kopparsynth/mailchess/internal/types"
)

// Encode renders m as UCI long algebraic text. The engine's Move.String
// already produces this form, so Encode is a thin, self-documenting
// wrapper for callers at the protocol boundary.
func Encode(m Move) string {
	return m.StringUci()
}

// Decode parses UCI long-algebraic text against the legal moves
// available in b, returning the matching Move and true, or
// (MoveNone, false) if text names no legal move. Decoding (rather than
// building a Move from the text alone) is what lets a bare "e1g1"
// resolve to this engine's rook-centric castling representation and
// lets a promotion letter pick the right PieceType without duplicating
// move generation's rules here.
func Decode(b *board.Board, text string) (Move, bool) {
	if len(text) < 4 {
		return MoveNone, false
	}
	from := MakeSquare(text[0:2])
	to := MakeSquare(text[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone, false
	}
	var promo PieceType = PieceTypeNone
	if len(text) >= 5 {
		promo = PieceTypeFromLetter(text[4])
	}

	legal := moveslice.NewMoveSlice(64)
	movegen.GenerateLegal(b, movegen.All, legal)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From != from {
			continue
		}
		dest := m.To
		if m.IsCastle() {
			dest, _ = CastleKingDestination(m.Team, m.To)
		}
		if dest != to {
			continue
		}
		if pt, isPromo := m.IsPromotion(); isPromo {
			if pt != promo {
				continue
			}
		} else if promo != PieceTypeNone {
			continue
		}
		return m, true
	}
	return MoveNone, false
}
