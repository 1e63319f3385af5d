//
// FrankyGo - UCI chess engine in GO for learning purposes
//

// Package evaluator computes a static score for a board.Board from the
// perspective of the side to move. The only mandatory term is material
// difference; the contract leaves room for further terms without
// requiring them, so mobility and center control are implemented here as small,
// independently toggleable add-ons over the material core.
package evaluator

import (
	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/config"
	"github.com/kopparsynth/mailchess/internal/movegen"
	"github.com/kopparsynth/mailchess/internal/moveslice"
	. "github.com/kopparsynth/mailchess/internal/types"
)

// centerSquares gives a small bonus to pieces (other than pawns and the
// king) that stand on the four central squares, a cheap proxy for
// mobility/space that does not require full move generation.
var centerSquares = [4]Square{SquareAt(3, 3), SquareAt(4, 3), SquareAt(3, 4), SquareAt(4, 4)}

// Eval returns the static score of b from the perspective of
// b.MovingTeam(), bounded well inside the mate-score band so that
// search-produced mate scores always remain distinguishable from
// ordinary evaluations.
func Eval(b *board.Board) Value {
	white := materialAndPosition(b, White)
	black := materialAndPosition(b, Black)
	score := white - black

	if config.Settings.Eval.UseMobility {
		score += mobility(b, White) - mobility(b, Black)
	}

	if b.MovingTeam() == Black {
		score = -score
	}
	return clampToEvalBand(score)
}

func materialAndPosition(b *board.Board, team Team) Value {
	var score Value
	for _, p := range b.Pieces(team) {
		_, pt := DecodePiece(b.At(p.Pos))
		score += PieceValue(pt)
		if config.Settings.Eval.UseCenterControl && pt != Pawn && pt != King {
			for _, c := range centerSquares {
				if p.Pos == c {
					score += 150
				}
			}
		}
	}
	return score
}

// mobility counts pseudo-legal destination squares as a cheap stand-in
// for true mobility (no king-safety filtering), scaled down so it never
// dominates material. It is computed identically for both sides
// (GeneratePseudoLegalForTeam does not care whose turn it actually is)
// so that Eval stays symmetric under a side-to-move flip of the same
// piece placement.
func mobility(b *board.Board, team Team) Value {
	moves := moveslice.NewMoveSlice(64)
	movegen.GeneratePseudoLegalForTeam(b, team, movegen.All, moves)
	return Value(moves.Len()) * 2
}

func clampToEvalBand(v Value) Value {
	const band = MaxScore - 1001
	if v > band {
		return band
	}
	if v < -band {
		return -band
	}
	return v
}
