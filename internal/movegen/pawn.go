package movegen

import (
	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/moveslice"
	. "github.com/kopparsynth/mailchess/internal/types"
)

func genPawnMoves(b *board.Board, team Team, p board.PieceRecord, mode Mode, out *moveslice.MoveSlice) {
	forward := Square(PawnForward(team))
	from := p.Pos
	promoRank := PawnPromotionRank(team)

	pushTo := from + forward
	if b.At(pushTo) == Empty {
		willPromote := RankOf(pushTo) == promoRank
		if mode == All {
			addPawnMove(from, pushTo, team, PawnPush, false, promoRank, out)
			if p.FirstMove {
				doubleTo := pushTo + forward
				if RankOf(from) == PawnHomeRank(team) && b.At(doubleTo) == Empty {
					out.PushBack(Move{From: from, To: doubleTo, Team: team, PieceType: Pawn, Info: PawnDouble})
				}
			}
		} else if willPromote {
			// quiescence search still needs to see forcing quiet
			// promotions, not only captures
			addPawnMove(from, pushTo, team, PawnPush, false, promoRank, out)
		}
	}

	for _, side := range [2]int{DirE, DirW} {
		to := from + forward + Square(side)
		code := b.At(to)
		if code == Offboard {
			continue
		}
		if code.IsPiece() {
			otherTeam, _ := DecodePiece(code)
			if otherTeam != team {
				addPawnMove(from, to, team, PawnPush, true, promoRank, out)
			}
			continue
		}
		// empty target: only legal via en passant
		if to == b.EnPassantTarget() {
			out.PushBack(Move{From: from, To: to, Team: team, PieceType: Pawn, Capture: true, Info: PawnEnPassant})
		}
	}
}

// addPawnMove appends a normal pawn move, expanding it into four
// promotion moves (one per promotable piece type) when to lands on the
// far rank.
func addPawnMove(from, to Square, team Team, normalInfo int8, capture bool, promoRank int, out *moveslice.MoveSlice) {
	if RankOf(to) == promoRank {
		for _, pt := range [4]PieceType{Queen, Rook, Bishop, Knight} {
			out.PushBack(Move{From: from, To: to, Team: team, PieceType: Pawn, Capture: capture, Info: int8(pt)})
		}
		return
	}
	out.PushBack(Move{From: from, To: to, Team: team, PieceType: Pawn, Capture: capture, Info: normalInfo})
}
