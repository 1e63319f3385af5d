//
// FrankyGo - UCI chess engine in GO for learning purposes
//

package search

import (
	"sort"

	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/config"
	"github.com/kopparsynth/mailchess/internal/moveslice"
	. "github.com/kopparsynth/mailchess/internal/types"
)

// Sort buckets, highest first. A move's final key is its bucket's base
// plus a small in-bucket tie-breaker, so buckets never overlap.
const (
	bucketPvMove         = 6_000_000
	bucketPromotionQueen = 5_000_000
	bucketGoodCapture    = 4_000_000
	bucketKiller         = 3_000_000
	bucketCounter        = 2_000_000
	bucketHistory        = 1_000_000
	bucketBadCapture     = 0
	// bucketPromotionMinor sits below every capture, killer, counter and
	// history score: underpromotions are almost never the best move and
	// are deprioritised accordingly.
	bucketPromotionMinor = -1_000_000
)

// scoredMove pairs a move with its one-shot ordering key so
// sort.SliceStable never has to recompute it.
type scoredMove struct {
	move Move
	key  int64
}

// orderMoves sorts moves in place by the move orderer's sort key: PV
// move from the TT first, then queen promotions, then captures that SEE
// does not rate as losing, graded by MVV/LVA, then killer moves, the
// recorded counter move, quiet moves by history count, then SEE-losing
// captures, and underpromotions last.
func (s *Search) orderMoves(b *board.Board, moves *moveslice.MoveSlice, ply int, pvMove, parentMove Move) {
	n := moves.Len()
	scored := make([]scoredMove, n)
	for i := 0; i < n; i++ {
		m := moves.At(i)
		scored[i] = scoredMove{move: m, key: s.moveKey(b, m, ply, pvMove, parentMove)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].key > scored[j].key })
	for i, sm := range scored {
		moves.Set(i, sm.move)
	}
}

func (s *Search) moveKey(b *board.Board, m Move, ply int, pvMove, parentMove Move) int64 {
	if m == pvMove && config.Settings.Search.UsePVMoveFromTT {
		return bucketPvMove
	}

	if pt, ok := m.IsPromotion(); ok {
		if pt == Queen {
			return bucketPromotionQueen + int64(PieceValue(pt))
		}
		return bucketPromotionMinor + int64(PieceValue(pt))
	}

	if m.Capture || m.IsEnPassant() {
		victim := PieceValue(Pawn)
		if code := b.At(m.To); code.IsPiece() {
			_, pt := DecodePiece(code)
			victim = PieceValue(pt)
		}
		attacker := PieceValue(m.PieceType)
		mvvLva := int64(victim)*16 - int64(attacker)
		if config.Settings.Search.UseSEE {
			if see(b, m) >= 0 {
				return bucketGoodCapture + mvvLva
			}
			return bucketBadCapture + mvvLva
		}
		return bucketGoodCapture + mvvLva
	}

	if config.Settings.Search.UseKiller && s.history.IsKiller(ply, m) {
		if s.history.KillerAt(ply, 0) == m {
			return bucketKiller + 1
		}
		return bucketKiller
	}

	if config.Settings.Search.UseCounterMove && s.history.IsCounterMove(parentMove, m) {
		return bucketCounter
	}

	if config.Settings.Search.UseHistory {
		return bucketHistory + s.history.HistoryScore(m.Team, m)
	}

	return bucketHistory
}
