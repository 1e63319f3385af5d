package movegen

import (
	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/moveslice"
)

// Perft counts leaf nodes of the full legal-move tree to depth, the
// standard move-generator correctness benchmark: any deviation from the
// known node counts for a handful of reference positions means some
// pseudo-legal move was wrongly generated, wrongly filtered, or
// mis-applied by Make/Undo.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := moveslice.NewMoveSlice(64)
	GenerateLegal(b, All, moves)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		b.Make(m)
		nodes += Perft(b, depth-1)
		b.Undo()
	}
	return nodes
}
