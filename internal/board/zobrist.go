package board

import (
	"math/rand"

	. "github.com/kopparsynth/mailchess/internal/types"
)

// zobristTable[square][code][firstMove] and sideToMoveKey are generated
// once per process from a fixed seed, so keys are stable within a run
// (required for TT lookups and repetition comparisons to agree with
// each other) without needing to be reproducible across runs.
var zobristTable [BoardSize][14][2]Key
var sideToMoveKey [2]Key

func init() {
	r := rand.New(rand.NewSource(0x5A6B7C8D9EA0B1C2))
	for sq := 0; sq < BoardSize; sq++ {
		for code := 0; code < 14; code++ {
			for fm := 0; fm < 2; fm++ {
				zobristTable[sq][code][fm] = Key(r.Uint64())
			}
		}
	}
	sideToMoveKey[White] = Key(r.Uint64())
	sideToMoveKey[Black] = Key(r.Uint64())
}

// ComputeKey recomputes a position's Zobrist key from scratch by folding
// in every occupied square's (square, piece code, first-move flag) word
// plus the side-to-move word. The engine recomputes this once per search
// node rather than maintaining it incrementally through Make/Undo; for
// the node counts this engine searches that cost is negligible next to
// move generation and evaluation.
func ComputeKey(b *Board) Key {
	var key Key
	for _, team := range [2]Team{White, Black} {
		for _, p := range b.pieces[team] {
			code := b.state[p.Pos]
			fm := 0
			if p.FirstMove {
				fm = 1
			}
			key ^= zobristTable[p.Pos][code][fm]
		}
	}
	key ^= sideToMoveKey[b.movingTeam]
	return key
}
