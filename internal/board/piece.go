package board

import . "github.com/kopparsynth/mailchess/internal/types"

// PieceRecord is the flat per-piece bookkeeping entry the spec calls for:
// just enough to reconstruct identity and castling/double-push
// eligibility from a square lookup. Team and PieceType are not stored
// here on purpose; they are always read back from Board.state[Pos], the
// single source of truth for what occupies a square.
type PieceRecord struct {
	Pos       Square
	FirstMove bool
}
