package board

import . "github.com/kopparsynth/mailchess/internal/types"

// SetupStartPosition fills b with the standard chess starting array.
// All pieces are placed with FirstMove true.
func SetupStartPosition(b *Board) {
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		b.PlacePiece(White, backRank[f], SquareAt(f, 0), true)
		b.PlacePiece(White, Pawn, SquareAt(f, 1), true)
		b.PlacePiece(Black, Pawn, SquareAt(f, 6), true)
		b.PlacePiece(Black, backRank[f], SquareAt(f, 7), true)
	}
	b.movingTeam = White
	b.keyHistory = append(b.keyHistory, ComputeKey(b))
}

// CastlingRights bundles the four FEN castling-availability flags. The
// board itself stores no separate rights bitmask: availability is
// represented entirely by the FirstMove flag on the relevant king/rook,
// so this type exists only as the boundary between FEN text and
// ApplyCastlingRights.
type CastlingRights struct {
	WhiteKingside, WhiteQueenside bool
	BlackKingside, BlackQueenside bool
}

// ApplyCastlingRights forces FirstMove to false on any king/rook that
// FEN says has lost castling rights, even though the board has no way
// to tell (from a position alone) whether that loss happened because
// the piece actually moved or because its rook was captured and
// replaced, or because the right was simply never granted. Must be
// called once, immediately after placing pieces during setup.
func ApplyCastlingRights(b *Board, rights CastlingRights) {
	clearIfMissing := func(team Team, sq Square, has bool) {
		if has {
			return
		}
		idx := b.posToIndex[sq]
		if idx < 0 {
			return
		}
		b.pieces[team][idx].FirstMove = false
	}
	clearIfMissing(White, RookKingsideHome(White), rights.WhiteKingside)
	clearIfMissing(White, RookQueensideHome(White), rights.WhiteQueenside)
	clearIfMissing(Black, RookKingsideHome(Black), rights.BlackKingside)
	clearIfMissing(Black, RookQueensideHome(Black), rights.BlackQueenside)
	if !rights.WhiteKingside && !rights.WhiteQueenside {
		clearIfMissing(White, KingHome(White), false)
	}
	if !rights.BlackKingside && !rights.BlackQueenside {
		clearIfMissing(Black, KingHome(Black), false)
	}
	// key history is sensitive to FirstMove bits, so it must be seeded
	// only after rights have been applied
	b.keyHistory = b.keyHistory[:0]
	b.keyHistory = append(b.keyHistory, ComputeKey(b))
}
