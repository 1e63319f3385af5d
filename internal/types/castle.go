package types

// Castling home squares, fixed by the rules regardless of what is
// currently on the board (they are only consulted once a castle move
// has already been validated).
var (
	whiteKingHome          = SquareAt(4, 0)
	blackKingHome          = SquareAt(4, 7)
	whiteRookKingsideHome  = SquareAt(7, 0)
	whiteRookQueensideHome = SquareAt(0, 0)
	blackRookKingsideHome  = SquareAt(7, 7)
	blackRookQueensideHome = SquareAt(0, 7)
)

// KingHome / RookKingsideHome / RookQueensideHome expose the home
// squares above to other packages (board setup, move generation).
func KingHome(team Team) Square {
	if team == White {
		return whiteKingHome
	}
	return blackKingHome
}

func RookKingsideHome(team Team) Square {
	if team == White {
		return whiteRookKingsideHome
	}
	return blackRookKingsideHome
}

func RookQueensideHome(team Team) Square {
	if team == White {
		return whiteRookQueensideHome
	}
	return blackRookQueensideHome
}

// CastleKingDestination returns the king's destination square and
// whether rookFrom identifies the kingside rook, given the castling
// rook's home square (the value stored in Move.To for castle moves).
func CastleKingDestination(team Team, rookFrom Square) (Square, bool) {
	if rookFrom == RookKingsideHome(team) {
		return SquareAt(6, RankOf(KingHome(team))), true
	}
	return SquareAt(2, RankOf(KingHome(team))), false
}

// CastleRookDestination returns the rook's destination square for a
// castle move, mirroring CastleKingDestination.
func CastleRookDestination(team Team, rookFrom Square) Square {
	if rookFrom == RookKingsideHome(team) {
		return SquareAt(5, RankOf(KingHome(team)))
	}
	return SquareAt(3, RankOf(KingHome(team)))
}
