package board

import . "github.com/kopparsynth/mailchess/internal/types"

// IsSquareAttacked reports whether any piece of byTeam attacks sq in the
// current position. Used for legality filtering (king safety) and check
// detection; not used during ordinary move generation, which instead
// generates attacks directly per piece type.
func (b *Board) IsSquareAttacked(sq Square, byTeam Team) bool {
	// pawns: attack diagonally forward from the attacker's point of view
	forward := PawnForward(byTeam)
	for _, side := range [2]int{DirE, DirW} {
		from := sq - Square(forward) - Square(side)
		if code := b.state[from]; code.IsPiece() {
			team, pt := DecodePiece(code)
			if team == byTeam && pt == Pawn {
				return true
			}
		}
	}
	for _, d := range KnightDeltas {
		from := sq + Square(d)
		if code := b.state[from]; code.IsPiece() {
			team, pt := DecodePiece(code)
			if team == byTeam && pt == Knight {
				return true
			}
		}
	}
	for _, d := range KingDeltas {
		from := sq + Square(d)
		if code := b.state[from]; code.IsPiece() {
			team, pt := DecodePiece(code)
			if team == byTeam && pt == King {
				return true
			}
		}
	}
	for _, d := range RookDirs {
		if b.rayHitsPieceOfType(sq, d, byTeam, Rook, Queen) {
			return true
		}
	}
	for _, d := range BishopDirs {
		if b.rayHitsPieceOfType(sq, d, byTeam, Bishop, Queen) {
			return true
		}
	}
	return false
}

// rayHitsPieceOfType marches from sq in direction d until it hits an
// occupied or off-board square, returning true if the first piece
// reached belongs to byTeam and is one of pt1/pt2.
func (b *Board) rayHitsPieceOfType(sq Square, d int, byTeam Team, pt1, pt2 PieceType) bool {
	cur := sq + Square(d)
	for {
		code := b.state[cur]
		if code == Offboard {
			return false
		}
		if code == Empty {
			cur += Square(d)
			continue
		}
		team, pt := DecodePiece(code)
		return team == byTeam && (pt == pt1 || pt == pt2)
	}
}

// InCheck reports whether team's king is currently attacked.
func (b *Board) InCheck(team Team) bool {
	king := b.KingSquare(team)
	if king == SqNone {
		return false
	}
	return b.IsSquareAttacked(king, team.Opponent())
}

// LeastValuableAttacker finds the cheapest piece of byTeam that attacks
// sq, treating every square in excluded as if it were empty -- this is
// what lets a capture-exchange walk (see package search) reveal sliding
// x-ray attacks behind pieces already "removed" earlier in the
// exchange, without ever mutating the real board. Returns SqNone, false
// if byTeam has no such attacker.
func (b *Board) LeastValuableAttacker(sq Square, byTeam Team, excluded []Square) (Square, PieceType, bool) {
	isExcluded := func(s Square) bool {
		for _, e := range excluded {
			if e == s {
				return true
			}
		}
		return false
	}
	codeAt := func(s Square) SquareCode {
		if isExcluded(s) {
			return Empty
		}
		return b.state[s]
	}

	forward := PawnForward(byTeam)
	for _, side := range [2]int{DirE, DirW} {
		from := sq - Square(forward) - Square(side)
		if code := codeAt(from); code.IsPiece() {
			team, pt := DecodePiece(code)
			if team == byTeam && pt == Pawn {
				return from, Pawn, true
			}
		}
	}
	for _, d := range KnightDeltas {
		from := sq + Square(d)
		if code := codeAt(from); code.IsPiece() {
			team, pt := DecodePiece(code)
			if team == byTeam && pt == Knight {
				return from, Knight, true
			}
		}
	}

	rayAttacker := func(dirs []int, pt1, pt2 PieceType) (Square, PieceType, bool) {
		for _, d := range dirs {
			cur := sq + Square(d)
			for {
				code := codeAt(cur)
				if code == Offboard {
					break
				}
				if code == Empty {
					cur += Square(d)
					continue
				}
				team, pt := DecodePiece(code)
				if team == byTeam && (pt == pt1 || pt == pt2) {
					return cur, pt, true
				}
				break
			}
		}
		return SqNone, PieceTypeNone, false
	}
	if from, pt, ok := rayAttacker(BishopDirs, Bishop, Queen); ok && pt == Bishop {
		return from, pt, true
	}
	if from, pt, ok := rayAttacker(RookDirs, Rook, Queen); ok && pt == Rook {
		return from, pt, true
	}
	if from, pt, ok := rayAttacker(RookDirs, Rook, Queen); ok {
		return from, pt, true
	}
	if from, pt, ok := rayAttacker(BishopDirs, Bishop, Queen); ok {
		return from, pt, true
	}
	for _, d := range KingDeltas {
		from := sq + Square(d)
		if code := codeAt(from); code.IsPiece() {
			team, pt := DecodePiece(code)
			if team == byTeam && pt == King {
				return from, King, true
			}
		}
	}
	return SqNone, PieceTypeNone, false
}
