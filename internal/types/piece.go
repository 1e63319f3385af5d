package types

import "fmt"

// PieceType enumerates the six piece kinds. PiecesPerTeam (geometry.go)
// must track len of this enum.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeNone
)

var pieceTypeLetters = [...]byte{'P', 'N', 'B', 'R', 'Q', 'K'}
var pieceTypeLettersLower = [...]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// String returns the uppercase piece letter, e.g. "N" for knight.
func (pt PieceType) String() string {
	if pt < Pawn || pt > King {
		return "?"
	}
	return string(pieceTypeLetters[pt])
}

// Letter returns the piece letter cased for the given team, as used in
// FEN and long algebraic promotion suffixes.
func (pt PieceType) Letter(team Team) byte {
	if team == White {
		return pieceTypeLetters[pt]
	}
	return pieceTypeLettersLower[pt]
}

// PieceTypeFromLetter parses a single FEN/promotion piece letter,
// case-insensitively, returning PieceTypeNone if unrecognized.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return PieceTypeNone
	}
}

// Square codes. The mailbox array stores one of these small integers per
// cell: Offboard marks the sentinel frame, Empty an on-board empty cell,
// and every value from 2 upward encodes a (team, pieceType) pair as
// pieceType + PiecesPerTeam*team + 2.
const (
	Offboard SquareCode = 0
	Empty    SquareCode = 1
)

// SquareCode is the small integer stored in Board.state for every cell.
type SquareCode int8

// EncodePiece packs a team/pieceType pair into a square code.
func EncodePiece(team Team, pt PieceType) SquareCode {
	return SquareCode(int8(pt) + PiecesPerTeam*int8(team) + 2)
}

// DecodePiece unpacks a square code produced by EncodePiece. Behaviour is
// undefined for Offboard/Empty codes; callers must check those first.
func DecodePiece(code SquareCode) (Team, PieceType) {
	idx := int8(code) - 2
	team := Team(idx / PiecesPerTeam)
	pt := PieceType(idx % PiecesPerTeam)
	return team, pt
}

// IsPiece reports whether code represents an occupied, on-board square.
func (c SquareCode) IsPiece() bool {
	return c >= 2
}

// String renders a square code as it would look on a printed board.
func (c SquareCode) String() string {
	switch {
	case c == Offboard:
		return "."
	case c == Empty:
		return " "
	default:
		team, pt := DecodePiece(c)
		return fmt.Sprintf("%c", pt.Letter(team))
	}
}

// PieceValue returns the static material value in the engine's internal
// units (ten times a conventional centipawn). The king's value is
// nominal -- never traded -- and cancels out of material differences
// since both sides always have exactly one.
func PieceValue(pt PieceType) Value {
	switch pt {
	case Pawn:
		return 1000
	case Knight:
		return 3000
	case Bishop:
		return 3250
	case Rook:
		return 5000
	case Queen:
		return 9000
	case King:
		return 1000
	default:
		return 0
	}
}
