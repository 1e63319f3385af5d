package types

import "fmt"

// Move info codes. Most piece types never use Info (NormalMove). Pawns and
// the king overload it to describe moves that need special make/undo
// handling instead of adding extra boolean fields to every move.
const (
	NormalMove    int8 = 0
	PawnPush      int8 = -1
	PawnDouble    int8 = -2
	PawnEnPassant int8 = -3
	KingCastle    int8 = 1
	// values 0..PiecesPerTeam-1 on a pawn move mean "promotes to this
	// PieceType"; King/other pieces never produce those values so a
	// single int8 field is unambiguous per piece type.
)

// Move is a fully-described chess move: enough information to apply it
// to a Board without consulting the board first. For King castling moves
// To holds the castling rook's origin square (not the king's
// destination), matching the "rook-centric" castling notation used by
// the move generator and the long-algebraic codec.
type Move struct {
	From, To  Square
	Team      Team
	PieceType PieceType
	Capture   bool
	Info      int8
}

// MoveNone is the sentinel used wherever "no move" must be represented,
// e.g. what KillerAt returns for a killer slot never filled. It is not
// the zero Move: its squares are SqNone and its piece type PieceTypeNone.
var MoveNone = Move{From: SqNone, To: SqNone, PieceType: PieceTypeNone}

// IsPromotion reports whether m is a pawn promotion, and if so which
// piece it promotes to.
func (m Move) IsPromotion() (PieceType, bool) {
	if m.PieceType == Pawn && m.Info >= 0 && m.Info < PiecesPerTeam {
		return PieceType(m.Info), true
	}
	return PieceTypeNone, false
}

// IsCastle reports whether m is a king castling move.
func (m Move) IsCastle() bool {
	return m.PieceType == King && m.Info == KingCastle
}

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.PieceType == Pawn && m.Info == PawnEnPassant
}

// Equals compares two moves field by field.
func (m Move) Equals(o Move) bool {
	return m == o
}

// String renders a move in a debug-friendly long algebraic form, e.g.
// "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "none"
	}
	if m.IsCastle() {
		// render using the conventional king destination for readability
		kingTo, _ := CastleKingDestination(m.Team, m.To)
		return m.From.String() + kingTo.String()
	}
	s := m.From.String() + m.To.String()
	if pt, ok := m.IsPromotion(); ok {
		s += string(pt.Letter(Black))
	}
	return s
}

// StringUci is identical to String for this engine's move model; kept
// as a separate method so callers that render lists of moves for the
// protocol layer don't need to know that no extra UCI-only formatting
// step exists.
func (m Move) StringUci() string {
	return m.String()
}

// GoString supports %#v debugging output.
func (m Move) GoString() string {
	return fmt.Sprintf("Move{%s %s %s cap=%v info=%d}", m.Team, m.PieceType, m.String(), m.Capture, m.Info)
}
