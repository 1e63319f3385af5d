package board

import . "github.com/kopparsynth/mailchess/internal/types"

type squareReset struct {
	pos       Square
	priorCode SquareCode
}

type editKind uint8

const (
	editMove editKind = iota
	editRemove
	editCreate
)

// pieceEdit is one reversible mutation of a team's piece list, recorded
// during Make so Undo can replay it backwards.
type pieceEdit struct {
	kind editKind
	team Team

	// editMove
	from, to       Square
	priorFirstMove bool

	// editRemove / editCreate
	record       PieceRecord
	index        int
	displaced    PieceRecord
	hadDisplaced bool
}

// moveRecord is one entry of Board.history. Standard moves (the large
// majority) carry a short list of square resets plus piece-list edits.
// Castling is the one move shape cheap enough to just snapshot and
// restore wholesale rather than describe as edits.
type moveRecord struct {
	move Move

	custom bool

	resets []squareReset
	edits  []pieceEdit

	stateCopy  [BoardSize]SquareCode
	whiteCopy  []PieceRecord
	blackCopy  []PieceRecord
	indexCopy  [BoardSize]int16
}
