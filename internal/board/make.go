package board

import . "github.com/kopparsynth/mailchess/internal/types"

// Make applies m to the board, recording enough information on the
// history stack for Undo to exactly reverse it. m is trusted to be
// pseudo-legal for the current position; callers (the move generator's
// legality filter and the search driver) are responsible for not
// passing anything else.
func (b *Board) Make(m Move) {
	rec := moveRecord{move: m}
	switch {
	case m.IsCastle():
		b.makeCastle(m, &rec)
	case m.IsEnPassant():
		b.makeEnPassant(m, &rec)
	default:
		if _, isPromo := m.IsPromotion(); isPromo {
			b.makePromotion(m, &rec)
		} else {
			b.makeStandard(m, &rec)
		}
	}
	b.movingTeam = b.movingTeam.Opponent()
	b.history = append(b.history, rec)
	b.keyHistory = append(b.keyHistory, ComputeKey(b))
}

// Undo reverses the most recently made move. Panics if the history is
// empty, mirroring the teacher's PopBack-style slice helpers.
func (b *Board) Undo() {
	if len(b.history) == 0 {
		panic("board: Undo called with empty history")
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.keyHistory = b.keyHistory[:len(b.keyHistory)-1]
	b.movingTeam = b.movingTeam.Opponent()

	if rec.custom {
		b.undoCustom(rec)
		return
	}
	for i := len(rec.edits) - 1; i >= 0; i-- {
		b.undoEdit(rec.edits[i])
	}
	for _, r := range rec.resets {
		b.state[r.pos] = r.priorCode
	}
}

// MakeNull flips the side to move without moving a piece, for null move
// pruning. The pushed history entry carries MoveNone so EnPassantTarget
// correctly reports no en passant square is available afterwards.
func (b *Board) MakeNull() {
	b.history = append(b.history, moveRecord{move: MoveNone})
	b.movingTeam = b.movingTeam.Opponent()
	b.keyHistory = append(b.keyHistory, ComputeKey(b))
}

// UndoNull reverses the most recent MakeNull.
func (b *Board) UndoNull() {
	b.history = b.history[:len(b.history)-1]
	b.keyHistory = b.keyHistory[:len(b.keyHistory)-1]
	b.movingTeam = b.movingTeam.Opponent()
}

// removePieceAt swap-removes the piece at slice index idx of the given
// team's piece list and returns the edit needed to undo it. The caller
// must look idx up fresh (via posToIndex) immediately before calling,
// since any prior removal in the same Make call can shift indices.
func (b *Board) removePieceAt(team Team, idx int) pieceEdit {
	list := b.pieces[team]
	removed := list[idx]
	last := len(list) - 1
	edit := pieceEdit{kind: editRemove, team: team, record: removed, index: idx}
	if idx != last {
		displaced := list[last]
		list[idx] = displaced
		b.posToIndex[displaced.Pos] = int16(idx)
		edit.displaced = displaced
		edit.hadDisplaced = true
	}
	b.pieces[team] = list[:last]
	b.posToIndex[removed.Pos] = -1
	return edit
}

func (b *Board) undoEdit(e pieceEdit) {
	switch e.kind {
	case editMove:
		idx := b.posToIndex[e.to]
		b.pieces[e.team][idx].Pos = e.from
		b.pieces[e.team][idx].FirstMove = e.priorFirstMove
		b.posToIndex[e.from] = idx
		b.posToIndex[e.to] = -1
	case editRemove:
		list := b.pieces[e.team]
		if e.hadDisplaced {
			list = append(list, e.displaced)
			list[e.index] = e.record
			b.posToIndex[e.displaced.Pos] = int16(len(list) - 1)
			b.posToIndex[e.record.Pos] = int16(e.index)
		} else {
			list = append(list, e.record)
			b.posToIndex[e.record.Pos] = int16(e.index)
		}
		b.pieces[e.team] = list
	case editCreate:
		list := b.pieces[e.team]
		last := len(list) - 1
		if e.index != last {
			list[e.index] = list[last]
			b.posToIndex[list[e.index].Pos] = int16(e.index)
		}
		b.pieces[e.team] = list[:last]
		b.posToIndex[e.record.Pos] = -1
	}
}

func (b *Board) makeStandard(m Move, rec *moveRecord) {
	priorFrom := b.state[m.From]
	priorTo := b.state[m.To]
	rec.resets = []squareReset{{m.From, priorFrom}, {m.To, priorTo}}

	if m.Capture {
		capIdx := b.posToIndex[m.To]
		rec.edits = append(rec.edits, b.removePieceAt(m.Team.Opponent(), int(capIdx)))
	}

	fromIdx := b.posToIndex[m.From]
	priorFirstMove := b.pieces[m.Team][fromIdx].FirstMove
	b.pieces[m.Team][fromIdx].Pos = m.To
	b.pieces[m.Team][fromIdx].FirstMove = false
	b.posToIndex[m.To] = fromIdx
	b.posToIndex[m.From] = -1
	rec.edits = append(rec.edits, pieceEdit{kind: editMove, team: m.Team, from: m.From, to: m.To, priorFirstMove: priorFirstMove})

	b.state[m.From] = Empty
	b.state[m.To] = priorFrom
}

func (b *Board) makeEnPassant(m Move, rec *moveRecord) {
	capturedSq := Square(int(m.From)/Cols*Cols + int(m.To)%Cols)
	priorFrom := b.state[m.From]
	priorTo := b.state[m.To]
	priorCap := b.state[capturedSq]
	rec.resets = []squareReset{{m.From, priorFrom}, {m.To, priorTo}, {capturedSq, priorCap}}

	capIdx := b.posToIndex[capturedSq]
	rec.edits = append(rec.edits, b.removePieceAt(m.Team.Opponent(), int(capIdx)))

	fromIdx := b.posToIndex[m.From]
	priorFirstMove := b.pieces[m.Team][fromIdx].FirstMove
	b.pieces[m.Team][fromIdx].Pos = m.To
	b.pieces[m.Team][fromIdx].FirstMove = false
	b.posToIndex[m.To] = fromIdx
	b.posToIndex[m.From] = -1
	rec.edits = append(rec.edits, pieceEdit{kind: editMove, team: m.Team, from: m.From, to: m.To, priorFirstMove: priorFirstMove})

	b.state[m.From] = Empty
	b.state[m.To] = priorFrom
	b.state[capturedSq] = Empty
}

func (b *Board) makePromotion(m Move, rec *moveRecord) {
	priorFrom := b.state[m.From]
	priorTo := b.state[m.To]
	rec.resets = []squareReset{{m.From, priorFrom}, {m.To, priorTo}}

	if m.Capture {
		capIdx := b.posToIndex[m.To]
		rec.edits = append(rec.edits, b.removePieceAt(m.Team.Opponent(), int(capIdx)))
	}

	pawnIdx := b.posToIndex[m.From]
	rec.edits = append(rec.edits, b.removePieceAt(m.Team, int(pawnIdx)))

	promoType, _ := m.IsPromotion()
	newRecord := PieceRecord{Pos: m.To, FirstMove: false}
	idx := len(b.pieces[m.Team])
	b.pieces[m.Team] = append(b.pieces[m.Team], newRecord)
	b.posToIndex[m.To] = int16(idx)
	rec.edits = append(rec.edits, pieceEdit{kind: editCreate, team: m.Team, record: newRecord, index: idx})

	b.state[m.From] = Empty
	b.state[m.To] = EncodePiece(m.Team, promoType)
}

func (b *Board) makeCastle(m Move, rec *moveRecord) {
	rec.custom = true
	rec.stateCopy = b.state
	rec.indexCopy = b.posToIndex
	rec.whiteCopy = append([]PieceRecord(nil), b.pieces[White]...)
	rec.blackCopy = append([]PieceRecord(nil), b.pieces[Black]...)

	kingFrom := m.From
	rookFrom := m.To
	kingTo, _ := CastleKingDestination(m.Team, rookFrom)
	rookTo := CastleRookDestination(m.Team, rookFrom)

	kingIdx := b.posToIndex[kingFrom]
	rookIdx := b.posToIndex[rookFrom]
	kingCode := b.state[kingFrom]
	rookCode := b.state[rookFrom]

	b.state[kingFrom] = Empty
	b.state[rookFrom] = Empty
	b.state[kingTo] = kingCode
	b.state[rookTo] = rookCode

	b.pieces[m.Team][kingIdx] = PieceRecord{Pos: kingTo, FirstMove: false}
	b.pieces[m.Team][rookIdx] = PieceRecord{Pos: rookTo, FirstMove: false}

	b.posToIndex[kingFrom] = -1
	b.posToIndex[rookFrom] = -1
	b.posToIndex[kingTo] = kingIdx
	b.posToIndex[rookTo] = rookIdx
}

func (b *Board) undoCustom(rec moveRecord) {
	b.state = rec.stateCopy
	b.posToIndex = rec.indexCopy
	b.pieces[White] = rec.whiteCopy
	b.pieces[Black] = rec.blackCopy
}
