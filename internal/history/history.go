//
// FrankyGo - UCI chess engine in GO for learning purposes
//

// Package history holds the move-ordering heuristic tables that live for
// the lifetime of a search: the history-count table, counter-move table,
// and killer-move slots. The history and counter-move tables are indexed
// by mailbox squares (types.BoardSize wide) and the killers by ply, not
// by piece or move content, so lookups stay O(1) regardless of position.
package history

import (
	"github.com/kopparsynth/mailchess/internal/types"
)

// historyMax is the ceiling a HistoryCount entry may reach before the
// whole table is halved. Keeping entries small preserves the relative
// ordering information while stopping values from drifting out of the
// range the move orderer's sort key expects.
const historyMax = 500

// History is the per-search auxiliary state consulted by the move
// orderer: how often a quiet move has caused a beta cutoff
// (HistoryCount), the last move that refuted a given parent move
// (CounterMoves), and the two most recent killer moves per ply.
type History struct {
	HistoryCount [2][types.BoardSize][types.BoardSize]int64
	CounterMoves [types.BoardSize][types.BoardSize]types.Move
	Killers      [types.MaxPly][2]types.Move
}

// NewHistory returns an empty table, ready for a fresh search.
func NewHistory() *History {
	return &History{}
}

// Clear resets every table to its zero value. Called at the start of a
// new game so heuristics from a previous, unrelated position don't bias
// move ordering.
func (h *History) Clear() {
	*h = History{}
}

// AddHistory records that m caused a beta cutoff at the given depth.
// The increment is depth squared, so cutoffs found deeper in the tree
// -- which are rarer and more informative -- outweigh shallow ones.
// Only quiet moves are worth recording here; captures already order by
// MVV/LVA and SEE.
func (h *History) AddHistory(team types.Team, m types.Move, depth int) {
	if depth <= 0 {
		return
	}
	row := &h.HistoryCount[team][m.From][m.To]
	*row += int64(depth) * int64(depth)
	if *row >= historyMax {
		h.halve()
	}
}

func (h *History) halve() {
	for t := 0; t < 2; t++ {
		for from := 0; from < types.BoardSize; from++ {
			for to := 0; to < types.BoardSize; to++ {
				h.HistoryCount[t][from][to] /= 2
			}
		}
	}
}

// HistoryScore returns the current cutoff count for m, used as a
// tie-breaker among quiet moves that are neither killers nor the
// counter move.
func (h *History) HistoryScore(team types.Team, m types.Move) int64 {
	return h.HistoryCount[team][m.From][m.To]
}

// SetCounterMove records m as the reply that refuted parent. Keyed
// strictly by the parent move's own from/to squares, so a lookup always
// asks "what beat this move last time" regardless of which piece is
// moving now.
func (h *History) SetCounterMove(parent types.Move, m types.Move) {
	if parent == types.MoveNone {
		return
	}
	h.CounterMoves[parent.From][parent.To] = m
}

// CounterMove returns the recorded reply to parent, or MoveNone if none
// has been recorded yet.
func (h *History) CounterMove(parent types.Move) types.Move {
	if parent == types.MoveNone {
		return types.MoveNone
	}
	if m := h.CounterMoves[parent.From][parent.To]; m != (types.Move{}) {
		return m
	}
	return types.MoveNone
}

// IsCounterMove reports whether m is the recorded reply to parent.
func (h *History) IsCounterMove(parent types.Move, m types.Move) bool {
	return parent != types.MoveNone && h.CounterMoves[parent.From][parent.To] == m
}

// AddKiller inserts m as the newest killer for ply, a two-slot LIFO:
// slot 0 shifts to slot 1 and m takes slot 0. A move already sitting in
// slot 0 is left alone -- re-recording it would just churn the table
// without adding information.
func (h *History) AddKiller(ply int, m types.Move) {
	if ply < 0 || ply >= types.MaxPly {
		return
	}
	slots := &h.Killers[ply]
	if slots[0] == m {
		return
	}
	slots[1] = slots[0]
	slots[0] = m
}

// IsKiller reports whether m occupies either killer slot at ply.
func (h *History) IsKiller(ply int, m types.Move) bool {
	if ply < 0 || ply >= types.MaxPly {
		return false
	}
	slots := h.Killers[ply]
	return (slots[0] != types.MoveNone && slots[0] == m) || (slots[1] != types.MoveNone && slots[1] == m)
}

// KillerAt returns the killer occupying slot (0 or 1) at ply, or
// MoveNone if that slot hasn't been filled.
func (h *History) KillerAt(ply, slot int) types.Move {
	if ply < 0 || ply >= types.MaxPly || slot < 0 || slot > 1 {
		return types.MoveNone
	}
	if m := h.Killers[ply][slot]; m != (types.Move{}) {
		return m
	}
	return types.MoveNone
}
