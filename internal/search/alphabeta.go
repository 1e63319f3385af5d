//
// FrankyGo - UCI chess engine in GO for learning purposes
//

package search

import (
	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/config"
	"github.com/kopparsynth/mailchess/internal/evaluator"
	"github.com/kopparsynth/mailchess/internal/movegen"
	"github.com/kopparsynth/mailchess/internal/moveslice"
	"github.com/kopparsynth/mailchess/internal/transpositiontable"
	. "github.com/kopparsynth/mailchess/internal/types"
)

// nullMoveReduction is the fixed depth reduction null move pruning
// applies to its verification search, which runs at
// depth-nullMoveReduction.
const nullMoveReduction = 3

// deltaMargin is quiescence's flat safety margin (one pawn's value)
// added on top of a capture's own value before delta pruning
// decides a capture cannot possibly raise alpha.
const deltaMargin = Value(1000)

// rootSearch performs one full-width alpha-beta pass over the root
// move list, using PVS scout searches for every move after the first
// and bubbling the best move found to the front of s.rootMoves so the
// next iteration searches it first.
func (s *Search) rootSearch(pos *board.Board, depth int, alpha, beta Value) Value {
	s.pv[0].Clear()
	bestValue := MinScore
	bestIndex := -1

	for i := 0; i < s.rootMoves.Len(); i++ {
		m := s.rootMoves.At(i)
		s.statistics.CurrentRootMove = m
		s.statistics.CurrentRootMoveIndex = i + 1
		s.sendSearchUpdateToUci()

		pos.Make(m)
		var value Value
		if i == 0 {
			value = -s.negamax(pos, depth-1, 1, -beta, -alpha)
		} else {
			value = -s.negamax(pos, depth-1, 1, -alpha-1, -alpha)
			if value > alpha && value < beta {
				s.statistics.RootPvsResearches++
				value = -s.negamax(pos, depth-1, 1, -beta, -alpha)
			}
		}
		pos.Undo()

		if s.stopConditions() {
			break
		}

		if value > bestValue {
			bestValue = value
			bestIndex = i
			s.statistics.CurrentBestRootMoveValue = value
			if value > alpha {
				alpha = value
				s.updatePv(0, m)
			}
		}
		if alpha >= beta {
			break
		}
	}

	if bestIndex > 0 {
		best := s.rootMoves.At(bestIndex)
		for i := bestIndex; i > 0; i-- {
			s.rootMoves.Set(i, s.rootMoves.At(i-1))
		}
		s.rootMoves.Set(0, best)
	}

	return bestValue
}

// aspirationSearch retries rootSearch with progressively wider windows
// around the previous iteration's score until a search lands strictly
// inside its window, falling back to a full-width search if every step
// fails.
func (s *Search) aspirationSearch(pos *board.Board, depth int, prevBest Value) Value {
	window := Value(config.Settings.Search.AspirationWindow)
	alpha := prevBest - window
	beta := prevBest + window

	for _, step := range aspirationSteps {
		value := s.rootSearch(pos, depth, alpha, beta)
		if s.stopConditions() {
			return value
		}
		if value <= alpha {
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo("upperbound")
			alpha = prevBest - step
			continue
		}
		if value >= beta {
			s.statistics.AspirationResearches++
			s.sendAspirationResearchInfo("lowerbound")
			beta = prevBest + step
			continue
		}
		return value
	}
	return s.rootSearch(pos, depth, MinScore, MaxScore)
}

// negamax is the main recursive search: transposition table lookup,
// pruning, move ordering and PVS, in that order. depth is the
// depth-left, ply is the distance from the search root.
func (s *Search) negamax(pos *board.Board, depth, ply int, alpha, beta Value) Value {
	if ply < len(s.pv) {
		s.pv[ply].Clear()
	}

	if s.stopConditions() {
		return ValueZero
	}
	s.nodesVisited++

	if depth <= 0 {
		return s.quiescence(pos, ply, alpha, beta)
	}

	pvNode := beta-alpha > 1

	if config.Settings.Search.UseRepetitionDraw && pos.RepetitionCount() >= 2 {
		return ValueDraw
	}

	inCheck := pos.InCheck(pos.MovingTeam())

	ttMove := MoveNone
	if s.tt != nil {
		if entry := s.tt.Probe(pos.Key()); entry != nil {
			s.statistics.TTHit++
			ttMove = entry.Move()
			if !pvNode && int(entry.Depth()) >= depth {
				ttValue := transpositiontable.ValueFromTT(entry.Value(), ply)
				switch entry.Vtype() {
				case ValueExact:
					s.statistics.TTCuts++
					return ttValue
				case ValueLowerBound:
					if ttValue >= beta {
						s.statistics.TTCuts++
						return ttValue
					}
				case ValueUpperBound:
					if ttValue <= alpha {
						s.statistics.TTCuts++
						return ttValue
					}
				}
			}
			s.statistics.TTNoCuts++
		} else {
			s.statistics.TTMiss++
		}
	}

	if ttMove == MoveNone && pvNode && config.Settings.Search.UseIID && depth >= config.Settings.Search.IIDMinDepth {
		s.statistics.IIDsearches++
		s.negamax(pos, depth-2, ply, alpha, beta)
		if s.tt != nil {
			if entry := s.tt.Probe(pos.Key()); entry != nil && entry.Move() != MoveNone {
				ttMove = entry.Move()
				s.statistics.IIDmoves++
			}
		}
	}

	staticEval := ValueZero
	if !inCheck {
		staticEval = evaluator.Eval(pos)
		s.statistics.Evaluations++
	}

	if !pvNode && !inCheck && config.Settings.Search.UseRFP && depth <= config.Settings.Search.RfpMaxDepth {
		margin := ReverseFutilityMargin(depth)
		if staticEval-margin >= beta {
			s.statistics.RfpPrunings++
			return staticEval - margin
		}
	}

	if !pvNode && !inCheck && config.Settings.Search.UseNullMove && depth >= config.Settings.Search.NmpMinDepth &&
		staticEval >= beta && hasNonPawnMaterial(pos, pos.MovingTeam()) {
		pos.MakeNull()
		value := -s.negamax(pos, depth-nullMoveReduction, ply+1, -beta, -beta+1)
		pos.UndoNull()
		if value >= beta {
			if value.IsMateScore() {
				s.statistics.NMPMateBeta++
				value = beta
			}
			s.statistics.NullMoveCuts++
			return value
		}
	}

	moves := moveslice.NewMoveSlice(MaxMovesPerPosition)
	movegen.GeneratePseudoLegal(pos, movegen.All, moves)
	parentMove := MoveNone
	if lm, ok := pos.LastMove(); ok {
		parentMove = lm
	}
	s.orderMoves(pos, moves, ply, ttMove, parentMove)

	legalMoveCount := 0
	bestValue := MinScore
	bestMove := MoveNone
	originalAlpha := alpha

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		pos.Make(m)
		if pos.InCheck(m.Team) {
			pos.Undo()
			continue
		}
		legalMoveCount++

		givesCheck := pos.InCheck(pos.MovingTeam())
		_, isPromo := m.IsPromotion()
		isQuiet := !m.Capture && !m.IsEnPassant() && !isPromo

		if !pvNode && !inCheck && isQuiet && !givesCheck && depth <= 8 &&
			legalMoveCount > LmpMovesSearched(depth) {
			pos.Undo()
			legalMoveCount--
			s.statistics.LmpCuts++
			continue
		}

		if !pvNode && !inCheck && isQuiet && !givesCheck && config.Settings.Search.UseFutility &&
			staticEval+FutilityMargin(depth) <= alpha {
			pos.Undo()
			legalMoveCount--
			s.statistics.FpPrunings++
			continue
		}

		extension := 0
		if givesCheck {
			extension = 1
			s.statistics.CheckExtension++
		}
		newDepth := depth - 1 + extension

		reduction := 0
		if extension == 0 && isQuiet && legalMoveCount > 1 && !inCheck &&
			config.Settings.Search.UseLMR && depth >= config.Settings.Search.LmrMinDepth {
			reduction = LmrReduction(depth, legalMoveCount)
			s.statistics.LmrReductions++
		}

		var value Value
		if legalMoveCount == 1 {
			value = -s.negamax(pos, newDepth, ply+1, -beta, -alpha)
		} else {
			value = -s.negamax(pos, newDepth-reduction, ply+1, -alpha-1, -alpha)
			if value > alpha && reduction > 0 {
				s.statistics.LmrResearches++
				value = -s.negamax(pos, newDepth, ply+1, -alpha-1, -alpha)
			}
			if value > alpha && value < beta {
				s.statistics.PvsResearches++
				value = -s.negamax(pos, newDepth, ply+1, -beta, -alpha)
			}
		}
		pos.Undo()

		if s.stopConditions() {
			return bestValue
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				s.updatePv(ply, m)
				if alpha >= beta {
					if legalMoveCount == 1 {
						s.statistics.BetaCuts1st++
					}
					s.statistics.BetaCuts++
					if isQuiet {
						s.history.AddHistory(m.Team, m, depth)
						s.history.AddKiller(ply, m)
						s.history.SetCounterMove(parentMove, m)
					}
					break
				}
			}
		}
	}

	if legalMoveCount == 0 {
		if inCheck {
			s.statistics.Checkmates++
			return MateScore(ply)
		}
		s.statistics.Stalemates++
		return ValueDraw
	}

	if s.tt != nil {
		vtype := ValueExact
		switch {
		case bestValue <= originalAlpha:
			vtype = ValueUpperBound
		case bestValue >= beta:
			vtype = ValueLowerBound
		}
		s.tt.Put(pos.Key(), bestMove, int8(depth), transpositiontable.ValueToTT(bestValue, ply), vtype, staticEval)
	}

	return bestValue
}

// quiescence extends search past the horizon through standing captures
// (and, while in check, all evasions) until the position is quiet,
// returning a stand-pat evaluation once no more captures can improve
// on it.
func (s *Search) quiescence(pos *board.Board, ply int, alpha, beta Value) Value {
	if ply < len(s.pv) {
		s.pv[ply].Clear()
	}
	if s.stopConditions() {
		return ValueZero
	}
	s.nodesVisited++

	if ply >= MaxDepth {
		return evaluator.Eval(pos)
	}

	inCheck := pos.InCheck(pos.MovingTeam())
	bestValue := MinScore

	if !inCheck {
		standPat := evaluator.Eval(pos)
		s.statistics.Evaluations++
		bestValue = standPat
		if standPat >= beta {
			s.statistics.StandpatCuts++
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		s.statistics.CheckInQS++
	}

	if !config.Settings.Search.UseQuiescence {
		return bestValue
	}

	moves := moveslice.NewMoveSlice(MaxMovesPerPosition)
	if inCheck {
		movegen.GeneratePseudoLegal(pos, movegen.All, moves)
	} else {
		movegen.GeneratePseudoLegal(pos, movegen.CapturesOnly, moves)
	}
	s.orderMoves(pos, moves, ply, MoveNone, MoveNone)

	legalMoveCount := 0

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		if !inCheck {
			if config.Settings.Search.UseDeltaPrune && bestValue+capturedValue(pos, m)+deltaMargin < alpha {
				s.statistics.DeltaPrunings++
				continue
			}
			if config.Settings.Search.UseSEE && (m.Capture || m.IsEnPassant()) && see(pos, m) < 0 {
				continue
			}
		}

		pos.Make(m)
		if pos.InCheck(m.Team) {
			pos.Undo()
			continue
		}
		legalMoveCount++

		value := -s.quiescence(pos, ply+1, -beta, -alpha)
		pos.Undo()

		if s.stopConditions() {
			return bestValue
		}

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
				s.updatePv(ply, m)
				if alpha >= beta {
					s.statistics.BetaCuts++
					break
				}
			}
		}
	}

	if inCheck && legalMoveCount == 0 {
		s.statistics.Checkmates++
		return MateScore(ply)
	}

	return bestValue
}

// updatePv prepends m to the PV inherited from ply+1, the standard
// triangular PV table update.
func (s *Search) updatePv(ply int, m Move) {
	if ply >= len(s.pv) {
		return
	}
	s.pv[ply].Clear()
	s.pv[ply].PushBack(m)
	if ply+1 >= len(s.pv) {
		return
	}
	child := s.pv[ply+1]
	for i := 0; i < child.Len(); i++ {
		s.pv[ply].PushBack(child.At(i))
	}
}

// capturedValue returns the material value of whatever m captures, or
// ValueZero for a non-capture.
func capturedValue(pos *board.Board, m Move) Value {
	if m.IsEnPassant() {
		return PieceValue(Pawn)
	}
	if code := pos.At(m.To); code.IsPiece() {
		_, pt := DecodePiece(code)
		return PieceValue(pt)
	}
	return ValueZero
}

// hasNonPawnMaterial reports whether team has any piece besides pawns
// and its king, the usual null-move-safety guard against zugzwang in
// king-and-pawn endgames.
func hasNonPawnMaterial(pos *board.Board, team Team) bool {
	for _, p := range pos.Pieces(team) {
		_, pt := DecodePiece(pos.At(p.Pos))
		if pt != Pawn && pt != King {
			return true
		}
	}
	return false
}
