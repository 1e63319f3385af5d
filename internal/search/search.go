//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package search implements iterative-deepening alpha-beta search with
// the usual battery of pruning and move-ordering heuristics on top of
// the mailbox board representation.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/config"
	"github.com/kopparsynth/mailchess/internal/history"
	myLogging "github.com/kopparsynth/mailchess/internal/logging"
	"github.com/kopparsynth/mailchess/internal/movegen"
	"github.com/kopparsynth/mailchess/internal/moveslice"
	"github.com/kopparsynth/mailchess/internal/transpositiontable"
	. "github.com/kopparsynth/mailchess/internal/types"
	"github.com/kopparsynth/mailchess/internal/uciinterface"
	"github.com/kopparsynth/mailchess/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxDepth bounds the iterative deepening loop and every per-ply buffer
// the search allocates.
const MaxDepth = MaxPly

// Search holds all state for one engine's worth of search: its
// transposition table, move ordering heuristics, and whatever search is
// currently running (if any).
//  Create new instance with NewSearch()
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciinterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt *transpositiontable.TtTable

	history *history.History

	lastSearchResult *Result

	stopFlag          bool
	startTime         time.Time
	hasResult         bool
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	nodesVisited      uint64
	pv                []*moveslice.MoveSlice
	rootMoves         *moveslice.MoveSlice
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// NewSearch creates a new Search instance. If no uci handler is set
// with SetUciHandler, progress reports go to the engine log instead.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		history:       history.NewHistory(),
	}
}

// NewGame stops any running search and resets state (TT, history) that
// shouldn't carry over between unrelated games.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.history.Clear()
}

// StartSearch starts a search on a copy of b using the given limits.
// The search runs in its own goroutine; StartSearch returns once the
// search has finished its setup and is actually running.
func (s *Search) StartSearch(b *board.Board, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	position := b.Clone()
	s.searchLimits = &sl
	go s.run(position, &sl)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// PonderHit converts a running ponder search into a normal timed
// search: it drops the Ponder flag so the post-iteration wait loop in
// run() can exit, and starts the move timer if the search has a time
// budget and hasn't started one yet.
func (s *Search) PonderHit() {
	s.searchLimits.Ponder = false
	if s.searchLimits.TimeControl {
		s.startTimer()
	}
}

// StopSearch stops a running search as quickly as possible and blocks
// until it has actually stopped.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has stopped.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler sets the callback target for progress reports.
func (s *Search) SetUciHandler(h uciinterface.UciDriver) {
	s.uciHandlerPtr = h
}

// IsReady makes sure the transposition table is allocated, then
// reports readiness through the uci handler (part of the UCI
// handshake).
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash empties the transposition table. Ignored with a warning
// while a search is running.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.sendInfoStringToUci("Can't clear hash while searching.")
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache drops and reallocates the transposition table at the
// size currently in config.Settings.Search.TTSize.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		s.sendInfoStringToUci("Can't resize hash while searching.")
		return
	}
	s.tt = nil
	s.initialize()
	s.log.Debug(util.GcWithStats())
}

// run executes one full search: setup, iterative deepening, and
// reporting the final result. Always called in its own goroutine from
// StartSearch.
func (s *Search) run(pos *board.Board, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.stopFlag = false
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.lastUciUpdateTime = s.startTime
	s.initialize()

	s.setupSearchLimits(pos, sl)
	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	if s.tt != nil {
		s.tt.AgeEntries()
	}

	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		ms := moveslice.NewMoveSlice(MaxDepth + 1)
		s.pv = append(s.pv, ms)
	}

	s.initSemaphore.Release(1)

	result := s.iterativeDeepening(pos)

	if (s.searchLimits.Ponder || s.searchLimits.Infinite) && !s.stopFlag {
		for !s.stopFlag && (s.searchLimits.Ponder || s.searchLimits.Infinite) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	result.SearchTime = time.Since(s.startTime)
	result.Pv = *s.pv[0]

	s.log.Info(out.Sprintf("Search finished after %s: %s", result.SearchTime, result.String()))

	s.lastSearchResult = result
	s.hasResult = true
	s.stopFlag = true
	s.sendResult(result)
}

// iterativeDeepening runs successively deeper full searches from pos
// until a search limit is hit, returning the best result found so far
// (which is always at least as good as the previous complete
// iteration's, since root moves are re-sorted by score between
// iterations).
func (s *Search) iterativeDeepening(pos *board.Board) *Result {
	s.rootMoves = moveslice.NewMoveSlice(MaxMovesPerPosition)
	movegen.GenerateLegal(pos, movegen.All, s.rootMoves)
	if s.rootMoves.Len() == 0 {
		if pos.InCheck(pos.MovingTeam()) {
			s.statistics.Checkmates++
			s.sendInfoStringToUci("Search called on a mate position")
			return &Result{BestValue: MateScore(0)}
		}
		s.statistics.Stalemates++
		s.sendInfoStringToUci("Search called on a stalemate position")
		return &Result{BestValue: ValueDraw}
	}

	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 && s.searchLimits.Depth < maxDepth {
		maxDepth = s.searchLimits.Depth
	}

	alpha, beta := MinScore, MaxScore
	bestValue := ValueNA

	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth

		if config.Settings.Search.UseAspirationWindow && iterationDepth > 3 && bestValue != ValueNA {
			bestValue = s.aspirationSearch(pos, iterationDepth, bestValue)
		} else {
			bestValue = s.rootSearch(pos, iterationDepth, alpha, beta)
		}

		if !s.stopConditions() && s.rootMoves.Len() > 1 {
			s.statistics.CurrentBestRootMove = s.rootMoves.At(0)
			s.sendIterationEndInfoToUci()
		} else {
			break
		}
	}

	if s.pv[0].Len() == 0 {
		return &Result{BestMove: s.rootMoves.At(0), BestValue: bestValue}
	}

	result := &Result{
		BestMove:    s.pv[0].At(0),
		BestValue:   bestValue,
		SearchDepth: s.statistics.CurrentSearchDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}
	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1)
	}
	return result
}

// initialize lazily allocates the transposition table. Safe to call
// repeatedly -- only the first call (or the first after ResizeCache)
// does any work.
func (s *Search) initialize() {
	if config.Settings.Search.UseTT && s.tt == nil {
		sizeInMByte := config.Settings.Search.TTSize
		if sizeInMByte == 0 {
			sizeInMByte = 64
		}
		s.tt = transpositiontable.NewTtTable(sizeInMByte)
	}
}

// stopConditions reports whether the search should stop: either
// StopSearch was called, or a node-count limit was reached.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag = true
	}
	return s.stopFlag
}

func (s *Search) setupSearchLimits(pos *board.Board, sl *Limits) {
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(pos, sl)
		s.extraTime = 0
	}
}

// setupTimeControl turns the remaining-clock-time limits into a
// per-move time budget: own_time/300 + own_increment/10, or a flat
// three seconds if no clock time was given at all.
func (s *Search) setupTimeControl(pos *board.Board, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		return sl.MoveTime
	}
	var ownTime, ownInc time.Duration
	switch pos.MovingTeam() {
	case White:
		ownTime, ownInc = sl.WhiteTime, sl.WhiteInc
	case Black:
		ownTime, ownInc = sl.BlackTime, sl.BlackInc
	}
	if ownTime == 0 {
		return 3000 * time.Millisecond
	}
	return ownTime/300 + ownInc/10
}

// startTimer spawns a goroutine that sets stopFlag once the time
// budget (plus any extra time granted mid-search) has elapsed.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag {
			time.Sleep(5 * time.Millisecond)
		}
		s.stopFlag = true
	}()
}

func (s *Search) sendResult(result *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(result.BestMove, result.PonderMove)
	}
}

func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	}
	s.log.Warning(msg)
}

func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) < time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	hashfull := 0
	if s.tt != nil {
		hashfull = s.tt.Hashfull()
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchUpdate(
			s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited, s.getNps(), time.Since(s.startTime), hashfull)
		s.uciHandlerPtr.SendCurrentRootMove(s.statistics.CurrentRootMove, s.statistics.CurrentRootMoveIndex)
		s.uciHandlerPtr.SendCurrentLine(s.statistics.CurrentVariation)
	}
}

func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue, s.nodesVisited, s.getNps(),
			time.Since(s.startTime), *s.pv[0])
		return
	}
	s.slog.Infof("depth %d seldepth %d value %s nodes %d nps %d time %d pv %s",
		s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth,
		s.statistics.CurrentBestRootMoveValue.String(), s.nodesVisited, s.getNps(),
		time.Since(s.startTime).Milliseconds(), s.pv[0].StringUci())
}

func (s *Search) sendAspirationResearchInfo(bound string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendAspirationResearchInfo(
			s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue, bound, s.nodesVisited, s.getNps(),
			time.Since(s.startTime), *s.pv[0])
	}
}

// getNps returns nodes-per-second for the running search, or 0 when the
// figure exceeds 15,000,000, so a near-zero elapsed time can't report a
// nonsense value.
func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime)+100)
	if nps > 15_000_000 {
		nps = 0
	}
	return nps
}

// LastSearchResult returns a copy of the most recently finished
// search's result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the node count of the currently running (or
// most recently finished) search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns the auxiliary counters collected during the last
// search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}
