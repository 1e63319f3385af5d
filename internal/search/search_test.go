//
// FrankyGo - UCI chess engine in GO for learning purposes
//

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/kopparsynth/mailchess/internal/types"
)

func TestNewSearchIsIdle(t *testing.T) {
	s := NewSearch()
	assert.False(t, s.IsSearching())
}

func TestStartAndStopSearch(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	s := NewSearch()
	sl := NewSearchLimits()
	sl.Infinite = true
	s.StartSearch(b, *sl)
	assert.True(t, s.IsSearching())
	s.StopSearch()
	assert.False(t, s.IsSearching())
}

func TestNewGameClearsHistoryAndStopsSearch(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	s := NewSearch()
	sl := NewSearchLimits()
	sl.Infinite = true
	s.StartSearch(b, *sl)
	s.NewGame()
	assert.False(t, s.IsSearching())
}

func TestSetupTimeControlUsesFlatBudgetWithoutClock(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	s := NewSearch()
	sl := &Limits{TimeControl: true}
	d := s.setupTimeControl(b, sl)
	assert.Equal(t, 3000*time.Millisecond, d)
}

func TestSetupTimeControlFromRemainingTime(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	s := NewSearch()
	sl := &Limits{TimeControl: true, WhiteTime: 60 * time.Second, WhiteInc: 1 * time.Second}
	d := s.setupTimeControl(b, sl)
	assert.Equal(t, 60*time.Second/300+1*time.Second/10, d)
}

func TestSetupTimeControlRespectsExplicitMoveTime(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	s := NewSearch()
	sl := &Limits{TimeControl: true, MoveTime: 1500 * time.Millisecond}
	d := s.setupTimeControl(b, sl)
	assert.Equal(t, 1500*time.Millisecond, d)
}

func TestStatisticsTerminalDetection(t *testing.T) {
	b := mustParse(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - -")
	s := NewSearch()
	sl := NewSearchLimits()
	sl.Depth = 2
	s.StartSearch(b, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
}
