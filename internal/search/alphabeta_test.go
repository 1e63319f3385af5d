//
// FrankyGo - UCI chess engine in GO for learning purposes
//

package search

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kopparsynth/mailchess/internal/fen"
	"github.com/kopparsynth/mailchess/internal/movegen"
	"github.com/kopparsynth/mailchess/internal/moveslice"
	"github.com/kopparsynth/mailchess/internal/movetext"
	. "github.com/kopparsynth/mailchess/internal/types"
)

// TestMateInOneFound verifies the search reports a mate score and the
// mating move from a trivial mate-in-1 position.
func TestMateInOneFound(t *testing.T) {
	b := mustParse(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - -")
	s := NewSearch()
	sl := NewSearchLimits()
	sl.MoveTime = 500 * time.Millisecond
	sl.TimeControl = true
	s.StartSearch(b, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.True(t, result.BestValue.IsMateScore())
}

// TestSearchReturnsLegalMoveUnderTimePressure checks that a very short
// search still returns a legal move rather than MoveNone.
func TestSearchReturnsLegalMoveUnderTimePressure(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	s := NewSearch()
	sl := NewSearchLimits()
	sl.MoveTime = 200 * time.Millisecond
	sl.TimeControl = true
	s.StartSearch(b, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
}

// TestSearchRespectsDepthLimitAndReturnsMove runs a depth-limited
// search and checks the reported depth does not exceed the limit and a
// best move came out of it.
func TestSearchRespectsDepthLimitAndReturnsMove(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	s := NewSearch()
	sl := NewSearchLimits()
	sl.Depth = 4
	s.StartSearch(b, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.LessOrEqual(t, result.SearchDepth, 4)
	assert.NotEqual(t, MoveNone, result.BestMove)
}

// TestSearchFindsPromotion checks that a position where promoting is
// the only winning try actually produces a promoting best move.
func TestSearchFindsPromotion(t *testing.T) {
	b := mustParse(t, "8/P6k/8/8/8/8/7p/7K w - -")
	s := NewSearch()
	sl := NewSearchLimits()
	sl.Depth = 6
	s.StartSearch(b, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	_, isPromo := result.BestMove.IsPromotion()
	assert.True(t, isPromo, "expected a promoting best move, got %s", result.BestMove.StringUci())
}

// TestSearchDoesNotMisdetectEnPassant is a regression test against
// confusing a double pawn push with a capture when checking whether en
// passant is available one ply later. After d2d4 d7d5 c2c4 c7c6 b1c3
// g8f6 e2e3 g7g6 f1e2 b8d7 b2b4 f6e4 c3e4 d5e4, black's last move
// (d5e4) was a capture, not a double pawn push, so no en passant
// capture should be on offer for white even though a pawn just landed
// on e4 next to white's d4 pawn.
func TestSearchDoesNotMisdetectEnPassant(t *testing.T) {
	b, err := fen.Parse(fen.StartFEN)
	assert.NoError(t, err)
	for _, mv := range strings.Fields("d2d4 d7d5 c2c4 c7c6 b1c3 g8f6 e2e3 g7g6 f1e2 b8d7 b2b4 f6e4 c3e4 d5e4") {
		m, ok := movetext.Decode(b, mv)
		assert.True(t, ok, "move %q should be legal", mv)
		b.Make(m)
	}
	assert.Equal(t, SqNone, b.EnPassantTarget())

	legal := moveslice.NewMoveSlice(64)
	movegen.GenerateLegal(b, movegen.All, legal)
	for i := 0; i < legal.Len(); i++ {
		assert.False(t, legal.At(i).IsEnPassant(), "en passant should not be available after %s", legal.At(i).StringUci())
	}

	s := NewSearch()
	sl := NewSearchLimits()
	sl.Depth = 3
	s.StartSearch(b, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.False(t, result.BestMove.IsEnPassant())
}
