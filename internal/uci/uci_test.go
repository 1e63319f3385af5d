//
// FrankyGo - UCI chess engine in GO for learning purposes
//

package uci

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopparsynth/mailchess/internal/config"
	. "github.com/kopparsynth/mailchess/internal/types"
)

func newTestHandler() *UciHandler {
	u := NewUciHandler()
	u.OutIo = &bytes.Buffer{}
	return u
}

func TestUciCommandReportsHandshake(t *testing.T) {
	u := newTestHandler()
	u.Command("uci")
	out := u.OutIo.(*bytes.Buffer).String()
	assert.Contains(t, out, "id name")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	u := newTestHandler()
	u.Command("isready")
	out := u.OutIo.(*bytes.Buffer).String()
	assert.Contains(t, out, "readyok")
}

func TestPositionStartposThenMoves(t *testing.T) {
	u := newTestHandler()
	u.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, White, u.myBoard.MovingTeam())
}

func TestPositionFen(t *testing.T) {
	u := newTestHandler()
	u.Command("position fen 8/8/8/8/8/8/8/K6k w - - 0 1")
	assert.Equal(t, White, u.myBoard.MovingTeam())
}

func TestQuitStopsTheLoop(t *testing.T) {
	u := newTestHandler()
	assert.False(t, u.Command("quit"))
}

func TestGoDepthProducesBestMove(t *testing.T) {
	u := newTestHandler()
	u.Command("position startpos")
	u.Command("go depth 2")
	u.mySearch.WaitWhileSearching()
	out := u.OutIo.(*bytes.Buffer).String()
	assert.Contains(t, out, "bestmove")
}

func TestPerftReportsNodeCount(t *testing.T) {
	u := newTestHandler()
	u.Command("position startpos")
	u.Command("perft 2")
	out := u.OutIo.(*bytes.Buffer).String()
	assert.Contains(t, out, "perft depth 2")
}

func TestSetOptionUpdatesSearchToggle(t *testing.T) {
	u := newTestHandler()
	u.Command("setoption name Use_NullMove value false")
	opt, ok := uciOptions["Use_NullMove"]
	assert.True(t, ok)
	assert.Equal(t, "false", opt.CurrentValue)
	assert.False(t, config.Settings.Search.UseNullMove)
}
