package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/fen"
)

func mustParse(t *testing.T, f string) *board.Board {
	t.Helper()
	b, err := fen.Parse(f)
	assert.NoError(t, err)
	return b
}

func TestPerftStartPosition(t *testing.T) {
	b := mustParse(t, fen.StartFEN)
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		assert.Equal(t, c.nodes, Perft(b, c.depth), "depth %d", c.depth)
	}
}

func TestPerftStartPositionDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	b := mustParse(t, fen.StartFEN)
	assert.Equal(t, uint64(4865609), Perft(b, 5))
}

func TestPerftKiwipete(t *testing.T) {
	// the standard "kiwipete" position, exercising castling, en passant
	// and promotions all at once
	b := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, uint64(48), Perft(b, 1))
	assert.Equal(t, uint64(2039), Perft(b, 2))
	assert.Equal(t, uint64(97862), Perft(b, 3))
}

func TestPerftEndgamePosition(t *testing.T) {
	b := mustParse(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	assert.Equal(t, uint64(14), Perft(b, 1))
	assert.Equal(t, uint64(191), Perft(b, 2))
	assert.Equal(t, uint64(2812), Perft(b, 3))
}

func TestPerftPromotionHeavyPosition(t *testing.T) {
	b := mustParse(t, "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1")
	assert.Equal(t, uint64(24), Perft(b, 1))
	assert.Equal(t, uint64(496), Perft(b, 2))
	assert.Equal(t, uint64(9483), Perft(b, 3))
}

// TestPerftEnPassantRegression verifies en passant capture generation at
// depth 3 against a known node count.
func TestPerftEnPassantRegression(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/p1pppppp/8/1P6/8/8/1PPPPPPP/RNBQKBNR b - -")
	assert.Equal(t, uint64(11204), Perft(b, 3))
}

// TestPerftCastlingRegression verifies castling generation at depth 4
// against a known node count, with white missing its queenside knight,
// bishop and queen so queenside castling is open (kingside stays blocked).
func TestPerftCastlingRegression(t *testing.T) {
	b := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/R3KBNR w KQkq -")
	assert.Equal(t, uint64(236936), Perft(b, 4))
}

// TestPerftPromotionRegression verifies promotion generation at depth 3
// against a known node count.
func TestPerftPromotionRegression(t *testing.T) {
	b := mustParse(t, "8/5P2/8/8/8/7K/8/n6k w - -")
	assert.Equal(t, uint64(299), Perft(b, 3))
}
