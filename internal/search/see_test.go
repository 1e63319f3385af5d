/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kopparsynth/mailchess/internal/board"
	"github.com/kopparsynth/mailchess/internal/fen"
	. "github.com/kopparsynth/mailchess/internal/types"
)

func mustParse(t *testing.T, f string) *board.Board {
	t.Helper()
	b, err := fen.Parse(f)
	if err != nil {
		t.Fatalf("parsing %q: %v", f, err)
	}
	return b
}

// TestSeeUndefendedPawnCapture: no black piece defends d5, so the
// exchange ends after one capture and SEE is exactly a pawn's value.
func TestSeeUndefendedPawnCapture(t *testing.T) {
	b := mustParse(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - -")
	m := Move{From: MakeSquare("e4"), To: MakeSquare("d5"), Team: White, PieceType: Pawn, Capture: true}
	v := see(b, m)
	assert.Equal(t, PieceValue(Pawn), v)
}

// TestSeeWinningCapture: an undefended rook is free material.
func TestSeeWinningCapture(t *testing.T) {
	b := mustParse(t, "4k3/8/8/3r4/4R3/8/8/4K3 w - -")
	m := Move{From: MakeSquare("e4"), To: MakeSquare("d5"), Team: White, PieceType: Rook, Capture: true}
	v := see(b, m)
	assert.Equal(t, PieceValue(Rook), v)
}

// TestSeeEnPassant returns a flat pawn-value gain since no exchange
// chain applies to the vacated square.
func TestSeeEnPassant(t *testing.T) {
	b := mustParse(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6")
	m := Move{From: MakeSquare("e5"), To: MakeSquare("d6"), Team: White, PieceType: Pawn, Capture: true, Info: PawnEnPassant}
	v := see(b, m)
	assert.Equal(t, PieceValue(Pawn), v)
}

// TestSeeQueenTradesDown: queen takes a defended knight; the exchange
// should net a clear loss for the side giving up the queen.
func TestSeeQueenTradesDown(t *testing.T) {
	b := mustParse(t, "4k3/8/2p5/3n4/8/8/8/3QK3 w - -")
	m := Move{From: MakeSquare("d1"), To: MakeSquare("d5"), Team: White, PieceType: Queen, Capture: true}
	v := see(b, m)
	assert.Less(t, int(v), 0)
}
