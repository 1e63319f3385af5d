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
	"github.com/kopparsynth/mailchess/internal/board"
	. "github.com/kopparsynth/mailchess/internal/types"
)

// see runs a static exchange evaluation for a capture on b: the net
// material gain for the side making move m once every attacker on the
// target square has, hypothetically, recaptured in increasing value
// order. It never mutates b -- recaptures are simulated by excluding
// already-"moved" squares from LeastValuableAttacker's ray walk, which
// is enough to reveal x-ray attacks behind a removed slider.
func see(b *board.Board, m Move) Value {
	if m.IsEnPassant() {
		// the move preceding an en passant capture is never itself a
		// capture, so there's no exchange chain to walk; the pawn taken
		// is simply gone.
		return PieceValue(Pawn)
	}

	to := m.To
	var gain [32]Value
	ply := 0

	capturedValue := ValueZero
	if code := b.At(to); code.IsPiece() {
		_, pt := DecodePiece(code)
		capturedValue = PieceValue(pt)
	}
	gain[ply] = capturedValue

	movedPieceType := m.PieceType
	if pt, ok := m.IsPromotion(); ok {
		movedPieceType = pt
	}
	attackerTeam := m.Team
	excluded := make([]Square, 0, 16)
	excluded = append(excluded, m.From)

	for {
		ply++
		attackerTeam = attackerTeam.Opponent()

		gain[ply] = PieceValue(movedPieceType) - gain[ply-1]
		if max(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		from, pt, ok := b.LeastValuableAttacker(to, attackerTeam, excluded)
		if !ok {
			break
		}
		excluded = append(excluded, from)
		movedPieceType = pt

		if ply >= len(gain)-1 {
			break
		}
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -max(-gain[ply-1], gain[ply])
		ply--
	}

	return gain[0]
}

func max(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
