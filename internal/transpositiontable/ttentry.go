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

package transpositiontable

import (
	. "github.com/kopparsynth/mailchess/internal/types"
)

// TtEntry is the data structure for each entry in the transposition
// table. Move is stored as a full struct value rather than bit-packed
// into a uint16: the mailbox Move carries From/To/Team/PieceType/Info
// fields the teacher's bitboard move never needed, so this entry gives
// up the teacher's fixed 16-byte footprint for a directly comparable
// field instead of a second encode/decode step.
type TtEntry struct {
	key   Key
	move  Move
	eval  Value
	value Value
	vmeta uint16 // depth 7-bit, vtype 2-bit, age 3-bit
	// depth 7-bit 0-127
	// vtype 2-bit None, Exact, UpperBound, LowerBound
	// age 3-bit 0-7
}

const (
	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TtEntry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full Zobrist key stored for this slot, used to
// verify a hash-index match is an actual position match and not a
// collision.
func (e *TtEntry) Key() Key {
	return e.key
}

// Move returns the best move found for this position, or MoveNone.
func (e *TtEntry) Move() Move {
	return e.move
}

// Value returns the raw search score stored for this position. Mate
// scores were adjusted before storage (ValueToTT) to count their mate
// distance from the storing node rather than from the root, and must be
// converted back with ValueFromTT before use at the current ply.
func (e *TtEntry) Value() Value {
	return e.value
}

// Eval returns the static evaluation recorded alongside the search
// score.
func (e *TtEntry) Eval() Value {
	return e.eval
}

// Depth returns the search depth the stored value was computed at.
func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age returns how many searches have passed since this slot was last
// written or refreshed.
func (e *TtEntry) Age() int8 {
	return int8(e.vmeta & ageMask)
}

// Vtype reports whether Value is exact or a bound.
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.vmeta & vtypeMask) >> vtypeShift)
}
