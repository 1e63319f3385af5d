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

// Package types holds the fundamental data representations shared across
// the engine: the mailbox geometry, square/piece/move encodings and
// centipawn values. None of these types allocate; they are small enough
// to be passed and stored by value.
package types

// Geometry constants for the 10x12 mailbox board. The playable 8x8 area
// is embedded with a two-row / one-column sentinel frame around it so
// that off-board detection during move generation is a single bounds-free
// array read instead of a file/rank range check.
const (
	Cols         = 10
	Rows         = 12
	BoardSize    = Cols * Rows
	PaddingRows  = 2
	PaddingCols  = 1
	PiecesPerTeam = 6
	MaxPieces    = 16 // per side, upper bound used for preallocation only
)

// Direction offsets expressed in terms of Cols so they stay correct if the
// geometry constants above ever change.
const (
	DirN  = -Cols
	DirS  = Cols
	DirE  = 1
	DirW  = -1
	DirNE = DirN + DirE
	DirNW = DirN + DirW
	DirSE = DirS + DirE
	DirSW = DirS + DirW
)

// KnightDeltas are the eight knight-move offsets on the 10-wide mailbox.
var KnightDeltas = [8]int{-21, -19, -12, -8, 8, 12, 19, 21}

// KingDeltas are the eight adjacent-square offsets.
var KingDeltas = [8]int{DirN, DirS, DirE, DirW, DirNE, DirNW, DirSE, DirSW}

// RookDirs / BishopDirs are the sliding-piece ray directions.
var RookDirs = [4]int{DirN, DirS, DirE, DirW}
var BishopDirs = [4]int{DirNE, DirNW, DirSE, DirSW}

// SquareAt returns the mailbox index for the given 0-based file (0=a..7=h)
// and 0-based rank (0=rank1..7=rank8).
func SquareAt(file, rank int) Square {
	return Square((rank+PaddingRows)*Cols + file + PaddingCols)
}

// FileOf / RankOf invert SquareAt. Only meaningful for on-board squares.
func FileOf(sq Square) int {
	return int(sq)%Cols - PaddingCols
}

func RankOf(sq Square) int {
	return int(sq)/Cols - PaddingRows
}

// PawnForward returns the single-step forward direction for a team: white
// advances toward higher ranks (toward the +row direction in this
// layout), black advances the other way.
func PawnForward(team Team) int {
	if team == White {
		return DirS
	}
	return DirN
}

// PawnHomeRank / PawnPromotionRank (0-based) depend on team.
func PawnHomeRank(team Team) int {
	if team == White {
		return 1
	}
	return 6
}

func PawnPromotionRank(team Team) int {
	if team == White {
		return 7
	}
	return 0
}
