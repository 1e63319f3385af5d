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

package search

import (
	"math"

	"github.com/kopparsynth/mailchess/internal/config"
	"github.com/kopparsynth/mailchess/internal/types"
)

// This file contains data structures and functions to support the search
// with static or pre-computed parameters -- mostly ones too complex to be
// part of the plain toggle/tunable search configuration.

// lmr is a lookup table for late move reductions in the dimensions
// depth and moves searched.
var lmr [32][64]int

// LmrReduction returns the search depth reduction for LMR depending on
// depth and moves searched.
func LmrReduction(depth int, movesSearched int) int {
	if depth >= 32 || movesSearched >= 64 {
		return lmr[31][63]
	}
	return lmr[depth][movesSearched]
}

func init() {
	for i := 0; i < 32; i++ {
		for j := 0; j < 64; j++ {
			switch {
			case i <= 3:
				lmr[i][j] = 1
			case j <= 3:
				lmr[i][j] = 1
			default:
				lmr[i][j] = int(math.Round(((float64(i) * 0.7) * (float64(j) * 0.005)) + 1.0))
			}
		}
	}
}

// lmp is indexed by depth-left and returns how many quiet moves may be
// searched before late move pruning skips the rest.
var lmp [16]int

func init() {
	for i := 1; i < 16; i++ {
		lmp[i] = 6 + int(math.Pow(float64(i)+0.5, 1.3))
	}
}

// LmpMovesSearched returns a depth-dependent move count threshold for
// late move pruning.
func LmpMovesSearched(depth int) int {
	if depth >= 16 {
		return lmp[15]
	}
	if depth < 0 {
		return lmp[0]
	}
	return lmp[depth]
}

// FutilityMargin returns the futility pruning margin for the given
// depth-left: depth*1000+1000, in internal 10x-centipawn units.
func FutilityMargin(depth int) types.Value {
	if depth < 0 {
		depth = 0
	}
	return types.Value(depth*1000 + 1000)
}

// ReverseFutilityMargin returns the reverse futility pruning margin for
// the given depth-left: RfpMarginPerPly*depth, in internal
// 10x-centipawn units.
func ReverseFutilityMargin(depth int) types.Value {
	if depth < 0 {
		depth = 0
	}
	return types.Value(depth * config.Settings.Search.RfpMarginPerPly)
}

// aspirationSteps are the successive window widenings tried after an
// aspiration-window search fails high or low.
var aspirationSteps = []types.Value{500, 2000, types.MaxScore}
