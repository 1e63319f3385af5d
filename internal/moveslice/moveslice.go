//
// FrankyGo - UCI chess engine in GO for learning purposes
//

// Package moveslice provides helper functionality for slices of Move.
package moveslice

import (
	"strings"

	. "github.com/kopparsynth/mailchess/internal/types"
)

// MoveSlice represents a data structure (go slice) for Move.
type MoveSlice []Move

// NewMoveSlice creates a new move slice with the given capacity
// and 0 elements.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends an element at the end of the slice.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i. Panics if out of bounds.
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Set overwrites the move at index i. Panics if out of bounds.
func (ms *MoveSlice) Set(i int, m Move) {
	(*ms)[i] = m
}

// Clear removes all moves but retains capacity, useful when a slice is
// reused at high frequency (one per ply, across many search nodes) to
// avoid churning the garbage collector.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone performs a deep copy into a newly allocated MoveSlice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Contains reports whether m is present anywhere in the slice.
func (ms *MoveSlice) Contains(m Move) bool {
	for _, x := range *ms {
		if x == m {
			return true
		}
	}
	return false
}

// Filter rebuilds the slice in place keeping only elements for which f
// returns true, reusing the underlying array.
func (ms *MoveSlice) Filter(f func(m Move) bool) {
	b := (*ms)[:0]
	for _, x := range *ms {
		if f(x) {
			b = append(b, x)
		}
	}
	*ms = b
}

// String renders the slice for debug logging.
func (ms *MoveSlice) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(m.String())
	}
	sb.WriteString(" ]")
	return sb.String()
}

// StringUci renders the slice as a space separated UCI move list.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}
