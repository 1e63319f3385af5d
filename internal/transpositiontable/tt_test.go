//
// FrankyGo - UCI chess engine in GO for learning purposes
//

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopparsynth/mailchess/internal/types"
)

func testMove() Move {
	return Move{From: MakeSquare("e2"), To: MakeSquare("e4"), Team: White, PieceType: Pawn, Info: PawnDouble}
}

func TestNewTtTable(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(65_536), tt.maxNumberOfEntries)
	assert.Equal(t, 65_536, cap(tt.data))
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(4)
	m := testMove()
	key := Key(12345)

	assert.Nil(t, tt.GetEntry(key))
	assert.Nil(t, tt.Probe(key))

	tt.Put(key, m, 5, Value(150), ValueExact, Value(140))

	e := tt.GetEntry(key)
	assert.NotNil(t, e)
	assert.Equal(t, key, e.Key())
	assert.Equal(t, m, e.Move())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, ValueExact, e.Vtype())
	assert.EqualValues(t, 1, e.Age())

	// Probe decreases age
	e = tt.Probe(key)
	assert.EqualValues(t, 0, e.Age())
	e = tt.Probe(key)
	assert.EqualValues(t, 0, e.Age())
}

func TestPutUpdateSamePosition(t *testing.T) {
	tt := NewTtTable(4)
	m := testMove()
	key := Key(111)

	tt.Put(key, m, 4, Value(100), ValueLowerBound, Value(90))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)

	tt.Put(key, m, 6, Value(120), ValueExact, Value(90))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)

	e := tt.Probe(key)
	assert.EqualValues(t, 6, e.Depth())
	assert.Equal(t, ValueExact, e.Vtype())
	assert.EqualValues(t, 120, e.Value())
}

func TestPutCollision(t *testing.T) {
	tt := NewTtTable(1)
	m := testMove()
	key := Key(7)
	other := Key(7 + tt.maxNumberOfEntries)

	tt.Put(key, m, 8, Value(50), ValueExact, Value(50))
	tt.Put(other, m, 2, Value(10), ValueExact, Value(10))

	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	// lower depth must not overwrite
	assert.Nil(t, tt.Probe(other))
	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.EqualValues(t, key, e.Key())
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	m := testMove()
	key := Key(99)
	tt.Put(key, m, 3, Value(20), ValueExact, Value(20))
	assert.EqualValues(t, 1, tt.Len())

	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(key))
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	m := testMove()
	tt.Put(Key(1), m, 1, Value(1), ValueExact, Value(1))
	assert.Greater(t, tt.Hashfull(), 0)
}

func TestValueToFromTT(t *testing.T) {
	mate := MateScore(3) // mated 3 ply from the root
	stored := ValueToTT(mate, 5)
	// reading it back at the same ply restores the original score
	back := ValueFromTT(stored, 5)
	assert.Equal(t, mate, back)

	// a non-mate score passes through untouched
	normal := Value(123)
	assert.Equal(t, normal, ValueToTT(normal, 5))
	assert.Equal(t, normal, ValueFromTT(normal, 5))
}

func TestZeroSizeTTDoesNotPanic(t *testing.T) {
	tt := NewTtTable(0)
	m := testMove()
	assert.NotPanics(t, func() {
		tt.Put(Key(1), m, 1, Value(1), ValueExact, Value(1))
		tt.Probe(Key(1))
		tt.GetEntry(Key(1))
	})
}
