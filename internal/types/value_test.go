package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "0", ValueZero.String())
	assert.Equal(t, "15", Value(150).String())
	assert.Equal(t, "-15", Value(-150).String())
}

func TestMateScoreIsRecognised(t *testing.T) {
	v := MateScore(3)
	assert.True(t, v.IsMateScore())
	negated := -v
	assert.True(t, negated.IsMateScore())
}

func TestShorterMateScoresHigherForTheMatingSide(t *testing.T) {
	// MateScore(ply) is from the perspective of the side being mated;
	// negating it (as the parent node does) must prefer smaller ply.
	shallow := -MateScore(1)
	deep := -MateScore(5)
	assert.Greater(t, int(shallow), int(deep))
}

func TestNonMateValueIsNotCheckmate(t *testing.T) {
	assert.False(t, Value(500).IsMateScore())
}
