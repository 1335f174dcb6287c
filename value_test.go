package sdlrpc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAbsent(t *testing.T) {
	assert.True(t, IsAbsent(nil))
	assert.True(t, IsAbsent((*Struct)(nil)))
	assert.True(t, IsAbsent(List(nil)))
	assert.False(t, IsAbsent(List{}))
	assert.False(t, IsAbsent(Bool(false)))
	assert.False(t, IsAbsent(String("")))
	assert.False(t, IsAbsent(Number(0)))
}

func TestStructValue(t *testing.T) {
	assert.Nil(t, StructValue(nil))
	s := newTestCodec().NewStruct(pointDesc)
	assert.Equal(t, s, StructValue(s))
}

func TestNumberInt(t *testing.T) {
	for _, item := range []struct {
		n  Number
		i  int
		ok bool
	}{
		{Number(3), 3, true},
		{Number(-4), -4, true},
		{Number(2.5), 0, false},
		{Number(math.Inf(1)), 0, false},
		{Number(math.NaN()), 0, false},
		{Number(math.Pow(2, 63)), 0, false},
		{Number(-math.Pow(2, 64)), 0, false},
	} {
		i, ok := item.n.Int()
		assert.Equal(t, item.ok, ok, "%v", item.n)
		assert.Equal(t, item.i, i)
	}
}

func TestEqual(t *testing.T) {
	c := newTestCodec()
	assert.True(t, Equal(nil, List(nil)))
	assert.False(t, Equal(nil, List{}))
	assert.True(t, Equal(Enum{"TestColor", "RED"}, Enum{"TestColor", "RED"}))
	assert.False(t, Equal(Enum{"TestColor", "RED"}, Enum{"Other", "RED"}))
	assert.False(t, Equal(Number(1), String("1")))
	assert.True(t, Equal(newPoint(c, 1, 2), newPoint(c, 1, 2)))
	assert.False(t, Equal(newPoint(c, 1, 2), newPoint(c, 2, 1)))
	assert.True(t, Equal(List{newPoint(c, 1, 2)}, List{newPoint(c, 1, 2)}))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, "TestColor.RED", Enum{"TestColor", "RED"}.String())
}
