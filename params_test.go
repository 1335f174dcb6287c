package sdlrpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsSetGet(t *testing.T) {
	p := NewParams()
	p.Set("a", Bool(true))
	p.Set("b", Number(2))
	p.Set("c", String("three"))

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
	assert.Equal(t, Bool(true), p.Get("a"))
	assert.Nil(t, p.Get("missing"))
	assert.False(t, p.Has("missing"))

	// Overwriting keeps the original position.
	p.Set("a", Bool(false))
	assert.Equal(t, []string{"a", "b", "c"}, p.Keys())
	assert.Equal(t, Bool(false), p.Get("a"))
}

func TestParamsNullMeansDelete(t *testing.T) {
	for _, absent := range []Value{nil, (*Struct)(nil), List(nil)} {
		p := NewParams()
		p.Set("k", String("v"))
		p.Set("k", absent)
		assert.False(t, p.Has("k"))
		assert.Zero(t, p.Len())
		assert.True(t, p.Equal(NewParams()), "cleared bag must equal a fresh one")
	}

	p := NewParams()
	p.Set("never", nil)
	assert.Zero(t, p.Len())

	// An empty list is a value, not absence.
	p.Set("list", List{})
	assert.True(t, p.Has("list"))
}

func TestParamsRemove(t *testing.T) {
	p := NewParams()
	p.Set("a", Bool(true))
	p.Set("b", Bool(true))
	p.Remove("a")
	p.Remove("missing")
	assert.Equal(t, []string{"b"}, p.Keys())
}

func TestParamsEqualIgnoresOrder(t *testing.T) {
	a := NewParams()
	a.Set("x", Number(1))
	a.Set("y", List{String("a"), String("b")})

	b := NewParams()
	b.Set("y", List{String("a"), String("b")})
	b.Set("x", Number(1))

	assert.True(t, a.Equal(b))

	b.Set("y", List{String("b"), String("a")})
	assert.False(t, a.Equal(b), "list order matters")

	b.Set("y", List{String("a"), String("b")})
	b.Set("z", Bool(false))
	assert.False(t, a.Equal(b))
}

func TestParamsCloneIsDeep(t *testing.T) {
	c := newTestCodec()
	p := NewParams()
	p.Set("origin", newPoint(c, 1, 2))

	clone := p.Clone()
	assert.True(t, p.Equal(clone))

	p.Get("origin").(*Struct).MustSet("x", Number(9))
	assert.False(t, p.Equal(clone))
	assert.Equal(t, Number(1), clone.Get("origin").(*Struct).Get("x"))
}

func TestParamsRange(t *testing.T) {
	p := NewParams()
	p.Set("a", Number(1))
	p.Set("b", Number(2))
	p.Set("c", Number(3))

	seen := []string{}
	p.Range(func(key string, v Value) bool {
		seen = append(seen, key)
		return key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestNilParams(t *testing.T) {
	var p *Params
	assert.Nil(t, p.Get("a"))
	assert.False(t, p.Has("a"))
	assert.Zero(t, p.Len())
	assert.Nil(t, p.Keys())
}

func TestParamsZeroValue(t *testing.T) {
	var p Params
	p.Remove("a")
	p.Set("a", String("x"))
	p.Set("b", nil)

	assert.Equal(t, String("x"), p.Get("a"))
	assert.Equal(t, []string{"a"}, p.Keys())

	other := NewParams()
	other.Set("a", String("x"))
	assert.True(t, p.Equal(other))
}
