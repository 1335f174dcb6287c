package sdlrpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructSetGet(t *testing.T) {
	c := newTestCodec()
	s := c.NewStruct(shapeDesc)
	assert.Same(t, shapeDesc, s.Descriptor())
	assert.Same(t, c, s.Codec())

	require.NoError(t, s.Set("name", String("square")))
	require.NoError(t, s.Set("filled", Bool(true)))
	require.NoError(t, s.Set("level", testLevels.Enum("HIGH")))
	require.NoError(t, s.Set("tags", List{String("a")}))

	assert.Equal(t, "square", *s.GetString("name"))
	assert.True(t, *s.GetBool("filled"))
	assert.Equal(t, testLevels.Enum("HIGH"), *s.GetEnum("level"))
	assert.Equal(t, List{String("a")}, s.GetList("tags"))
	assert.True(t, s.Has("name"))

	// Typed getters return nil for absent keys and for other kinds.
	assert.Nil(t, s.GetStruct("origin"))
	assert.Nil(t, s.GetNumber("name"))
	assert.Nil(t, s.GetList("points"))
}

func TestStructSetErrorsLeaveBagUntouched(t *testing.T) {
	c := newTestCodec()
	s := c.NewStruct(shapeDesc).MustSet("name", String("keep"))

	err := s.Set("name", Number(1))
	assert.ErrorIs(t, err, ErrShape)

	err = s.Set("bogus", Bool(true))
	assert.ErrorIs(t, err, ErrUnknownKey)

	err = s.Set("origin", c.NewStruct(shapeDesc))
	assert.ErrorIs(t, err, ErrShape)

	assert.Equal(t, []string{"name"}, s.Params().Keys())
	assert.Equal(t, String("keep"), s.Get("name"))

	assert.Panics(t, func() { s.MustSet("name", Bool(true)) })
}

func TestStructListsAreCopied(t *testing.T) {
	c := newTestCodec()
	s := c.NewStruct(shapeDesc)

	tags := List{String("a"), String("b")}
	require.NoError(t, s.Set("tags", tags))
	tags[0] = Number(1)
	assert.Equal(t, List{String("a"), String("b")}, s.GetList("tags"))

	got := s.GetList("tags")
	got[1] = Bool(true)
	assert.Equal(t, List{String("a"), String("b")}, s.GetList("tags"))

	assert.NotPanics(t, func() {
		assert.Equal(t, map[string]any{"tags": []any{"a", "b"}}, s.Parameters())
	})

	empty := List{}
	require.NoError(t, s.Set("tags", empty))
	assert.NotNil(t, s.GetList("tags"))
	assert.Empty(t, s.GetList("tags"))
}

func TestStructGetUnknownKeyPanics(t *testing.T) {
	s := newTestCodec().NewStruct(pointDesc)
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrUnknownKey)
	}()
	s.Get("z")
}

func TestStructMandatoryLeniency(t *testing.T) {
	s := newPoint(newTestCodec(), 1, 2)

	// Clearing a mandatory key is allowed and leaves it absent.
	require.NoError(t, s.Set("x", nil))
	assert.Nil(t, s.Get("x"))
	s.Clear("y")
	assert.Nil(t, s.GetNumber("y"))
	assert.Empty(t, s.Parameters())
}

func TestStructValidate(t *testing.T) {
	c := newTestCodec()
	s := c.NewStruct(shapeDesc).
		MustSet("origin", c.NewStruct(pointDesc).MustSet("x", Number(1))).
		MustSet("points", List{newPoint(c, 1, 1), c.NewStruct(pointDesc).MustSet("color", testColors.Enum("RED"))})

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingMandatory)

	var model *ErrorModel
	require.True(t, errors.As(err, &model))
	locations := []string{}
	for _, d := range model.Errors {
		locations = append(locations, d.Location)
	}
	assert.Equal(t, []string{"name", "origin.y", "points[1].x", "points[1].y"}, locations)

	s.MustSet("name", String("ok"))
	s.GetStruct("origin").MustSet("y", Number(0))
	s.MustSet("points", List{newPoint(c, 1, 1)})
	assert.NoError(t, s.Validate())
}

func TestStructParameters(t *testing.T) {
	c := newTestCodec()
	s := c.NewStruct(shapeDesc).
		MustSet("name", String("line")).
		MustSet("level", testLevels.Enum("LOW")).
		MustSet("origin", newPoint(c, 0, 0.5).MustSet("color", testColors.Enum("GREEN"))).
		MustSet("points", List{}).
		MustSet("tags", List{String("t")})

	assert.Equal(t, map[string]any{
		"name":   "line",
		"level":  int64(1),
		"origin": map[string]any{"x": int64(0), "y": 0.5, "color": "GREEN"},
		"points": []any{},
		"tags":   []any{"t"},
	}, s.Parameters())

	// Nested parameters match the nested struct's own wire form.
	assert.Equal(t, s.GetStruct("origin").Parameters(), s.Parameters()["origin"])
}

func TestStructEqualAndClone(t *testing.T) {
	c := newTestCodec()
	a := c.NewStruct(shapeDesc).MustSet("name", String("a")).MustSet("filled", Bool(false))
	b := c.NewStruct(shapeDesc).MustSet("filled", Bool(false)).MustSet("name", String("a"))
	assert.True(t, a.Equal(b))

	clone := a.Clone()
	assert.True(t, a.Equal(clone))
	clone.MustSet("name", String("changed"))
	assert.False(t, a.Equal(clone))

	other := NewDescriptor("TestShapeCopy", shapeDesc.Fields()...)
	assert.False(t, a.Equal(c.NewStruct(other).MustSet("name", String("a")).MustSet("filled", Bool(false))))

	var nilStruct *Struct
	assert.True(t, nilStruct.Equal(nil))
	assert.False(t, nilStruct.Equal(a))
	assert.Nil(t, nilStruct.Clone())
}

func TestStructJSON(t *testing.T) {
	c := newTestCodec()
	s := c.NewStruct(shapeDesc).MustSet("name", String("n")).MustSet("origin", newPoint(c, 1, 2))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "n", "origin": {"x": 1, "y": 2}}`, string(data))

	decoded := c.NewStruct(shapeDesc)
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.True(t, s.Equal(decoded))
}

func TestStructDecodeInto(t *testing.T) {
	c := newTestCodec()
	s := c.NewStruct(shapeDesc).
		MustSet("name", String("n")).
		MustSet("origin", newPoint(c, 3, 4).MustSet("color", testColors.Enum("BLUE"))).
		MustSet("tags", List{String("a"), String("b")})

	var out struct {
		Name   string `json:"name"`
		Origin struct {
			X     int    `json:"x"`
			Y     int    `json:"y"`
			Color string `json:"color"`
		} `json:"origin"`
		Tags []string `json:"tags"`
	}
	require.NoError(t, s.DecodeInto(&out))
	assert.Equal(t, "n", out.Name)
	assert.Equal(t, 3, out.Origin.X)
	assert.Equal(t, "BLUE", out.Origin.Color)
	assert.Equal(t, []string{"a", "b"}, out.Tags)
}

func TestEnumKey(t *testing.T) {
	type color string
	s := newPoint(newTestCodec(), 0, 0)
	assert.Nil(t, EnumKey[color](s, "color"))
	s.MustSet("color", testColors.Enum("RED"))
	assert.Equal(t, color("RED"), *EnumKey[color](s, "color"))
}

func TestStructGetInt(t *testing.T) {
	s := newPoint(newTestCodec(), 3, 2.5)
	assert.Equal(t, 3, *s.GetInt("x"))
	assert.Nil(t, s.GetInt("y"))
	assert.Equal(t, 2.5, *s.GetNumber("y"))
}
