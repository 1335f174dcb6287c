package sdlrpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogLookups(t *testing.T) {
	assert.Equal(t, "TestLevel", testLevels.Name())
	assert.Equal(t, []string{"LOW", "HIGH"}, testLevels.Keys())
	assert.True(t, testLevels.Has("LOW"))
	assert.False(t, testLevels.Has("MEDIUM"))

	wire, ok := testLevels.ValueForKey("HIGH")
	assert.True(t, ok)
	assert.Equal(t, int64(2), wire)

	for _, v := range []any{2, int32(2), uint8(2), float64(2), int64(2)} {
		key, ok := testLevels.KeyForValue(v)
		assert.True(t, ok, "%T", v)
		assert.Equal(t, "HIGH", key)
	}

	_, ok = testLevels.KeyForValue("HIGH")
	assert.False(t, ok, "keys are not wire values")
	_, ok = testLevels.KeyForValue(nil)
	assert.False(t, ok)
	_, ok = testLevels.KeyForValue([]any{1})
	assert.False(t, ok)
}

func TestCatalogEnum(t *testing.T) {
	assert.Equal(t, Enum{Catalog: "TestColor", Key: "RED"}, testColors.Enum("RED"))
	assert.Panics(t, func() { testColors.Enum("PURPLE") })
}

func TestCatalogDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		NewStringCatalog("Dup", "A", "A")
	})
	assert.Panics(t, func() {
		NewCatalog("Dup", Entry{Key: "A", Wire: 1}, Entry{Key: "B", Wire: 1.0})
	})
}

func TestCatalogSet(t *testing.T) {
	set := NewCatalogSet(testColors)
	assert.Same(t, testColors, set.Lookup("TestColor"))
	assert.Nil(t, set.Lookup("TestLevel"))

	wider := set.With(testLevels)
	assert.Equal(t, []string{"TestColor", "TestLevel"}, wider.Names())
	assert.Nil(t, set.Lookup("TestLevel"), "With must not modify the receiver")
}

func TestDefaultCatalogs(t *testing.T) {
	c := NewStringCatalog("TestDefaultOnly", "ONE")
	RegisterCatalog(c)
	RegisterCatalog(c)
	assert.Same(t, c, DefaultCatalogs().Lookup("TestDefaultOnly"))
	assert.Same(t, c, DefaultCodec().Catalogs().Lookup("TestDefaultOnly"))
	assert.NotNil(t, DefaultCatalogs().Lookup("MessageType"))

	assert.Panics(t, func() {
		RegisterCatalog(NewStringCatalog("TestDefaultOnly", "TWO"))
	})
}
