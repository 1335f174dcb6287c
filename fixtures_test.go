package sdlrpc

var (
	testColors = NewStringCatalog("TestColor", "RED", "GREEN", "BLUE")
	testLevels = NewCatalog("TestLevel",
		Entry{Key: "LOW", Wire: 1},
		Entry{Key: "HIGH", Wire: 2},
	)
	testFunctions = NewCatalog(FunctionCatalog,
		Entry{Key: "Ping", Wire: 1},
		Entry{Key: "Pong", Wire: 2},
	)

	testCatalogs = NewCatalogSet(testColors, testLevels, testFunctions, MessageTypeCatalog)

	pointDesc = NewDescriptor("TestPoint",
		NumberField("x").Required(),
		NumberField("y").Required(),
		EnumField("color", "TestColor"),
	)

	shapeDesc = NewDescriptor("TestShape",
		StringField("name").Required(),
		BoolField("filled"),
		EnumField("level", "TestLevel"),
		StructField("origin", pointDesc),
		ArrayField("points", StructField("", pointDesc)),
		ArrayField("tags", StringField("")),
	)
)

func newTestCodec(opts ...CodecOption) *Codec {
	return NewCodec(testCatalogs, opts...)
}

func newPoint(c *Codec, x, y float64) *Struct {
	return c.NewStruct(pointDesc).
		MustSet("x", Number(x)).
		MustSet("y", Number(y))
}
