// Package enums declares the closed value sets used by the vehicle data
// messages. Importing it registers every catalog with sdlrpc so that
// sdlrpc.DefaultCodec can resolve them.
package enums

import "github.com/sdlgo/sdlrpc"

// Catalogs returns the catalogs declared by this package, for injecting into
// a codec built with sdlrpc.NewCodec.
func Catalogs() sdlrpc.CatalogSet {
	return sdlrpc.NewCatalogSet(
		FunctionIDCatalog,
		sdlrpc.MessageTypeCatalog,
		ResultCatalog,
		VehicleDataTypeCatalog,
		VehicleDataResultCodeCatalog,
		VehicleDataStatusCatalog,
		PRNDLCatalog,
		TransmissionTypeCatalog,
	)
}

func stringCatalog[T ~string](name string, values ...T) *sdlrpc.Catalog {
	keys := make([]string, len(values))
	for i, v := range values {
		keys[i] = string(v)
	}
	return sdlrpc.RegisterCatalog(sdlrpc.NewStringCatalog(name, keys...))
}
