// Package cbor provides a CBOR format for sdlrpc wire trees. Importing this
// package adds CBOR support to `sdlrpc.DefaultFormats`.
package cbor

import (
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/sdlgo/sdlrpc"
)

// Canonical encoding so equal trees produce equal bytes. Wire trees hold only
// scalars, mappings and arrays, so no time options are set.
var cborEncMode, _ = cbor.EncOptions{
	Sort:          cbor.SortCanonical,
	ShortestFloat: cbor.ShortestFloat16,
	NaNConvert:    cbor.NaNConvert7e00,
	InfConvert:    cbor.InfConvertFloat16,
	IndefLength:   cbor.IndefLengthForbidden,
}.EncMode()

// DefaultCBORFormat is the CBOR format. Importing this package registers it
// as `cbor` and `application/cbor`. Decoded maps are interface-keyed; the
// sdlrpc decoders normalize them.
var DefaultCBORFormat = sdlrpc.Format{
	Marshal: func(w io.Writer, v any) error {
		return cborEncMode.NewEncoder(w).Encode(v)
	},
	Unmarshal: cbor.Unmarshal,
}

func init() {
	sdlrpc.DefaultFormats["application/cbor"] = DefaultCBORFormat
	sdlrpc.DefaultFormats["cbor"] = DefaultCBORFormat
}
