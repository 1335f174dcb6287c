package enums

import "github.com/sdlgo/sdlrpc"

// FunctionID names the remote operation a message concerns.
type FunctionID string

// Function identifiers.
const (
	SubscribeVehicleData   FunctionID = "SubscribeVehicleData"
	GetVehicleData         FunctionID = "GetVehicleData"
	UnsubscribeVehicleData FunctionID = "UnsubscribeVehicleData"
	OnVehicleData          FunctionID = "OnVehicleData"
)

// FunctionIDCatalog maps function names to their protocol ids.
var FunctionIDCatalog = sdlrpc.RegisterCatalog(sdlrpc.NewCatalog(sdlrpc.FunctionCatalog,
	sdlrpc.Entry{Key: string(SubscribeVehicleData), Wire: 0x20},
	sdlrpc.Entry{Key: string(GetVehicleData), Wire: 0x21},
	sdlrpc.Entry{Key: string(UnsubscribeVehicleData), Wire: 0x22},
	sdlrpc.Entry{Key: string(OnVehicleData), Wire: 0x800A},
))

// Enum returns the symbolic value.
func (f FunctionID) Enum() sdlrpc.Enum {
	return FunctionIDCatalog.Enum(string(f))
}

// ID returns the protocol id.
func (f FunctionID) ID() int {
	v, _ := FunctionIDCatalog.ValueForKey(string(f))
	id, _ := v.(int64)
	return int(id)
}

// FunctionIDForValue returns the function with the given protocol id.
func FunctionIDForValue(id int) (FunctionID, bool) {
	key, ok := FunctionIDCatalog.KeyForValue(id)
	return FunctionID(key), ok
}
