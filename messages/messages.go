// Package messages declares the vehicle data RPC messages. Each type wraps
// an *sdlrpc.Message and adds typed accessors on its payload; getters return
// nil when a value is absent and setters return the receiver.
package messages

import (
	"fmt"
	"sort"

	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
	"github.com/sdlgo/sdlrpc/structs"
)

// Parameter keys.
const (
	KeySuccess                 = "success"
	KeyResultCode              = "resultCode"
	KeyInfo                    = "info"
	KeyGearStatus              = "gearStatus"
	KeyPRNDL                   = "prndl"
	KeySpeed                   = "speed"
	KeyRPM                     = "rpm"
	KeyStabilityControlsStatus = "stabilityControlsStatus"
	KeyWindowStatus            = "windowStatus"
)

var dataKeys = []string{
	KeyGearStatus,
	KeyPRNDL,
	KeySpeed,
	KeyRPM,
	KeyStabilityControlsStatus,
	KeyWindowStatus,
}

// Requests flag each wanted item with a boolean.
func vehicleDataRequestFields() []sdlrpc.Field {
	fields := make([]sdlrpc.Field, len(dataKeys))
	for i, key := range dataKeys {
		fields[i] = sdlrpc.BoolField(key)
	}
	return fields
}

func resultFields() []sdlrpc.Field {
	return []sdlrpc.Field{
		sdlrpc.BoolField(KeySuccess).Required(),
		sdlrpc.EnumField(KeyResultCode, "Result").Required(),
		sdlrpc.StringField(KeyInfo),
	}
}

func vehicleDataFields() []sdlrpc.Field {
	return []sdlrpc.Field{
		sdlrpc.StructField(KeyGearStatus, structs.GearStatusDescriptor),
		sdlrpc.EnumField(KeyPRNDL, "PRNDL"),
		sdlrpc.NumberField(KeySpeed),
		sdlrpc.NumberField(KeyRPM),
		sdlrpc.StructField(KeyStabilityControlsStatus, structs.StabilityControlsStatusDescriptor),
		sdlrpc.ArrayField(KeyWindowStatus, sdlrpc.StructField("", structs.WindowStatusDescriptor)),
	}
}

func vehicleDataResponseFields() []sdlrpc.Field {
	return append(resultFields(), vehicleDataFields()...)
}

// Subscription responses report one VehicleDataResult per item.
func subscriptionResponseFields() []sdlrpc.Field {
	fields := resultFields()
	for _, key := range dataKeys {
		fields = append(fields, sdlrpc.StructField(key, structs.VehicleDataResultDescriptor))
	}
	return fields
}

func windowStatusList(v []*structs.WindowStatus) sdlrpc.Value {
	if v == nil {
		return nil
	}
	out := make(sdlrpc.List, 0, len(v))
	for _, item := range v {
		if s := item.Unwrap(); s != nil {
			out = append(out, s)
		}
	}
	return out
}

func windowStatusSlice(l sdlrpc.List) []*structs.WindowStatus {
	if l == nil {
		return nil
	}
	out := make([]*structs.WindowStatus, 0, len(l))
	for _, item := range l {
		if s, ok := item.(*sdlrpc.Struct); ok {
			out = append(out, structs.AsWindowStatus(s))
		}
	}
	return out
}

// Route is a function and message type pair that has a concrete message.
type Route struct {
	Function enums.FunctionID
	Type     sdlrpc.MessageType
}

var constructors = map[Route]func(*sdlrpc.Codec) sdlrpc.RPC{
	{enums.GetVehicleData, sdlrpc.Request}:          func(c *sdlrpc.Codec) sdlrpc.RPC { return newGetVehicleData(c) },
	{enums.GetVehicleData, sdlrpc.Response}:         func(c *sdlrpc.Codec) sdlrpc.RPC { return newGetVehicleDataResponse(c) },
	{enums.SubscribeVehicleData, sdlrpc.Request}:    func(c *sdlrpc.Codec) sdlrpc.RPC { return newSubscribeVehicleData(c) },
	{enums.SubscribeVehicleData, sdlrpc.Response}:   func(c *sdlrpc.Codec) sdlrpc.RPC { return newSubscribeVehicleDataResponse(c) },
	{enums.UnsubscribeVehicleData, sdlrpc.Request}:  func(c *sdlrpc.Codec) sdlrpc.RPC { return newUnsubscribeVehicleData(c) },
	{enums.UnsubscribeVehicleData, sdlrpc.Response}: func(c *sdlrpc.Codec) sdlrpc.RPC { return newUnsubscribeVehicleDataResponse(c) },
	{enums.OnVehicleData, sdlrpc.Notification}:      func(c *sdlrpc.Codec) sdlrpc.RPC { return newOnVehicleData(c) },
}

// Routes lists every pair New accepts, ordered by function then type.
func Routes() []Route {
	out := make([]Route, 0, len(constructors))
	for r := range constructors {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Function != out[j].Function {
			return out[i].Function < out[j].Function
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// New creates an empty message of the concrete type for a function and
// message type, using sdlrpc.DefaultCodec.
func New(fn enums.FunctionID, typ sdlrpc.MessageType) (sdlrpc.RPC, error) {
	return NewWith(sdlrpc.DefaultCodec(), fn, typ)
}

// NewWith is like New but binds the message to c.
func NewWith(c *sdlrpc.Codec, fn enums.FunctionID, typ sdlrpc.MessageType) (sdlrpc.RPC, error) {
	ctor, ok := constructors[Route{fn, typ}]
	if !ok {
		return nil, fmt.Errorf("no %s message for function %s", typ, fn)
	}
	return ctor(c), nil
}

// Decode reads the envelope of a wire tree, creates the matching concrete
// message and decodes the tree into it.
func Decode(tree any) (sdlrpc.RPC, error) {
	return DecodeWith(sdlrpc.DefaultCodec(), tree)
}

// DecodeWith is like Decode but binds the message to c.
func DecodeWith(c *sdlrpc.Codec, tree any) (sdlrpc.RPC, error) {
	typ, name, err := sdlrpc.PeekEnvelope(tree, c.Catalogs())
	if err != nil {
		return nil, err
	}
	m, err := NewWith(c, enums.FunctionID(name), typ)
	if err != nil {
		return nil, err
	}
	if err := m.RPCMessage().FromWireForm(tree); err != nil {
		return nil, err
	}
	return m, nil
}
