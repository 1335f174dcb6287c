package structs

import (
	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
)

// VehicleDataResultDescriptor declares VehicleDataResult.
var VehicleDataResultDescriptor = sdlrpc.Declare("VehicleDataResult",
	sdlrpc.EnumField(KeyDataType, "VehicleDataType").Required(),
	sdlrpc.EnumField(KeyResultCode, "VehicleDataResultCode").Required(),
	sdlrpc.StringField(KeyOEMCustomDataType),
)

// VehicleDataResult is the outcome of subscribing to or unsubscribing from
// one vehicle data item.
type VehicleDataResult struct {
	*sdlrpc.Struct
}

// NewVehicleDataResult creates an empty VehicleDataResult.
func NewVehicleDataResult() *VehicleDataResult {
	return &VehicleDataResult{sdlrpc.NewStruct(VehicleDataResultDescriptor)}
}

// AsVehicleDataResult wraps s, returning nil for a nil s.
func AsVehicleDataResult(s *sdlrpc.Struct) *VehicleDataResult {
	if s == nil {
		return nil
	}
	return &VehicleDataResult{s}
}

// Unwrap returns the underlying struct, or nil for a nil receiver.
func (r *VehicleDataResult) Unwrap() *sdlrpc.Struct {
	if r == nil {
		return nil
	}
	return r.Struct
}

// SetDataType sets `dataType`.
func (r *VehicleDataResult) SetDataType(v enums.VehicleDataType) *VehicleDataResult {
	r.MustSet(KeyDataType, v.Enum())
	return r
}

// DataType returns `dataType`, or nil when absent.
func (r *VehicleDataResult) DataType() *enums.VehicleDataType {
	return sdlrpc.EnumKey[enums.VehicleDataType](r.Struct, KeyDataType)
}

// SetResultCode sets `resultCode`.
func (r *VehicleDataResult) SetResultCode(v enums.VehicleDataResultCode) *VehicleDataResult {
	r.MustSet(KeyResultCode, v.Enum())
	return r
}

// ResultCode returns `resultCode`, or nil when absent.
func (r *VehicleDataResult) ResultCode() *enums.VehicleDataResultCode {
	return sdlrpc.EnumKey[enums.VehicleDataResultCode](r.Struct, KeyResultCode)
}

// SetOEMCustomDataType sets the OEM specific type of a custom data item.
func (r *VehicleDataResult) SetOEMCustomDataType(v string) *VehicleDataResult {
	r.MustSet(KeyOEMCustomDataType, sdlrpc.String(v))
	return r
}

// OEMCustomDataType returns `oemCustomDataType`, or nil when absent.
func (r *VehicleDataResult) OEMCustomDataType() *string {
	return r.GetString(KeyOEMCustomDataType)
}
