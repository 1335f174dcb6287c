package messages

import (
	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
	"github.com/sdlgo/sdlrpc/structs"
)

// SubscribeVehicleDataDescriptor declares the SubscribeVehicleData payload.
var SubscribeVehicleDataDescriptor = sdlrpc.Declare("SubscribeVehicleData", vehicleDataRequestFields()...)

// SubscribeVehicleData subscribes to periodic OnVehicleData notifications for the flagged items.
type SubscribeVehicleData struct {
	*sdlrpc.Message
}

// NewSubscribeVehicleData creates an empty SubscribeVehicleData request.
func NewSubscribeVehicleData() *SubscribeVehicleData {
	return newSubscribeVehicleData(sdlrpc.DefaultCodec())
}

func newSubscribeVehicleData(c *sdlrpc.Codec) *SubscribeVehicleData {
	return &SubscribeVehicleData{c.NewMessage(sdlrpc.Request, enums.SubscribeVehicleData.Enum(), SubscribeVehicleDataDescriptor)}
}

// SetCorrelationID sets the correlation id.
func (m *SubscribeVehicleData) SetCorrelationID(id int) *SubscribeVehicleData {
	m.Message.SetCorrelationID(id)
	return m
}

// SetGearStatus asks for `gearStatus` when v is true.
func (m *SubscribeVehicleData) SetGearStatus(v bool) *SubscribeVehicleData {
	m.Parameters().MustSet(KeyGearStatus, sdlrpc.Bool(v))
	return m
}

// GearStatus reports whether `gearStatus` is asked for, or nil when unset.
func (m *SubscribeVehicleData) GearStatus() *bool {
	return m.Parameters().GetBool(KeyGearStatus)
}

// SetPRNDL asks for `prndl` when v is true.
func (m *SubscribeVehicleData) SetPRNDL(v bool) *SubscribeVehicleData {
	m.Parameters().MustSet(KeyPRNDL, sdlrpc.Bool(v))
	return m
}

// PRNDL reports whether `prndl` is asked for, or nil when unset.
func (m *SubscribeVehicleData) PRNDL() *bool {
	return m.Parameters().GetBool(KeyPRNDL)
}

// SetSpeed asks for `speed` when v is true.
func (m *SubscribeVehicleData) SetSpeed(v bool) *SubscribeVehicleData {
	m.Parameters().MustSet(KeySpeed, sdlrpc.Bool(v))
	return m
}

// Speed reports whether `speed` is asked for, or nil when unset.
func (m *SubscribeVehicleData) Speed() *bool {
	return m.Parameters().GetBool(KeySpeed)
}

// SetRPM asks for `rpm` when v is true.
func (m *SubscribeVehicleData) SetRPM(v bool) *SubscribeVehicleData {
	m.Parameters().MustSet(KeyRPM, sdlrpc.Bool(v))
	return m
}

// RPM reports whether `rpm` is asked for, or nil when unset.
func (m *SubscribeVehicleData) RPM() *bool {
	return m.Parameters().GetBool(KeyRPM)
}

// SetStabilityControlsStatus asks for `stabilityControlsStatus` when v is true.
func (m *SubscribeVehicleData) SetStabilityControlsStatus(v bool) *SubscribeVehicleData {
	m.Parameters().MustSet(KeyStabilityControlsStatus, sdlrpc.Bool(v))
	return m
}

// StabilityControlsStatus reports whether `stabilityControlsStatus` is asked for, or nil when unset.
func (m *SubscribeVehicleData) StabilityControlsStatus() *bool {
	return m.Parameters().GetBool(KeyStabilityControlsStatus)
}

// SetWindowStatus asks for `windowStatus` when v is true.
func (m *SubscribeVehicleData) SetWindowStatus(v bool) *SubscribeVehicleData {
	m.Parameters().MustSet(KeyWindowStatus, sdlrpc.Bool(v))
	return m
}

// WindowStatus reports whether `windowStatus` is asked for, or nil when unset.
func (m *SubscribeVehicleData) WindowStatus() *bool {
	return m.Parameters().GetBool(KeyWindowStatus)
}

// SubscribeVehicleDataResponseDescriptor declares the SubscribeVehicleDataResponse payload.
var SubscribeVehicleDataResponseDescriptor = sdlrpc.Declare("SubscribeVehicleDataResponse", subscriptionResponseFields()...)

// SubscribeVehicleDataResponse reports the per-item outcome of a SubscribeVehicleData request.
type SubscribeVehicleDataResponse struct {
	*sdlrpc.Message
}

// NewSubscribeVehicleDataResponse creates an empty SubscribeVehicleDataResponse.
func NewSubscribeVehicleDataResponse() *SubscribeVehicleDataResponse {
	return newSubscribeVehicleDataResponse(sdlrpc.DefaultCodec())
}

func newSubscribeVehicleDataResponse(c *sdlrpc.Codec) *SubscribeVehicleDataResponse {
	return &SubscribeVehicleDataResponse{c.NewMessage(sdlrpc.Response, enums.SubscribeVehicleData.Enum(), SubscribeVehicleDataResponseDescriptor)}
}

// SetCorrelationID sets the correlation id.
func (m *SubscribeVehicleDataResponse) SetCorrelationID(id int) *SubscribeVehicleDataResponse {
	m.Message.SetCorrelationID(id)
	return m
}

// SetSuccess sets `success`.
func (m *SubscribeVehicleDataResponse) SetSuccess(v bool) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeySuccess, sdlrpc.Bool(v))
	return m
}

// Success returns `success`, or nil when absent.
func (m *SubscribeVehicleDataResponse) Success() *bool {
	return m.Parameters().GetBool(KeySuccess)
}

// SetResultCode sets `resultCode`.
func (m *SubscribeVehicleDataResponse) SetResultCode(v enums.Result) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyResultCode, v.Enum())
	return m
}

// ResultCode returns `resultCode`, or nil when absent.
func (m *SubscribeVehicleDataResponse) ResultCode() *enums.Result {
	return sdlrpc.EnumKey[enums.Result](m.Parameters(), KeyResultCode)
}

// SetInfo sets the human readable detail of the result.
func (m *SubscribeVehicleDataResponse) SetInfo(v string) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyInfo, sdlrpc.String(v))
	return m
}

// Info returns `info`, or nil when absent.
func (m *SubscribeVehicleDataResponse) Info() *string {
	return m.Parameters().GetString(KeyInfo)
}

// SetGearStatus sets `gearStatus`.
func (m *SubscribeVehicleDataResponse) SetGearStatus(v *structs.VehicleDataResult) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyGearStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// GearStatus returns `gearStatus`, or nil when absent.
func (m *SubscribeVehicleDataResponse) GearStatus() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyGearStatus))
}

// SetPRNDL sets `prndl`.
func (m *SubscribeVehicleDataResponse) SetPRNDL(v *structs.VehicleDataResult) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyPRNDL, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// PRNDL returns `prndl`, or nil when absent.
func (m *SubscribeVehicleDataResponse) PRNDL() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyPRNDL))
}

// SetSpeed sets `speed`.
func (m *SubscribeVehicleDataResponse) SetSpeed(v *structs.VehicleDataResult) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeySpeed, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// Speed returns `speed`, or nil when absent.
func (m *SubscribeVehicleDataResponse) Speed() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeySpeed))
}

// SetRPM sets `rpm`.
func (m *SubscribeVehicleDataResponse) SetRPM(v *structs.VehicleDataResult) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyRPM, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// RPM returns `rpm`, or nil when absent.
func (m *SubscribeVehicleDataResponse) RPM() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyRPM))
}

// SetStabilityControlsStatus sets `stabilityControlsStatus`.
func (m *SubscribeVehicleDataResponse) SetStabilityControlsStatus(v *structs.VehicleDataResult) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyStabilityControlsStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// StabilityControlsStatus returns `stabilityControlsStatus`, or nil when absent.
func (m *SubscribeVehicleDataResponse) StabilityControlsStatus() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyStabilityControlsStatus))
}

// SetWindowStatus sets `windowStatus`.
func (m *SubscribeVehicleDataResponse) SetWindowStatus(v *structs.VehicleDataResult) *SubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyWindowStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// WindowStatus returns `windowStatus`, or nil when absent.
func (m *SubscribeVehicleDataResponse) WindowStatus() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyWindowStatus))
}
