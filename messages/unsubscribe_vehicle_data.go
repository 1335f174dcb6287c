package messages

import (
	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
	"github.com/sdlgo/sdlrpc/structs"
)

// UnsubscribeVehicleDataDescriptor declares the UnsubscribeVehicleData payload.
var UnsubscribeVehicleDataDescriptor = sdlrpc.Declare("UnsubscribeVehicleData", vehicleDataRequestFields()...)

// UnsubscribeVehicleData cancels subscriptions made with SubscribeVehicleData.
type UnsubscribeVehicleData struct {
	*sdlrpc.Message
}

// NewUnsubscribeVehicleData creates an empty UnsubscribeVehicleData request.
func NewUnsubscribeVehicleData() *UnsubscribeVehicleData {
	return newUnsubscribeVehicleData(sdlrpc.DefaultCodec())
}

func newUnsubscribeVehicleData(c *sdlrpc.Codec) *UnsubscribeVehicleData {
	return &UnsubscribeVehicleData{c.NewMessage(sdlrpc.Request, enums.UnsubscribeVehicleData.Enum(), UnsubscribeVehicleDataDescriptor)}
}

// SetCorrelationID sets the correlation id.
func (m *UnsubscribeVehicleData) SetCorrelationID(id int) *UnsubscribeVehicleData {
	m.Message.SetCorrelationID(id)
	return m
}

// SetGearStatus asks for `gearStatus` when v is true.
func (m *UnsubscribeVehicleData) SetGearStatus(v bool) *UnsubscribeVehicleData {
	m.Parameters().MustSet(KeyGearStatus, sdlrpc.Bool(v))
	return m
}

// GearStatus reports whether `gearStatus` is asked for, or nil when unset.
func (m *UnsubscribeVehicleData) GearStatus() *bool {
	return m.Parameters().GetBool(KeyGearStatus)
}

// SetPRNDL asks for `prndl` when v is true.
func (m *UnsubscribeVehicleData) SetPRNDL(v bool) *UnsubscribeVehicleData {
	m.Parameters().MustSet(KeyPRNDL, sdlrpc.Bool(v))
	return m
}

// PRNDL reports whether `prndl` is asked for, or nil when unset.
func (m *UnsubscribeVehicleData) PRNDL() *bool {
	return m.Parameters().GetBool(KeyPRNDL)
}

// SetSpeed asks for `speed` when v is true.
func (m *UnsubscribeVehicleData) SetSpeed(v bool) *UnsubscribeVehicleData {
	m.Parameters().MustSet(KeySpeed, sdlrpc.Bool(v))
	return m
}

// Speed reports whether `speed` is asked for, or nil when unset.
func (m *UnsubscribeVehicleData) Speed() *bool {
	return m.Parameters().GetBool(KeySpeed)
}

// SetRPM asks for `rpm` when v is true.
func (m *UnsubscribeVehicleData) SetRPM(v bool) *UnsubscribeVehicleData {
	m.Parameters().MustSet(KeyRPM, sdlrpc.Bool(v))
	return m
}

// RPM reports whether `rpm` is asked for, or nil when unset.
func (m *UnsubscribeVehicleData) RPM() *bool {
	return m.Parameters().GetBool(KeyRPM)
}

// SetStabilityControlsStatus asks for `stabilityControlsStatus` when v is true.
func (m *UnsubscribeVehicleData) SetStabilityControlsStatus(v bool) *UnsubscribeVehicleData {
	m.Parameters().MustSet(KeyStabilityControlsStatus, sdlrpc.Bool(v))
	return m
}

// StabilityControlsStatus reports whether `stabilityControlsStatus` is asked for, or nil when unset.
func (m *UnsubscribeVehicleData) StabilityControlsStatus() *bool {
	return m.Parameters().GetBool(KeyStabilityControlsStatus)
}

// SetWindowStatus asks for `windowStatus` when v is true.
func (m *UnsubscribeVehicleData) SetWindowStatus(v bool) *UnsubscribeVehicleData {
	m.Parameters().MustSet(KeyWindowStatus, sdlrpc.Bool(v))
	return m
}

// WindowStatus reports whether `windowStatus` is asked for, or nil when unset.
func (m *UnsubscribeVehicleData) WindowStatus() *bool {
	return m.Parameters().GetBool(KeyWindowStatus)
}

// UnsubscribeVehicleDataResponseDescriptor declares the UnsubscribeVehicleDataResponse payload.
var UnsubscribeVehicleDataResponseDescriptor = sdlrpc.Declare("UnsubscribeVehicleDataResponse", subscriptionResponseFields()...)

// UnsubscribeVehicleDataResponse reports the per-item outcome of an UnsubscribeVehicleData request.
type UnsubscribeVehicleDataResponse struct {
	*sdlrpc.Message
}

// NewUnsubscribeVehicleDataResponse creates an empty UnsubscribeVehicleDataResponse.
func NewUnsubscribeVehicleDataResponse() *UnsubscribeVehicleDataResponse {
	return newUnsubscribeVehicleDataResponse(sdlrpc.DefaultCodec())
}

func newUnsubscribeVehicleDataResponse(c *sdlrpc.Codec) *UnsubscribeVehicleDataResponse {
	return &UnsubscribeVehicleDataResponse{c.NewMessage(sdlrpc.Response, enums.UnsubscribeVehicleData.Enum(), UnsubscribeVehicleDataResponseDescriptor)}
}

// SetCorrelationID sets the correlation id.
func (m *UnsubscribeVehicleDataResponse) SetCorrelationID(id int) *UnsubscribeVehicleDataResponse {
	m.Message.SetCorrelationID(id)
	return m
}

// SetSuccess sets `success`.
func (m *UnsubscribeVehicleDataResponse) SetSuccess(v bool) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeySuccess, sdlrpc.Bool(v))
	return m
}

// Success returns `success`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) Success() *bool {
	return m.Parameters().GetBool(KeySuccess)
}

// SetResultCode sets `resultCode`.
func (m *UnsubscribeVehicleDataResponse) SetResultCode(v enums.Result) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyResultCode, v.Enum())
	return m
}

// ResultCode returns `resultCode`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) ResultCode() *enums.Result {
	return sdlrpc.EnumKey[enums.Result](m.Parameters(), KeyResultCode)
}

// SetInfo sets the human readable detail of the result.
func (m *UnsubscribeVehicleDataResponse) SetInfo(v string) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyInfo, sdlrpc.String(v))
	return m
}

// Info returns `info`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) Info() *string {
	return m.Parameters().GetString(KeyInfo)
}

// SetGearStatus sets `gearStatus`.
func (m *UnsubscribeVehicleDataResponse) SetGearStatus(v *structs.VehicleDataResult) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyGearStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// GearStatus returns `gearStatus`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) GearStatus() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyGearStatus))
}

// SetPRNDL sets `prndl`.
func (m *UnsubscribeVehicleDataResponse) SetPRNDL(v *structs.VehicleDataResult) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyPRNDL, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// PRNDL returns `prndl`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) PRNDL() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyPRNDL))
}

// SetSpeed sets `speed`.
func (m *UnsubscribeVehicleDataResponse) SetSpeed(v *structs.VehicleDataResult) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeySpeed, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// Speed returns `speed`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) Speed() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeySpeed))
}

// SetRPM sets `rpm`.
func (m *UnsubscribeVehicleDataResponse) SetRPM(v *structs.VehicleDataResult) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyRPM, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// RPM returns `rpm`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) RPM() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyRPM))
}

// SetStabilityControlsStatus sets `stabilityControlsStatus`.
func (m *UnsubscribeVehicleDataResponse) SetStabilityControlsStatus(v *structs.VehicleDataResult) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyStabilityControlsStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// StabilityControlsStatus returns `stabilityControlsStatus`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) StabilityControlsStatus() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyStabilityControlsStatus))
}

// SetWindowStatus sets `windowStatus`.
func (m *UnsubscribeVehicleDataResponse) SetWindowStatus(v *structs.VehicleDataResult) *UnsubscribeVehicleDataResponse {
	m.Parameters().MustSet(KeyWindowStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// WindowStatus returns `windowStatus`, or nil when absent.
func (m *UnsubscribeVehicleDataResponse) WindowStatus() *structs.VehicleDataResult {
	return structs.AsVehicleDataResult(m.Parameters().GetStruct(KeyWindowStatus))
}
