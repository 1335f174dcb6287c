package messages

import (
	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
	"github.com/sdlgo/sdlrpc/structs"
)

// GetVehicleDataResponseDescriptor declares the GetVehicleDataResponse payload.
var GetVehicleDataResponseDescriptor = sdlrpc.Declare("GetVehicleDataResponse", vehicleDataResponseFields()...)

// GetVehicleDataResponse carries the vehicle data read by a GetVehicleData request.
type GetVehicleDataResponse struct {
	*sdlrpc.Message
}

// NewGetVehicleDataResponse creates an empty GetVehicleDataResponse.
func NewGetVehicleDataResponse() *GetVehicleDataResponse {
	return newGetVehicleDataResponse(sdlrpc.DefaultCodec())
}

func newGetVehicleDataResponse(c *sdlrpc.Codec) *GetVehicleDataResponse {
	return &GetVehicleDataResponse{c.NewMessage(sdlrpc.Response, enums.GetVehicleData.Enum(), GetVehicleDataResponseDescriptor)}
}

// SetCorrelationID sets the correlation id.
func (m *GetVehicleDataResponse) SetCorrelationID(id int) *GetVehicleDataResponse {
	m.Message.SetCorrelationID(id)
	return m
}

// SetSuccess sets `success`.
func (m *GetVehicleDataResponse) SetSuccess(v bool) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeySuccess, sdlrpc.Bool(v))
	return m
}

// Success returns `success`, or nil when absent.
func (m *GetVehicleDataResponse) Success() *bool {
	return m.Parameters().GetBool(KeySuccess)
}

// SetResultCode sets `resultCode`.
func (m *GetVehicleDataResponse) SetResultCode(v enums.Result) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeyResultCode, v.Enum())
	return m
}

// ResultCode returns `resultCode`, or nil when absent.
func (m *GetVehicleDataResponse) ResultCode() *enums.Result {
	return sdlrpc.EnumKey[enums.Result](m.Parameters(), KeyResultCode)
}

// SetInfo sets the human readable detail of the result.
func (m *GetVehicleDataResponse) SetInfo(v string) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeyInfo, sdlrpc.String(v))
	return m
}

// Info returns `info`, or nil when absent.
func (m *GetVehicleDataResponse) Info() *string {
	return m.Parameters().GetString(KeyInfo)
}

// SetGearStatus sets the gear status. A nil v clears it.
func (m *GetVehicleDataResponse) SetGearStatus(v *structs.GearStatus) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeyGearStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// GearStatus returns `gearStatus`, or nil when absent.
func (m *GetVehicleDataResponse) GearStatus() *structs.GearStatus {
	return structs.AsGearStatus(m.Parameters().GetStruct(KeyGearStatus))
}

// SetPRNDL sets `prndl`.
func (m *GetVehicleDataResponse) SetPRNDL(v enums.PRNDL) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeyPRNDL, v.Enum())
	return m
}

// PRNDL returns `prndl`, or nil when absent.
func (m *GetVehicleDataResponse) PRNDL() *enums.PRNDL {
	return sdlrpc.EnumKey[enums.PRNDL](m.Parameters(), KeyPRNDL)
}

// SetSpeed sets the vehicle speed in km/h.
func (m *GetVehicleDataResponse) SetSpeed(v float64) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeySpeed, sdlrpc.Number(v))
	return m
}

// Speed returns `speed`, or nil when absent.
func (m *GetVehicleDataResponse) Speed() *float64 {
	return m.Parameters().GetNumber(KeySpeed)
}

// SetRPM sets `rpm`.
func (m *GetVehicleDataResponse) SetRPM(v int) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeyRPM, sdlrpc.Number(v))
	return m
}

// RPM returns `rpm`, or nil when absent.
func (m *GetVehicleDataResponse) RPM() *int {
	return m.Parameters().GetInt(KeyRPM)
}

// SetStabilityControlsStatus sets the stability controls status. A nil v
// clears it.
func (m *GetVehicleDataResponse) SetStabilityControlsStatus(v *structs.StabilityControlsStatus) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeyStabilityControlsStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// StabilityControlsStatus returns `stabilityControlsStatus`, or nil when absent.
func (m *GetVehicleDataResponse) StabilityControlsStatus() *structs.StabilityControlsStatus {
	return structs.AsStabilityControlsStatus(m.Parameters().GetStruct(KeyStabilityControlsStatus))
}

// SetWindowStatus sets the status of each window. A nil v clears it, an
// empty v sends an empty list.
func (m *GetVehicleDataResponse) SetWindowStatus(v []*structs.WindowStatus) *GetVehicleDataResponse {
	m.Parameters().MustSet(KeyWindowStatus, windowStatusList(v))
	return m
}

// WindowStatus returns `windowStatus`, or nil when absent.
func (m *GetVehicleDataResponse) WindowStatus() []*structs.WindowStatus {
	return windowStatusSlice(m.Parameters().GetList(KeyWindowStatus))
}
