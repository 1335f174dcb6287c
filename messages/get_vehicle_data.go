package messages

import (
	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
)

// GetVehicleDataDescriptor declares the GetVehicleData payload.
var GetVehicleDataDescriptor = sdlrpc.Declare("GetVehicleData", vehicleDataRequestFields()...)

// GetVehicleData requests a one-time read of the flagged vehicle data items.
type GetVehicleData struct {
	*sdlrpc.Message
}

// NewGetVehicleData creates an empty GetVehicleData request.
func NewGetVehicleData() *GetVehicleData {
	return newGetVehicleData(sdlrpc.DefaultCodec())
}

func newGetVehicleData(c *sdlrpc.Codec) *GetVehicleData {
	return &GetVehicleData{c.NewMessage(sdlrpc.Request, enums.GetVehicleData.Enum(), GetVehicleDataDescriptor)}
}

// SetCorrelationID sets the correlation id.
func (m *GetVehicleData) SetCorrelationID(id int) *GetVehicleData {
	m.Message.SetCorrelationID(id)
	return m
}

// SetGearStatus asks for `gearStatus` when v is true.
func (m *GetVehicleData) SetGearStatus(v bool) *GetVehicleData {
	m.Parameters().MustSet(KeyGearStatus, sdlrpc.Bool(v))
	return m
}

// GearStatus reports whether `gearStatus` is asked for, or nil when unset.
func (m *GetVehicleData) GearStatus() *bool {
	return m.Parameters().GetBool(KeyGearStatus)
}

// SetPRNDL asks for `prndl` when v is true.
func (m *GetVehicleData) SetPRNDL(v bool) *GetVehicleData {
	m.Parameters().MustSet(KeyPRNDL, sdlrpc.Bool(v))
	return m
}

// PRNDL reports whether `prndl` is asked for, or nil when unset.
func (m *GetVehicleData) PRNDL() *bool {
	return m.Parameters().GetBool(KeyPRNDL)
}

// SetSpeed asks for `speed` when v is true.
func (m *GetVehicleData) SetSpeed(v bool) *GetVehicleData {
	m.Parameters().MustSet(KeySpeed, sdlrpc.Bool(v))
	return m
}

// Speed reports whether `speed` is asked for, or nil when unset.
func (m *GetVehicleData) Speed() *bool {
	return m.Parameters().GetBool(KeySpeed)
}

// SetRPM asks for `rpm` when v is true.
func (m *GetVehicleData) SetRPM(v bool) *GetVehicleData {
	m.Parameters().MustSet(KeyRPM, sdlrpc.Bool(v))
	return m
}

// RPM reports whether `rpm` is asked for, or nil when unset.
func (m *GetVehicleData) RPM() *bool {
	return m.Parameters().GetBool(KeyRPM)
}

// SetStabilityControlsStatus asks for `stabilityControlsStatus` when v is true.
func (m *GetVehicleData) SetStabilityControlsStatus(v bool) *GetVehicleData {
	m.Parameters().MustSet(KeyStabilityControlsStatus, sdlrpc.Bool(v))
	return m
}

// StabilityControlsStatus reports whether `stabilityControlsStatus` is asked for, or nil when unset.
func (m *GetVehicleData) StabilityControlsStatus() *bool {
	return m.Parameters().GetBool(KeyStabilityControlsStatus)
}

// SetWindowStatus asks for `windowStatus` when v is true.
func (m *GetVehicleData) SetWindowStatus(v bool) *GetVehicleData {
	m.Parameters().MustSet(KeyWindowStatus, sdlrpc.Bool(v))
	return m
}

// WindowStatus reports whether `windowStatus` is asked for, or nil when unset.
func (m *GetVehicleData) WindowStatus() *bool {
	return m.Parameters().GetBool(KeyWindowStatus)
}
