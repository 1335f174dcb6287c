package messages

import (
	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
	"github.com/sdlgo/sdlrpc/structs"
)

// OnVehicleDataDescriptor declares the OnVehicleData payload.
var OnVehicleDataDescriptor = sdlrpc.Declare("OnVehicleData", vehicleDataFields()...)

// OnVehicleData delivers subscribed vehicle data as it changes.
type OnVehicleData struct {
	*sdlrpc.Message
}

// NewOnVehicleData creates an empty OnVehicleData.
func NewOnVehicleData() *OnVehicleData {
	return newOnVehicleData(sdlrpc.DefaultCodec())
}

func newOnVehicleData(c *sdlrpc.Codec) *OnVehicleData {
	return &OnVehicleData{c.NewMessage(sdlrpc.Notification, enums.OnVehicleData.Enum(), OnVehicleDataDescriptor)}
}

// SetGearStatus sets the gear status. A nil v clears it.
func (m *OnVehicleData) SetGearStatus(v *structs.GearStatus) *OnVehicleData {
	m.Parameters().MustSet(KeyGearStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// GearStatus returns `gearStatus`, or nil when absent.
func (m *OnVehicleData) GearStatus() *structs.GearStatus {
	return structs.AsGearStatus(m.Parameters().GetStruct(KeyGearStatus))
}

// SetPRNDL sets `prndl`.
func (m *OnVehicleData) SetPRNDL(v enums.PRNDL) *OnVehicleData {
	m.Parameters().MustSet(KeyPRNDL, v.Enum())
	return m
}

// PRNDL returns `prndl`, or nil when absent.
func (m *OnVehicleData) PRNDL() *enums.PRNDL {
	return sdlrpc.EnumKey[enums.PRNDL](m.Parameters(), KeyPRNDL)
}

// SetSpeed sets the vehicle speed in km/h.
func (m *OnVehicleData) SetSpeed(v float64) *OnVehicleData {
	m.Parameters().MustSet(KeySpeed, sdlrpc.Number(v))
	return m
}

// Speed returns `speed`, or nil when absent.
func (m *OnVehicleData) Speed() *float64 {
	return m.Parameters().GetNumber(KeySpeed)
}

// SetRPM sets `rpm`.
func (m *OnVehicleData) SetRPM(v int) *OnVehicleData {
	m.Parameters().MustSet(KeyRPM, sdlrpc.Number(v))
	return m
}

// RPM returns `rpm`, or nil when absent.
func (m *OnVehicleData) RPM() *int {
	return m.Parameters().GetInt(KeyRPM)
}

// SetStabilityControlsStatus sets the stability controls status. A nil v
// clears it.
func (m *OnVehicleData) SetStabilityControlsStatus(v *structs.StabilityControlsStatus) *OnVehicleData {
	m.Parameters().MustSet(KeyStabilityControlsStatus, sdlrpc.StructValue(v.Unwrap()))
	return m
}

// StabilityControlsStatus returns `stabilityControlsStatus`, or nil when absent.
func (m *OnVehicleData) StabilityControlsStatus() *structs.StabilityControlsStatus {
	return structs.AsStabilityControlsStatus(m.Parameters().GetStruct(KeyStabilityControlsStatus))
}

// SetWindowStatus sets the status of each window. A nil v clears it, an
// empty v sends an empty list.
func (m *OnVehicleData) SetWindowStatus(v []*structs.WindowStatus) *OnVehicleData {
	m.Parameters().MustSet(KeyWindowStatus, windowStatusList(v))
	return m
}

// WindowStatus returns `windowStatus`, or nil when absent.
func (m *OnVehicleData) WindowStatus() []*structs.WindowStatus {
	return windowStatusSlice(m.Parameters().GetList(KeyWindowStatus))
}
