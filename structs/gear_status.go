package structs

import (
	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
)

// GearStatusDescriptor declares GearStatus.
var GearStatusDescriptor = sdlrpc.Declare("GearStatus",
	sdlrpc.EnumField(KeyUserSelectedGear, "PRNDL"),
	sdlrpc.EnumField(KeyActualGear, "PRNDL"),
	sdlrpc.EnumField(KeyTransmissionType, "TransmissionType"),
)

// GearStatus is the selected and actual gear along with the transmission
// type.
type GearStatus struct {
	*sdlrpc.Struct
}

// NewGearStatus creates an empty GearStatus.
func NewGearStatus() *GearStatus {
	return &GearStatus{sdlrpc.NewStruct(GearStatusDescriptor)}
}

// AsGearStatus wraps s, returning nil for a nil s.
func AsGearStatus(s *sdlrpc.Struct) *GearStatus {
	if s == nil {
		return nil
	}
	return &GearStatus{s}
}

// Unwrap returns the underlying struct, or nil for a nil receiver.
func (g *GearStatus) Unwrap() *sdlrpc.Struct {
	if g == nil {
		return nil
	}
	return g.Struct
}

// SetUserSelectedGear sets the gear position selected by the driver.
func (g *GearStatus) SetUserSelectedGear(v enums.PRNDL) *GearStatus {
	g.MustSet(KeyUserSelectedGear, v.Enum())
	return g
}

// UserSelectedGear returns `userSelectedGear`, or nil when absent.
func (g *GearStatus) UserSelectedGear() *enums.PRNDL {
	return sdlrpc.EnumKey[enums.PRNDL](g.Struct, KeyUserSelectedGear)
}

// SetActualGear sets the gear the transmission is actually in.
func (g *GearStatus) SetActualGear(v enums.PRNDL) *GearStatus {
	g.MustSet(KeyActualGear, v.Enum())
	return g
}

// ActualGear returns `actualGear`, or nil when absent.
func (g *GearStatus) ActualGear() *enums.PRNDL {
	return sdlrpc.EnumKey[enums.PRNDL](g.Struct, KeyActualGear)
}

// SetTransmissionType sets `transmissionType`.
func (g *GearStatus) SetTransmissionType(v enums.TransmissionType) *GearStatus {
	g.MustSet(KeyTransmissionType, v.Enum())
	return g
}

// TransmissionType returns `transmissionType`, or nil when absent.
func (g *GearStatus) TransmissionType() *enums.TransmissionType {
	return sdlrpc.EnumKey[enums.TransmissionType](g.Struct, KeyTransmissionType)
}
