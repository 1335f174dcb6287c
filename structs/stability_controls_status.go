package structs

import (
	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
)

// StabilityControlsStatusDescriptor declares StabilityControlsStatus.
var StabilityControlsStatusDescriptor = sdlrpc.Declare("StabilityControlsStatus",
	sdlrpc.EnumField(KeyESCSystem, "VehicleDataStatus"),
	sdlrpc.EnumField(KeyTrailerSwayControl, "VehicleDataStatus"),
)

// StabilityControlsStatus reports the state of the electronic stability
// and trailer sway control systems.
type StabilityControlsStatus struct {
	*sdlrpc.Struct
}

// NewStabilityControlsStatus creates an empty StabilityControlsStatus.
func NewStabilityControlsStatus() *StabilityControlsStatus {
	return &StabilityControlsStatus{sdlrpc.NewStruct(StabilityControlsStatusDescriptor)}
}

// AsStabilityControlsStatus wraps s, returning nil for a nil s.
func AsStabilityControlsStatus(s *sdlrpc.Struct) *StabilityControlsStatus {
	if s == nil {
		return nil
	}
	return &StabilityControlsStatus{s}
}

// Unwrap returns the underlying struct, or nil for a nil receiver.
func (s *StabilityControlsStatus) Unwrap() *sdlrpc.Struct {
	if s == nil {
		return nil
	}
	return s.Struct
}

// SetESCSystem sets `escSystem`.
func (s *StabilityControlsStatus) SetESCSystem(v enums.VehicleDataStatus) *StabilityControlsStatus {
	s.MustSet(KeyESCSystem, v.Enum())
	return s
}

// ESCSystem returns `escSystem`, or nil when absent.
func (s *StabilityControlsStatus) ESCSystem() *enums.VehicleDataStatus {
	return sdlrpc.EnumKey[enums.VehicleDataStatus](s.Struct, KeyESCSystem)
}

// SetTrailerSwayControl sets `trailerSwayControl`.
func (s *StabilityControlsStatus) SetTrailerSwayControl(v enums.VehicleDataStatus) *StabilityControlsStatus {
	s.MustSet(KeyTrailerSwayControl, v.Enum())
	return s
}

// TrailerSwayControl returns `trailerSwayControl`, or nil when absent.
func (s *StabilityControlsStatus) TrailerSwayControl() *enums.VehicleDataStatus {
	return sdlrpc.EnumKey[enums.VehicleDataStatus](s.Struct, KeyTrailerSwayControl)
}
