package structs

import "github.com/sdlgo/sdlrpc"

// GridDescriptor declares Grid.
var GridDescriptor = sdlrpc.Declare("Grid",
	sdlrpc.NumberField(KeyCol).Required(),
	sdlrpc.NumberField(KeyRow).Required(),
	sdlrpc.NumberField(KeyLevel),
	sdlrpc.NumberField(KeyColspan),
	sdlrpc.NumberField(KeyRowspan),
	sdlrpc.NumberField(KeyLevelspan),
)

// Grid locates an item in the vehicle's seating grid. Spans default to 1
// when absent.
type Grid struct {
	*sdlrpc.Struct
}

// NewGrid creates an empty Grid.
func NewGrid() *Grid {
	return &Grid{sdlrpc.NewStruct(GridDescriptor)}
}

// AsGrid wraps s, returning nil for a nil s.
func AsGrid(s *sdlrpc.Struct) *Grid {
	if s == nil {
		return nil
	}
	return &Grid{s}
}

// Unwrap returns the underlying struct, or nil for a nil receiver.
func (g *Grid) Unwrap() *sdlrpc.Struct {
	if g == nil {
		return nil
	}
	return g.Struct
}

func (g *Grid) setInt(key string, v int) *Grid {
	g.MustSet(key, sdlrpc.Number(v))
	return g
}

// SetCol sets `col`.
func (g *Grid) SetCol(v int) *Grid       { return g.setInt(KeyCol, v) }
// SetRow sets `row`.
func (g *Grid) SetRow(v int) *Grid       { return g.setInt(KeyRow, v) }
// SetLevel sets `level`.
func (g *Grid) SetLevel(v int) *Grid     { return g.setInt(KeyLevel, v) }
// SetColspan sets `colspan`.
func (g *Grid) SetColspan(v int) *Grid   { return g.setInt(KeyColspan, v) }
// SetRowspan sets `rowspan`.
func (g *Grid) SetRowspan(v int) *Grid   { return g.setInt(KeyRowspan, v) }
// SetLevelspan sets `levelspan`.
func (g *Grid) SetLevelspan(v int) *Grid { return g.setInt(KeyLevelspan, v) }

// Col returns `col`, or nil when absent.
func (g *Grid) Col() *int       { return g.GetInt(KeyCol) }
// Row returns `row`, or nil when absent.
func (g *Grid) Row() *int       { return g.GetInt(KeyRow) }
// Level returns `level`, or nil when absent.
func (g *Grid) Level() *int     { return g.GetInt(KeyLevel) }
// Colspan returns `colspan`, or nil when absent.
func (g *Grid) Colspan() *int   { return g.GetInt(KeyColspan) }
// Rowspan returns `rowspan`, or nil when absent.
func (g *Grid) Rowspan() *int   { return g.GetInt(KeyRowspan) }
// Levelspan returns `levelspan`, or nil when absent.
func (g *Grid) Levelspan() *int { return g.GetInt(KeyLevelspan) }

// WindowStateDescriptor declares WindowState.
var WindowStateDescriptor = sdlrpc.Declare("WindowState",
	sdlrpc.NumberField(KeyApproximatePosition).Required(),
	sdlrpc.NumberField(KeyDeviation).Required(),
)

// WindowState is how far a window is open, in percent, and the accuracy of
// that reading.
type WindowState struct {
	*sdlrpc.Struct
}

// NewWindowState creates an empty WindowState.
func NewWindowState() *WindowState {
	return &WindowState{sdlrpc.NewStruct(WindowStateDescriptor)}
}

// AsWindowState wraps s, returning nil for a nil s.
func AsWindowState(s *sdlrpc.Struct) *WindowState {
	if s == nil {
		return nil
	}
	return &WindowState{s}
}

// Unwrap returns the underlying struct, or nil for a nil receiver.
func (w *WindowState) Unwrap() *sdlrpc.Struct {
	if w == nil {
		return nil
	}
	return w.Struct
}

// SetApproximatePosition sets `approximatePosition`.
func (w *WindowState) SetApproximatePosition(v int) *WindowState {
	w.MustSet(KeyApproximatePosition, sdlrpc.Number(v))
	return w
}

// ApproximatePosition returns `approximatePosition`, or nil when absent.
func (w *WindowState) ApproximatePosition() *int {
	return w.GetInt(KeyApproximatePosition)
}

// SetDeviation sets `deviation`.
func (w *WindowState) SetDeviation(v int) *WindowState {
	w.MustSet(KeyDeviation, sdlrpc.Number(v))
	return w
}

// Deviation returns `deviation`, or nil when absent.
func (w *WindowState) Deviation() *int {
	return w.GetInt(KeyDeviation)
}

// WindowStatusDescriptor declares WindowStatus.
var WindowStatusDescriptor = sdlrpc.Declare("WindowStatus",
	sdlrpc.StructField(KeyLocation, GridDescriptor).Required(),
	sdlrpc.StructField(KeyState, WindowStateDescriptor).Required(),
)

// WindowStatus is the state of the window at a grid location.
type WindowStatus struct {
	*sdlrpc.Struct
}

// NewWindowStatus creates an empty WindowStatus.
func NewWindowStatus() *WindowStatus {
	return &WindowStatus{sdlrpc.NewStruct(WindowStatusDescriptor)}
}

// AsWindowStatus wraps s, returning nil for a nil s.
func AsWindowStatus(s *sdlrpc.Struct) *WindowStatus {
	if s == nil {
		return nil
	}
	return &WindowStatus{s}
}

// Unwrap returns the underlying struct, or nil for a nil receiver.
func (w *WindowStatus) Unwrap() *sdlrpc.Struct {
	if w == nil {
		return nil
	}
	return w.Struct
}

// SetLocation sets the window's grid location. A nil v clears it.
func (w *WindowStatus) SetLocation(v *Grid) *WindowStatus {
	w.MustSet(KeyLocation, sdlrpc.StructValue(v.Unwrap()))
	return w
}

// Location returns `location`, or nil when absent.
func (w *WindowStatus) Location() *Grid {
	return AsGrid(w.GetStruct(KeyLocation))
}

// SetState sets the window state. A nil v clears it.
func (w *WindowStatus) SetState(v *WindowState) *WindowStatus {
	w.MustSet(KeyState, sdlrpc.StructValue(v.Unwrap()))
	return w
}

// State returns `state`, or nil when absent.
func (w *WindowStatus) State() *WindowState {
	return AsWindowState(w.GetStruct(KeyState))
}
