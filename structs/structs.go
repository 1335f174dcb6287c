// Package structs declares the nested data structures carried by vehicle
// data messages. Each type wraps an *sdlrpc.Struct and adds typed accessors;
// getters return nil when a value is absent and setters return the receiver.
package structs

// Parameter keys.
const (
	KeyDataType            = "dataType"
	KeyResultCode          = "resultCode"
	KeyOEMCustomDataType   = "oemCustomDataType"
	KeyESCSystem           = "escSystem"
	KeyTrailerSwayControl  = "trailerSwayControl"
	KeyUserSelectedGear    = "userSelectedGear"
	KeyActualGear          = "actualGear"
	KeyTransmissionType    = "transmissionType"
	KeyCol                 = "col"
	KeyRow                 = "row"
	KeyLevel               = "level"
	KeyColspan             = "colspan"
	KeyRowspan             = "rowspan"
	KeyLevelspan           = "levelspan"
	KeyApproximatePosition = "approximatePosition"
	KeyDeviation           = "deviation"
	KeyLocation            = "location"
	KeyState               = "state"
)
