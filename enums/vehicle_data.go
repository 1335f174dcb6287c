package enums

import "github.com/sdlgo/sdlrpc"

// Result is the overall outcome of a request.
type Result string

// Results.
const (
	ResultSuccess             Result = "SUCCESS"
	ResultUnsupportedRequest  Result = "UNSUPPORTED_REQUEST"
	ResultUnsupportedResource Result = "UNSUPPORTED_RESOURCE"
	ResultDisallowed          Result = "DISALLOWED"
	ResultRejected            Result = "REJECTED"
	ResultAborted             Result = "ABORTED"
	ResultIgnored             Result = "IGNORED"
	ResultRetry               Result = "RETRY"
	ResultInUse               Result = "IN_USE"
	ResultDataNotAvailable    Result = "VEHICLE_DATA_NOT_AVAILABLE"
	ResultTimedOut            Result = "TIMED_OUT"
	ResultInvalidData         Result = "INVALID_DATA"
	ResultTooManyPendingReqs  Result = "TOO_MANY_PENDING_REQUESTS"
	ResultInvalidID           Result = "INVALID_ID"
	ResultOutOfMemory         Result = "OUT_OF_MEMORY"
	ResultGenericError        Result = "GENERIC_ERROR"
	ResultUserDisallowed      Result = "USER_DISALLOWED"
	ResultWarnings            Result = "WARNINGS"
)

// ResultCatalog holds every Result.
var ResultCatalog = stringCatalog("Result",
	ResultSuccess, ResultUnsupportedRequest, ResultUnsupportedResource,
	ResultDisallowed, ResultRejected, ResultAborted, ResultIgnored, ResultRetry,
	ResultInUse, ResultDataNotAvailable, ResultTimedOut, ResultInvalidData,
	ResultTooManyPendingReqs, ResultInvalidID, ResultOutOfMemory,
	ResultGenericError, ResultUserDisallowed, ResultWarnings,
)

func (r Result) Enum() sdlrpc.Enum { return ResultCatalog.Enum(string(r)) }

// VehicleDataType identifies one vehicle data item in subscription results.
type VehicleDataType string

// Vehicle data types.
const (
	VehicleDataSpeed                   VehicleDataType = "VEHICLEDATA_SPEED"
	VehicleDataRPM                     VehicleDataType = "VEHICLEDATA_RPM"
	VehicleDataPRNDL                   VehicleDataType = "VEHICLEDATA_PRNDL"
	VehicleDataGearStatus              VehicleDataType = "VEHICLEDATA_GEARSTATUS"
	VehicleDataStabilityControlsStatus VehicleDataType = "VEHICLEDATA_STABILITYCONTROLSSTATUS"
	VehicleDataWindowStatus            VehicleDataType = "VEHICLEDATA_WINDOWSTATUS"
	VehicleDataOEMCustomData           VehicleDataType = "VEHICLEDATA_OEM_CUSTOM_DATA"
)

// VehicleDataTypeCatalog holds every VehicleDataType.
var VehicleDataTypeCatalog = stringCatalog("VehicleDataType",
	VehicleDataSpeed, VehicleDataRPM, VehicleDataPRNDL, VehicleDataGearStatus,
	VehicleDataStabilityControlsStatus, VehicleDataWindowStatus,
	VehicleDataOEMCustomData,
)

func (v VehicleDataType) Enum() sdlrpc.Enum { return VehicleDataTypeCatalog.Enum(string(v)) }

// VehicleDataResultCode is the per-item outcome of a subscription request.
type VehicleDataResultCode string

// Vehicle data result codes.
const (
	VDRCSuccess               VehicleDataResultCode = "SUCCESS"
	VDRCTruncatedData         VehicleDataResultCode = "TRUNCATED_DATA"
	VDRCDisallowed            VehicleDataResultCode = "DISALLOWED"
	VDRCUserDisallowed        VehicleDataResultCode = "USER_DISALLOWED"
	VDRCInvalidID             VehicleDataResultCode = "INVALID_ID"
	VDRCDataNotAvailable      VehicleDataResultCode = "VEHICLE_DATA_NOT_AVAILABLE"
	VDRCDataAlreadySubscribed VehicleDataResultCode = "DATA_ALREADY_SUBSCRIBED"
	VDRCDataNotSubscribed     VehicleDataResultCode = "DATA_NOT_SUBSCRIBED"
	VDRCIgnored               VehicleDataResultCode = "IGNORED"
)

// VehicleDataResultCodeCatalog holds every VehicleDataResultCode.
var VehicleDataResultCodeCatalog = stringCatalog("VehicleDataResultCode",
	VDRCSuccess, VDRCTruncatedData, VDRCDisallowed, VDRCUserDisallowed,
	VDRCInvalidID, VDRCDataNotAvailable, VDRCDataAlreadySubscribed,
	VDRCDataNotSubscribed, VDRCIgnored,
)

func (v VehicleDataResultCode) Enum() sdlrpc.Enum {
	return VehicleDataResultCodeCatalog.Enum(string(v))
}

// VehicleDataStatus reports whether a vehicle system is on.
type VehicleDataStatus string

// Vehicle data statuses.
const (
	VDSNoDataExists VehicleDataStatus = "VDS_NO_DATA_EXISTS"
	VDSOff          VehicleDataStatus = "VDS_OFF"
	VDSOn           VehicleDataStatus = "VDS_ON"
)

// VehicleDataStatusCatalog holds every VehicleDataStatus.
var VehicleDataStatusCatalog = stringCatalog("VehicleDataStatus", VDSNoDataExists, VDSOff, VDSOn)

func (v VehicleDataStatus) Enum() sdlrpc.Enum { return VehicleDataStatusCatalog.Enum(string(v)) }

// PRNDL is a gear selector position.
type PRNDL string

// Gear positions.
const (
	PRNDLPark    PRNDL = "PARK"
	PRNDLReverse PRNDL = "REVERSE"
	PRNDLNeutral PRNDL = "NEUTRAL"
	PRNDLDrive   PRNDL = "DRIVE"
	PRNDLSport   PRNDL = "SPORT"
	PRNDLLowGear PRNDL = "LOWGEAR"
	PRNDLFirst   PRNDL = "FIRST"
	PRNDLSecond  PRNDL = "SECOND"
	PRNDLThird   PRNDL = "THIRD"
	PRNDLFourth  PRNDL = "FOURTH"
	PRNDLFifth   PRNDL = "FIFTH"
	PRNDLSixth   PRNDL = "SIXTH"
	PRNDLSeventh PRNDL = "SEVENTH"
	PRNDLEighth  PRNDL = "EIGHTH"
	PRNDLNinth   PRNDL = "NINTH"
	PRNDLTenth   PRNDL = "TENTH"
	PRNDLUnknown PRNDL = "UNKNOWN"
	PRNDLFault   PRNDL = "FAULT"
)

// PRNDLCatalog holds every PRNDL.
var PRNDLCatalog = stringCatalog("PRNDL",
	PRNDLPark, PRNDLReverse, PRNDLNeutral, PRNDLDrive, PRNDLSport,
	PRNDLLowGear, PRNDLFirst, PRNDLSecond, PRNDLThird, PRNDLFourth,
	PRNDLFifth, PRNDLSixth, PRNDLSeventh, PRNDLEighth, PRNDLNinth,
	PRNDLTenth, PRNDLUnknown, PRNDLFault,
)

func (p PRNDL) Enum() sdlrpc.Enum { return PRNDLCatalog.Enum(string(p)) }

// TransmissionType is the kind of transmission fitted.
type TransmissionType string

// Transmission types.
const (
	TransmissionManual               TransmissionType = "MANUAL"
	TransmissionAutomatic            TransmissionType = "AUTOMATIC"
	TransmissionSemiAutomatic        TransmissionType = "SEMI_AUTOMATIC"
	TransmissionDualClutch           TransmissionType = "DUAL_CLUTCH"
	TransmissionContinuouslyVariable TransmissionType = "CONTINUOUSLY_VARIABLE"
	TransmissionInfinitelyVariable   TransmissionType = "INFINITELY_VARIABLE"
	TransmissionElectricVariable     TransmissionType = "ELECTRIC_VARIABLE"
	TransmissionDirectDrive          TransmissionType = "DIRECT_DRIVE"
)

// TransmissionTypeCatalog holds every TransmissionType.
var TransmissionTypeCatalog = stringCatalog("TransmissionType",
	TransmissionManual, TransmissionAutomatic, TransmissionSemiAutomatic,
	TransmissionDualClutch, TransmissionContinuouslyVariable,
	TransmissionInfinitelyVariable, TransmissionElectricVariable,
	TransmissionDirectDrive,
)

func (t TransmissionType) Enum() sdlrpc.Enum { return TransmissionTypeCatalog.Enum(string(t)) }
