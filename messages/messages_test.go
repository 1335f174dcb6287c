package messages

import (
	"testing"

	"github.com/sdlgo/sdlrpc"
	"github.com/sdlgo/sdlrpc/enums"
	_ "github.com/sdlgo/sdlrpc/formats/cbor"
	"github.com/sdlgo/sdlrpc/rpctest"
	"github.com/sdlgo/sdlrpc/structs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetVehicleData(t *testing.T) {
	rpctest.Run(t, rpctest.Case{
		Create: func() sdlrpc.RPC {
			return NewGetVehicleData().SetGearStatus(true).SetPRNDL(true)
		},
		Empty:        func() sdlrpc.RPC { return NewGetVehicleData() },
		FunctionName: "GetVehicleData",
		MessageType:  sdlrpc.Request,
		Parameters: map[string]any{
			KeyGearStatus: true,
			KeyPRNDL:      true,
		},
	})

	m := NewGetVehicleData().SetGearStatus(true).SetPRNDL(true)
	assert.True(t, *m.GearStatus())
	assert.True(t, *m.PRNDL())

	empty := NewGetVehicleData()
	assert.Equal(t, enums.GetVehicleData.Enum(), empty.FunctionID())
	assert.Equal(t, sdlrpc.Request, empty.MessageType())
	assert.Nil(t, empty.GearStatus())
	assert.Nil(t, empty.PRNDL())
}

func TestGetVehicleDataResponse(t *testing.T) {
	status := structs.NewStabilityControlsStatus().
		SetESCSystem(enums.VDSOn).
		SetTrailerSwayControl(enums.VDSOn)

	rpctest.Run(t, rpctest.Case{
		Create: func() sdlrpc.RPC {
			return NewGetVehicleDataResponse().SetStabilityControlsStatus(status)
		},
		Empty:        func() sdlrpc.RPC { return NewGetVehicleDataResponse() },
		FunctionName: "GetVehicleData",
		MessageType:  sdlrpc.Response,
		Parameters: map[string]any{
			KeyStabilityControlsStatus: map[string]any{
				structs.KeyESCSystem:          "VDS_ON",
				structs.KeyTrailerSwayControl: "VDS_ON",
			},
		},
	})

	m := NewGetVehicleDataResponse().SetStabilityControlsStatus(status)
	assert.True(t, status.Equal(m.StabilityControlsStatus().Struct))
	assert.Nil(t, NewGetVehicleDataResponse().StabilityControlsStatus())
}

func TestGetVehicleDataResponseAllItems(t *testing.T) {
	create := func() sdlrpc.RPC {
		return NewGetVehicleDataResponse().
			SetSuccess(true).
			SetResultCode(enums.ResultSuccess).
			SetInfo("ok").
			SetGearStatus(structs.NewGearStatus().SetActualGear(enums.PRNDLPark)).
			SetPRNDL(enums.PRNDLPark).
			SetSpeed(12.5).
			SetRPM(800).
			SetWindowStatus([]*structs.WindowStatus{
				structs.NewWindowStatus().
					SetLocation(structs.NewGrid().SetCol(0).SetRow(0)).
					SetState(structs.NewWindowState().SetApproximatePosition(10).SetDeviation(1)),
			})
	}

	rpctest.Run(t, rpctest.Case{
		Create:       create,
		Empty:        func() sdlrpc.RPC { return NewGetVehicleDataResponse() },
		FunctionName: "GetVehicleData",
		MessageType:  sdlrpc.Response,
		Parameters: map[string]any{
			KeySuccess:    true,
			KeyResultCode: "SUCCESS",
			KeyInfo:       "ok",
			KeyGearStatus: map[string]any{"actualGear": "PARK"},
			KeyPRNDL:      "PARK",
			KeySpeed:      12.5,
			KeyRPM:        800,
			KeyWindowStatus: []any{
				map[string]any{
					"location": map[string]any{"col": 0, "row": 0},
					"state":    map[string]any{"approximatePosition": 10, "deviation": 1},
				},
			},
		},
	})

	m := create().(*GetVehicleDataResponse)
	assert.NoError(t, m.Validate())
	assert.True(t, *m.Success())
	assert.Equal(t, enums.ResultSuccess, *m.ResultCode())
	assert.Equal(t, "ok", *m.Info())
	assert.Equal(t, enums.PRNDLPark, *m.GearStatus().ActualGear())
	assert.Equal(t, enums.PRNDLPark, *m.PRNDL())
	assert.Equal(t, 12.5, *m.Speed())
	assert.Equal(t, 800, *m.RPM())
	require.Len(t, m.WindowStatus(), 1)
	assert.Equal(t, 10, *m.WindowStatus()[0].State().ApproximatePosition())

	// An empty list is kept and distinct from absent.
	m.SetWindowStatus([]*structs.WindowStatus{})
	assert.NotNil(t, m.WindowStatus())
	assert.Empty(t, m.WindowStatus())
	assert.Equal(t, []any{}, m.Parameters().Parameters()[KeyWindowStatus])

	m.SetWindowStatus(nil)
	assert.Nil(t, m.WindowStatus())
	m.SetGearStatus(nil)
	assert.Nil(t, m.GearStatus())
}

func TestSubscribeVehicleData(t *testing.T) {
	rpctest.Run(t, rpctest.Case{
		Create: func() sdlrpc.RPC {
			return NewSubscribeVehicleData().SetSpeed(true).SetRPM(false)
		},
		Empty:        func() sdlrpc.RPC { return NewSubscribeVehicleData() },
		FunctionName: "SubscribeVehicleData",
		MessageType:  sdlrpc.Request,
		Parameters:   map[string]any{KeySpeed: true, KeyRPM: false},
	})
}

func TestSubscribeVehicleDataResponse(t *testing.T) {
	gearStatus := structs.NewVehicleDataResult().SetDataType(enums.VehicleDataGearStatus)
	expected := gearStatus.Parameters()

	// The nested struct holds only what was set.
	assert.Equal(t, map[string]any{"dataType": "VEHICLEDATA_GEARSTATUS"}, expected)

	rpctest.Run(t, rpctest.Case{
		Create: func() sdlrpc.RPC {
			return NewSubscribeVehicleDataResponse().SetGearStatus(gearStatus)
		},
		Empty:        func() sdlrpc.RPC { return NewSubscribeVehicleDataResponse() },
		FunctionName: "SubscribeVehicleData",
		MessageType:  sdlrpc.Response,
		Parameters:   map[string]any{KeyGearStatus: expected},
	})

	m := NewSubscribeVehicleDataResponse().SetGearStatus(gearStatus)
	assert.True(t, gearStatus.Equal(m.GearStatus().Struct))
	assert.Nil(t, NewSubscribeVehicleDataResponse().GearStatus())

	// Mandatory keys are advisory until validation.
	err := m.Validate()
	var model *sdlrpc.ErrorModel
	require.ErrorAs(t, err, &model)
	locations := []string{}
	for _, d := range model.Errors {
		locations = append(locations, d.Location)
	}
	assert.Equal(t, []string{"parameters.success", "parameters.resultCode", "parameters.gearStatus.resultCode"}, locations)
}

func TestUnsubscribeVehicleData(t *testing.T) {
	rpctest.Run(t, rpctest.Case{
		Create: func() sdlrpc.RPC {
			return NewUnsubscribeVehicleData().SetWindowStatus(true).SetStabilityControlsStatus(true)
		},
		Empty:        func() sdlrpc.RPC { return NewUnsubscribeVehicleData() },
		FunctionName: "UnsubscribeVehicleData",
		MessageType:  sdlrpc.Request,
		Parameters:   map[string]any{KeyWindowStatus: true, KeyStabilityControlsStatus: true},
	})

	rpctest.Run(t, rpctest.Case{
		Create: func() sdlrpc.RPC {
			return NewUnsubscribeVehicleDataResponse().
				SetSuccess(false).
				SetResultCode(enums.ResultIgnored).
				SetRPM(structs.NewVehicleDataResult().
					SetDataType(enums.VehicleDataRPM).
					SetResultCode(enums.VDRCDataNotSubscribed))
		},
		Empty:        func() sdlrpc.RPC { return NewUnsubscribeVehicleDataResponse() },
		FunctionName: "UnsubscribeVehicleData",
		MessageType:  sdlrpc.Response,
		Parameters: map[string]any{
			KeySuccess:    false,
			KeyResultCode: "IGNORED",
			KeyRPM: map[string]any{
				"dataType":   "VEHICLEDATA_RPM",
				"resultCode": "DATA_NOT_SUBSCRIBED",
			},
		},
	})
}

func TestOnVehicleData(t *testing.T) {
	rpctest.Run(t, rpctest.Case{
		Create: func() sdlrpc.RPC {
			return NewOnVehicleData().SetSpeed(88).SetPRNDL(enums.PRNDLDrive)
		},
		Empty:        func() sdlrpc.RPC { return NewOnVehicleData() },
		FunctionName: "OnVehicleData",
		MessageType:  sdlrpc.Notification,
		Parameters:   map[string]any{KeySpeed: 88, KeyPRNDL: "DRIVE"},
	})
}

func TestEnumForwardCompatibility(t *testing.T) {
	tree := map[string]any{
		"response": map[string]any{
			"functionName":  "GetVehicleData",
			"correlationID": 4,
			"parameters": map[string]any{
				KeySuccess:    true,
				KeyResultCode: "SUCCESS",
				KeyPRNDL:      "WARP_DRIVE",
				KeySpeed:      30,
				KeyGearStatus: map[string]any{"actualGear": "WARP_DRIVE", "userSelectedGear": "DRIVE"},
			},
		},
	}

	t.Run("drop", func(t *testing.T) {
		m := NewGetVehicleDataResponse()
		require.NoError(t, m.FromWireForm(tree))
		assert.Nil(t, m.PRNDL())
		assert.Equal(t, 30.0, *m.Speed())
		assert.Nil(t, m.GearStatus().ActualGear())
		assert.Equal(t, enums.PRNDLDrive, *m.GearStatus().UserSelectedGear())
	})

	t.Run("warn", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		c := sdlrpc.NewCodec(enums.Catalogs(), sdlrpc.WithEnumPolicy(sdlrpc.EnumWarn), sdlrpc.WithLogger(zap.New(core)))
		m, err := DecodeWith(c, tree)
		require.NoError(t, err)
		assert.Nil(t, m.(*GetVehicleDataResponse).PRNDL())

		locations := []string{}
		for _, entry := range logs.All() {
			locations = append(locations, entry.ContextMap()["location"].(string))
		}
		assert.ElementsMatch(t, []string{"parameters.prndl", "parameters.gearStatus.actualGear"}, locations)
	})

	t.Run("reject", func(t *testing.T) {
		c := sdlrpc.NewCodec(enums.Catalogs(), sdlrpc.WithEnumPolicy(sdlrpc.EnumReject))
		_, err := DecodeWith(c, tree)
		assert.ErrorIs(t, err, sdlrpc.ErrUnknownEnum)
	})
}

func TestNew(t *testing.T) {
	for _, r := range Routes() {
		m, err := New(r.Function, r.Type)
		require.NoError(t, err)
		assert.Equal(t, string(r.Function), m.RPCMessage().FunctionName())
		assert.Equal(t, r.Type, m.RPCMessage().MessageType())
	}
	assert.Len(t, Routes(), 7)

	m, err := New(enums.GetVehicleData, sdlrpc.Response)
	require.NoError(t, err)
	assert.IsType(t, &GetVehicleDataResponse{}, m)

	_, err = New(enums.OnVehicleData, sdlrpc.Request)
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	orig := NewSubscribeVehicleDataResponse().
		SetSuccess(true).
		SetResultCode(enums.ResultSuccess).
		SetSpeed(structs.NewVehicleDataResult().SetDataType(enums.VehicleDataSpeed).SetResultCode(enums.VDRCSuccess))
	orig.SetCorrelationID(11)

	for _, format := range rpctest.DefaultFormatNames() {
		data, err := sdlrpc.Marshal(format, orig.Message)
		require.NoError(t, err)

		tree, err := sdlrpc.UnmarshalTree(format, data)
		require.NoError(t, err)

		m, err := Decode(tree)
		require.NoError(t, err, format)
		decoded, ok := m.(*SubscribeVehicleDataResponse)
		require.True(t, ok, format)
		assert.True(t, orig.Equal(decoded.Message), format)
		assert.Equal(t, enums.VDRCSuccess, *decoded.Speed().ResultCode())
	}

	// Numeric function ids dispatch too.
	m, err := Decode(map[string]any{
		"notification": map[string]any{"functionName": 32778, "parameters": map[string]any{KeyRPM: 900}},
	})
	require.NoError(t, err)
	assert.Equal(t, 900, *m.(*OnVehicleData).RPM())

	_, err = Decode(map[string]any{"request": map[string]any{"functionName": "Reboot"}})
	assert.Error(t, err)
}

func TestAbsenceUniformity(t *testing.T) {
	m := NewGetVehicleDataResponse().
		SetSpeed(1).
		SetGearStatus(structs.NewGearStatus().SetActualGear(enums.PRNDLPark))

	// Clearing a key is indistinguishable from never setting it.
	m.Parameters().Clear(KeySpeed)
	m.SetGearStatus(nil)

	fresh := NewGetVehicleDataResponse()
	assert.True(t, fresh.Equal(m.Message))
	assert.Equal(t, fresh.ToWireForm(), m.ToWireForm())
	for _, key := range GetVehicleDataResponseDescriptor.Keys() {
		assert.Nil(t, m.Parameters().Get(key), key)
	}
}
