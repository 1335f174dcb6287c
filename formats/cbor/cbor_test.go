package cbor

import (
	"bytes"
	"testing"

	"github.com/sdlgo/sdlrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	data := map[any]any{"hello": "world"}

	buf := &bytes.Buffer{}
	require.NoError(t, DefaultCBORFormat.Marshal(buf, data))

	var v any
	require.NoError(t, DefaultCBORFormat.Unmarshal(buf.Bytes(), &v))

	require.Equal(t, data, v)
}

func TestRegistered(t *testing.T) {
	_, err := sdlrpc.LookupFormat("cbor")
	require.NoError(t, err)
	_, err = sdlrpc.LookupFormat("application/cbor")
	require.NoError(t, err)
}

func TestTreeNormalized(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, DefaultCBORFormat.Marshal(buf, map[string]any{
		"request": map[string]any{
			"functionName":  "GetVehicleData",
			"correlationID": 5,
			"parameters":    map[string]any{"speed": 12.5},
		},
	}))

	tree, err := sdlrpc.UnmarshalTree("cbor", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"request": map[string]any{
			"functionName":  "GetVehicleData",
			"correlationID": int64(5),
			"parameters":    map[string]any{"speed": 12.5},
		},
	}, tree)
}
