// Package rpctest provides the uniform checks every concrete message type
// must pass: it builds the message, compares its wire parameters with the
// expected tree, checks the envelope of an empty instance and round-trips
// the message through every registered format.
package rpctest

import (
	"testing"

	"github.com/sdlgo/sdlrpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TB is a subset of the `testing.TB` interface used by the helpers and
// implemented by the `*testing.T` and `*testing.B` structs.
type TB interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// Case describes one concrete message type under test.
type Case struct {
	// Create returns a message with the parameters under test set.
	Create func() sdlrpc.RPC

	// Empty returns a message of the same type with nothing set.
	Empty func() sdlrpc.RPC

	// FunctionName and MessageType are the expected envelope.
	FunctionName string
	MessageType  sdlrpc.MessageType

	// Parameters is the expected wire form of the created message's payload.
	Parameters map[string]any

	// Formats to round-trip through. Defaults to every key of
	// sdlrpc.DefaultFormats that is not a content type.
	Formats []string
}

// Run runs every check as a subtest of t.
func Run(t *testing.T, c Case) {
	t.Run("Parameters", func(t *testing.T) { AssertParameters(t, c) })
	t.Run("Envelope", func(t *testing.T) { AssertEnvelope(t, c) })
	t.Run("Empty", func(t *testing.T) { AssertEmpty(t, c) })
	t.Run("CorrelationID", func(t *testing.T) { AssertCorrelationID(t, c) })
	t.Run("RoundTrip", func(t *testing.T) { AssertRoundTrip(t, c) })
	t.Run("Mismatch", func(t *testing.T) { AssertMismatch(t, c) })
}

// AssertParameters checks the created message's wire parameters.
func AssertParameters(t TB, c Case) {
	t.Helper()
	m := c.Create().RPCMessage()
	assert.Equal(t, sdlrpc.NormalizeTree(c.Parameters), sdlrpc.NormalizeTree(m.Parameters().Parameters()))
	assert.Equal(t, sdlrpc.NormalizeTree(c.Parameters), sdlrpc.NormalizeTree(m.ToWireForm()[c.MessageType.String()].(map[string]any)["parameters"]))
}

// AssertEnvelope checks the created message's function and type.
func AssertEnvelope(t TB, c Case) {
	t.Helper()
	m := c.Create().RPCMessage()
	assert.Equal(t, c.FunctionName, m.FunctionName())
	assert.Equal(t, c.MessageType, m.MessageType())
}

// AssertEmpty checks that an empty instance keeps its envelope and reports
// every declared key as absent.
func AssertEmpty(t TB, c Case) {
	t.Helper()
	m := c.Empty().RPCMessage()
	require.NotNil(t, m)
	assert.Equal(t, c.FunctionName, m.FunctionName())
	assert.Equal(t, c.MessageType, m.MessageType())

	_, ok := m.CorrelationID()
	assert.False(t, ok, "empty message has a correlation id")

	payload := m.Parameters()
	assert.Zero(t, payload.Params().Len())
	for _, key := range payload.Descriptor().Keys() {
		assert.Nil(t, payload.Get(key), "expected %s to be absent", key)
	}
	assert.Empty(t, payload.Parameters())
}

// AssertCorrelationID checks that requests and responses keep a correlation
// id and notifications ignore it.
func AssertCorrelationID(t TB, c Case) {
	t.Helper()
	m := c.Create().RPCMessage()
	m.SetCorrelationID(42)
	id, ok := m.CorrelationID()
	body := m.ToWireForm()[c.MessageType.String()].(map[string]any)
	if c.MessageType == sdlrpc.Notification {
		assert.False(t, ok)
		assert.NotContains(t, body, "correlationID")
		return
	}
	assert.True(t, ok)
	assert.Equal(t, 42, id)
	assert.EqualValues(t, 42, body["correlationID"])
}

// AssertRoundTrip encodes the created message with each format and decodes
// it into an empty instance, which must then equal the original.
func AssertRoundTrip(t TB, c Case) {
	t.Helper()
	formats := c.Formats
	if len(formats) == 0 {
		formats = DefaultFormatNames()
	}

	orig := c.Create().RPCMessage()
	orig.SetCorrelationID(7)

	require.NoError(t, sdlrpc.FromWireForm(sdlrpc.ToWireForm(orig), c.Empty().RPCMessage()))

	for _, name := range formats {
		data, err := sdlrpc.Marshal(name, orig)
		require.NoError(t, err, name)

		decoded := c.Empty().RPCMessage()
		require.NoError(t, sdlrpc.Unmarshal(name, data, decoded), name)
		assert.True(t, orig.Equal(decoded), "%s round trip changed the message:\n%v\n%v", name, orig.ToWireForm(), decoded.ToWireForm())

		if name == "json" {
			again, err := sdlrpc.Marshal(name, decoded)
			require.NoError(t, err, name)
			assert.JSONEq(t, string(data), string(again))
		}
	}
}

// AssertMismatch checks that the wire form of the created message is
// rejected when its function name is altered.
func AssertMismatch(t TB, c Case) {
	t.Helper()
	tree := c.Create().RPCMessage().ToWireForm()
	tree[c.MessageType.String()].(map[string]any)["functionName"] = c.FunctionName + "Other"

	err := c.Empty().RPCMessage().FromWireForm(tree)
	assert.ErrorIs(t, err, sdlrpc.ErrEnvelopeMismatch)
}

// DefaultFormatNames returns the short names of the registered formats,
// e.g. `json` and `yaml`.
func DefaultFormatNames() []string {
	names := []string{}
	for _, name := range []string{"json", "yaml", "cbor"} {
		if _, ok := sdlrpc.DefaultFormats[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
