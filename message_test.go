package sdlrpc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPing(c *Codec, typ MessageType) *Message {
	return c.NewMessage(typ, testFunctions.Enum("Ping"), shapeDesc)
}

func TestMessageTypeParse(t *testing.T) {
	for _, item := range []struct {
		in       any
		expected MessageType
	}{
		{"request", Request},
		{"Response", Response},
		{"notification", Notification},
		{0, Request},
		{int64(1), Response},
		{2.0, Notification},
	} {
		typ, err := ParseMessageType(item.in)
		require.NoError(t, err, "%v", item.in)
		assert.Equal(t, item.expected, typ)
	}

	for _, bad := range []any{"event", 3, nil, true} {
		_, err := ParseMessageType(bad)
		assert.Error(t, err, "%v", bad)
	}

	assert.Equal(t, "MessageType(7)", MessageType(7).String())
}

func TestMessageEnvelope(t *testing.T) {
	c := newTestCodec()
	m := newPing(c, Request)
	assert.Equal(t, Request, m.MessageType())
	assert.Equal(t, "Ping", m.FunctionName())
	assert.Equal(t, testFunctions.Enum("Ping"), m.FunctionID())
	assert.Same(t, c, m.Codec())
	assert.Same(t, m, m.RPCMessage())

	_, ok := m.CorrelationID()
	assert.False(t, ok)

	m.SetCorrelationID(12)
	id, ok := m.CorrelationID()
	assert.True(t, ok)
	assert.Equal(t, 12, id)

	m.ClearCorrelationID()
	_, ok = m.CorrelationID()
	assert.False(t, ok)
}

func TestNotificationIgnoresCorrelationID(t *testing.T) {
	m := newPing(newTestCodec(), Notification)
	m.SetCorrelationID(3)
	_, ok := m.CorrelationID()
	assert.False(t, ok)
	assert.NotContains(t, m.ToWireForm()["notification"], "correlationID")
}

func TestMessageToWireForm(t *testing.T) {
	c := newTestCodec()
	m := newPing(c, Response).SetCorrelationID(5)
	m.Parameters().MustSet("name", String("n")).MustSet("level", testLevels.Enum("HIGH"))

	assert.Equal(t, map[string]any{
		"response": map[string]any{
			"functionName":  "Ping",
			"messageType":   "response",
			"correlationID": int64(5),
			"parameters": map[string]any{
				"name":  "n",
				"level": int64(2),
			},
		},
	}, ToWireForm(m))

	empty := newPing(c, Request).ToWireForm()
	assert.Equal(t, map[string]any{}, empty["request"].(map[string]any)["parameters"])
}

func TestMessageCorrelationIDOutOfRange(t *testing.T) {
	c := newTestCodec()
	m := newPing(c, Request).SetCorrelationID(1)

	require.NoError(t, m.FromWireForm(map[string]any{
		"request": map[string]any{
			"functionName":  "Ping",
			"correlationID": math.Pow(2, 63),
		},
	}))

	_, ok := m.CorrelationID()
	assert.False(t, ok)
}

func TestMessageFromWireForm(t *testing.T) {
	c := newTestCodec()
	m := newPing(c, Request)

	require.NoError(t, FromWireForm(map[string]any{
		"request": map[string]any{
			"functionName":  "Ping",
			"correlationID": 9,
			"parameters": map[string]any{
				"name":   "n",
				"filled": "yes",
				"extra":  1,
			},
		},
	}, m))

	id, ok := m.CorrelationID()
	assert.True(t, ok)
	assert.Equal(t, 9, id)
	assert.Equal(t, String("n"), m.Parameters().Get("name"))
	assert.Nil(t, m.Parameters().Get("filled"), "malformed values decode to absent")
}

func TestMessageFromWireFormNumericFunction(t *testing.T) {
	m := newPing(newTestCodec(), Request)
	require.NoError(t, m.FromWireForm(map[string]any{
		"request": map[string]any{"functionName": 1, "messageType": 0},
	}))
	assert.Zero(t, m.Parameters().Params().Len())
}

func TestMessageFromWireFormMismatch(t *testing.T) {
	c := newTestCodec()
	for _, item := range []struct {
		name string
		tree any
	}{
		{"not a mapping", []any{}},
		{"wrong type", map[string]any{"response": map[string]any{"functionName": "Ping"}}},
		{"wrong function", map[string]any{"request": map[string]any{"functionName": "Pong"}}},
		{"wrong numeric function", map[string]any{"request": map[string]any{"functionName": 2}}},
		{"unknown numeric function", map[string]any{"request": map[string]any{"functionName": 99}}},
		{"missing function", map[string]any{"request": map[string]any{"parameters": map[string]any{}}}},
		{"wrong inner type", map[string]any{"request": map[string]any{"functionName": "Ping", "messageType": "response"}}},
		{"body not a mapping", map[string]any{"request": "Ping"}},
	} {
		t.Run(item.name, func(t *testing.T) {
			m := newPing(c, Request).SetCorrelationID(1)
			m.Parameters().MustSet("name", String("keep"))

			err := m.FromWireForm(item.tree)
			assert.ErrorIs(t, err, ErrEnvelopeMismatch)

			// The message is unchanged.
			id, _ := m.CorrelationID()
			assert.Equal(t, 1, id)
			assert.Equal(t, String("keep"), m.Parameters().Get("name"))
		})
	}
}

func TestMessageRoundTrip(t *testing.T) {
	c := newTestCodec()
	orig := newPing(c, Request).SetCorrelationID(77)
	orig.Parameters().
		MustSet("name", String("n")).
		MustSet("origin", newPoint(c, 1, 2)).
		MustSet("points", List{newPoint(c, 3, 4).MustSet("color", testColors.Enum("RED"))}).
		MustSet("tags", List{})

	decoded := newPing(c, Request)
	require.NoError(t, decoded.FromWireForm(orig.ToWireForm()))
	assert.True(t, orig.Equal(decoded))
	assert.Equal(t, orig.ToWireForm(), decoded.ToWireForm())

	// Wrappers holding the payload see the decoded values.
	payload := decoded.Parameters()
	require.NoError(t, decoded.FromWireForm(map[string]any{
		"request": map[string]any{"functionName": "Ping"},
	}))
	assert.Zero(t, payload.Params().Len())
}

func TestMessageValidate(t *testing.T) {
	m := newPing(newTestCodec(), Request)
	err := m.Validate()
	var model *ErrorModel
	require.ErrorAs(t, err, &model)
	require.Len(t, model.Errors, 1)
	assert.Equal(t, "parameters.name", model.Errors[0].Location)
	assert.ErrorIs(t, err, ErrMissingMandatory)

	m.Parameters().MustSet("name", String("n"))
	assert.NoError(t, m.Validate())
}

func TestMessageEqual(t *testing.T) {
	c := newTestCodec()
	a := newPing(c, Request)
	b := newPing(c, Request)
	assert.True(t, a.Equal(b))

	b.SetCorrelationID(1)
	assert.False(t, a.Equal(b))
	a.SetCorrelationID(1)
	assert.True(t, a.Equal(b))

	assert.False(t, a.Equal(newPing(c, Response).SetCorrelationID(1)))
	assert.False(t, a.Equal(c.NewMessage(Request, testFunctions.Enum("Pong"), shapeDesc).SetCorrelationID(1)))

	var nilMessage *Message
	assert.True(t, nilMessage.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestPeekEnvelope(t *testing.T) {
	typ, name, err := PeekEnvelope(map[string]any{
		"response": map[string]any{"functionName": 2},
	}, testCatalogs)
	require.NoError(t, err)
	assert.Equal(t, Response, typ)
	assert.Equal(t, "Pong", name)

	for _, bad := range []any{
		nil,
		map[string]any{},
		map[string]any{"request": map[string]any{}, "response": map[string]any{}},
		map[string]any{"event": map[string]any{"functionName": "Ping"}},
		map[string]any{"request": 1},
	} {
		_, _, err := PeekEnvelope(bad, testCatalogs)
		assert.ErrorIs(t, err, ErrEnvelopeMismatch, "%v", bad)
	}
}
