package sdlrpc

import (
	"fmt"
	"strings"
)

// MessageType is the role of a message in an exchange.
type MessageType int

// Message types. The ordinal values are the protocol's wire values.
const (
	Request MessageType = iota
	Response
	Notification
)

// MessageTypeCatalog maps message type names to their protocol ordinals.
var MessageTypeCatalog = RegisterCatalog(NewCatalog("MessageType",
	Entry{Key: "request", Wire: 0},
	Entry{Key: "response", Wire: 1},
	Entry{Key: "notification", Wire: 2},
))

func (t MessageType) String() string {
	switch t {
	case Request:
		return "request"
	case Response:
		return "response"
	case Notification:
		return "notification"
	}
	return fmt.Sprintf("MessageType(%d)", int(t))
}

// ParseMessageType accepts a message type name or its wire ordinal.
func ParseMessageType(v any) (MessageType, error) {
	var key string
	if s, ok := v.(string); ok {
		key = strings.ToLower(s)
	} else {
		key, _ = MessageTypeCatalog.KeyForValue(v)
	}
	if !MessageTypeCatalog.Has(key) {
		return 0, fmt.Errorf("unknown message type %v", v)
	}
	switch key {
	case "response":
		return Response, nil
	case "notification":
		return Notification, nil
	}
	return Request, nil
}

// FunctionCatalog is the name of the catalog holding function identifiers.
// Numeric function names on the wire are resolved through it.
const FunctionCatalog = "FunctionID"

// Message is an RPC request, response or notification: a fixed envelope
// (function, type, correlation id) plus a payload struct. Concrete message
// types wrap a *Message and add typed accessors on the payload.
type Message struct {
	typ           MessageType
	fn            Enum
	correlationID *int
	params        *Struct
	codec         *Codec
}

// NewMessage creates an empty message using DefaultCodec.
func NewMessage(typ MessageType, fn Enum, payload *Descriptor) *Message {
	return DefaultCodec().NewMessage(typ, fn, payload)
}

// NewMessage creates an empty message whose payload is shaped by payload.
func (c *Codec) NewMessage(typ MessageType, fn Enum, payload *Descriptor) *Message {
	return &Message{
		typ:    typ,
		fn:     fn,
		params: c.NewStruct(payload),
		codec:  c,
	}
}

// MessageType returns the message type fixed at construction.
func (m *Message) MessageType() MessageType {
	return m.typ
}

// FunctionID returns the function identifier fixed at construction.
func (m *Message) FunctionID() Enum {
	return m.fn
}

// FunctionName returns the function's symbolic name, e.g. `GetVehicleData`.
func (m *Message) FunctionName() string {
	return m.fn.Key
}

// SetCorrelationID sets the id linking a response to its request.
// Notifications carry no correlation id, so this is a no-op for them.
func (m *Message) SetCorrelationID(id int) *Message {
	if m.typ != Notification {
		m.correlationID = &id
	}
	return m
}

// ClearCorrelationID removes the correlation id.
func (m *Message) ClearCorrelationID() *Message {
	m.correlationID = nil
	return m
}

// CorrelationID returns the correlation id, if one is set.
func (m *Message) CorrelationID() (int, bool) {
	if m.correlationID == nil {
		return 0, false
	}
	return *m.correlationID, true
}

// Parameters returns the payload struct.
func (m *Message) Parameters() *Struct {
	return m.params
}

// Codec returns the codec the message was built with.
func (m *Message) Codec() *Codec {
	return m.codec
}

// Validate reports absent mandatory payload keys. Locations are prefixed with
// `parameters`.
func (m *Message) Validate() error {
	model := &ErrorModel{
		Title:  "Invalid parameters",
		Detail: m.fn.Key + " " + m.typ.String() + " is missing mandatory parameters",
	}
	m.params.validate("parameters", model)
	return model.OrNil()
}

// Equal compares envelopes and payloads.
func (m *Message) Equal(other *Message) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.typ != other.typ || m.fn != other.fn {
		return false
	}
	a, aok := m.CorrelationID()
	b, bok := other.CorrelationID()
	if aok != bok || a != b {
		return false
	}
	return m.params.Equal(other.params)
}

// ToWireForm returns the message as a wire tree:
//
//	{"request": {
//		"functionName": "GetVehicleData",
//		"messageType": "request",
//		"correlationID": 1,
//		"parameters": {"gearStatus": true}
//	}}
func (m *Message) ToWireForm() map[string]any {
	body := map[string]any{
		"functionName": m.fn.Key,
		"messageType":  m.typ.String(),
		"parameters":   m.params.Parameters(),
	}
	if id, ok := m.CorrelationID(); ok {
		body["correlationID"] = int64(id)
	}
	return map[string]any{m.typ.String(): body}
}

// FromWireForm replaces the message's correlation id and payload with those
// decoded from tree. The envelope must name the same function and message
// type as m, otherwise ErrEnvelopeMismatch is returned and m is unchanged.
// Optional envelope fields may be missing.
func (m *Message) FromWireForm(tree any) error {
	root, ok := asMap(NormalizeTree(tree))
	if !ok {
		return NewErrorDetail(ErrEnvelopeMismatch, "", nil, "wire form must be a mapping")
	}

	raw, ok := root[m.typ.String()]
	if !ok {
		found := make([]string, 0, len(root))
		for k := range root {
			found = append(found, k)
		}
		return NewErrorDetail(ErrEnvelopeMismatch, m.typ.String(), strings.Join(found, ","), "expected a "+m.typ.String()+" envelope")
	}
	body, ok := asMap(raw)
	if !ok {
		return NewErrorDetail(ErrEnvelopeMismatch, m.typ.String(), nil, "envelope must be a mapping")
	}

	name, err := m.functionName(body["functionName"])
	if err != nil {
		return err
	}
	if name != m.fn.Key {
		return NewErrorDetail(ErrEnvelopeMismatch, "functionName", name, "expected "+m.fn.Key)
	}

	if rawType, ok := body["messageType"]; ok && rawType != nil {
		typ, err := ParseMessageType(rawType)
		if err != nil || typ != m.typ {
			return NewErrorDetail(ErrEnvelopeMismatch, "messageType", rawType, "expected "+m.typ.String())
		}
	}

	payload := m.codec.NewStruct(m.params.desc)
	if params, ok := asMap(body["parameters"]); ok {
		if err := m.codec.decodeInto("parameters", payload, params); err != nil {
			return err
		}
	}

	var id *int
	if m.typ != Notification {
		if n, ok := asFloat(body["correlationID"]); ok {
			if i, ok := Number(n).Int(); ok {
				id = &i
			}
		}
	}

	m.params.params = payload.params
	m.correlationID = id
	return nil
}

func (m *Message) functionName(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", NewErrorDetail(ErrEnvelopeMismatch, "functionName", nil, "missing functionName")
	case string:
		return v, nil
	}
	if cat := m.codec.catalogs.Lookup(FunctionCatalog); cat != nil {
		if key, ok := cat.KeyForValue(raw); ok {
			return key, nil
		}
	}
	return "", NewErrorDetail(ErrEnvelopeMismatch, "functionName", raw, "unknown function id")
}

// ToWireForm returns m's wire tree.
func ToWireForm(m *Message) map[string]any {
	return m.ToWireForm()
}

// FromWireForm decodes tree into expected, which fixes the function and
// message type the tree must carry.
func FromWireForm(tree any, expected *Message) error {
	return expected.FromWireForm(tree)
}

// PeekEnvelope returns the message type and function name of a wire tree
// without decoding its payload, for dispatching to a concrete type.
func PeekEnvelope(tree any, catalogs CatalogSet) (MessageType, string, error) {
	root, ok := asMap(NormalizeTree(tree))
	if !ok || len(root) != 1 {
		return 0, "", NewErrorDetail(ErrEnvelopeMismatch, "", nil, "wire form must hold exactly one envelope")
	}
	for k, raw := range root {
		typ, err := ParseMessageType(k)
		if err != nil {
			return 0, "", NewErrorDetail(ErrEnvelopeMismatch, "", k, "unknown envelope")
		}
		body, ok := asMap(raw)
		if !ok {
			return 0, "", NewErrorDetail(ErrEnvelopeMismatch, k, nil, "envelope must be a mapping")
		}
		m := &Message{typ: typ, codec: NewCodec(catalogs)}
		name, err := m.functionName(body["functionName"])
		if err != nil {
			return 0, "", err
		}
		return typ, name, nil
	}
	return 0, "", nil
}

// RPC is implemented by *Message and by every concrete message type that
// embeds it.
type RPC interface {
	RPCMessage() *Message
}

// RPCMessage returns m, so that concrete types embedding *Message satisfy
// RPC.
func (m *Message) RPCMessage() *Message {
	return m
}
