package sdlrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Format represents a wire encoding for message trees, e.g. JSON.
type Format struct {
	// Marshal a wire tree to the given writer.
	Marshal func(writer io.Writer, v any) error

	// Unmarshal a wire tree into `v` from the given bytes.
	Unmarshal func(data []byte, v any) error
}

// DefaultJSONFormat encodes wire trees as JSON.
var DefaultJSONFormat = Format{
	Marshal: func(w io.Writer, v any) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	},
	Unmarshal: json.Unmarshal,
}

// DefaultYAMLFormat encodes wire trees as YAML.
var DefaultYAMLFormat = Format{
	Marshal: func(w io.Writer, v any) error {
		return yaml.NewEncoder(w).Encode(v)
	},
	Unmarshal: yaml.Unmarshal,
}

// DefaultFormats maps format names to formats. To add support for CBOR,
// simply import it:
//
//	import _ "github.com/sdlgo/sdlrpc/formats/cbor"
var DefaultFormats = map[string]Format{
	"application/json": DefaultJSONFormat,
	"json":             DefaultJSONFormat,
	"application/yaml": DefaultYAMLFormat,
	"yaml":             DefaultYAMLFormat,
}

// LookupFormat returns the named format from DefaultFormats.
func LookupFormat(name string) (Format, error) {
	f, ok := DefaultFormats[name]
	if !ok {
		return Format{}, fmt.Errorf("%w: %s", ErrFormat, name)
	}
	return f, nil
}

// Marshal encodes m's wire form using the named format.
func Marshal(format string, m *Message) ([]byte, error) {
	f, err := LookupFormat(format)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := f.Marshal(buf, m.ToWireForm()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data in the named format into m. See
// Message.FromWireForm for envelope checks.
func Unmarshal(format string, data []byte, m *Message) error {
	tree, err := UnmarshalTree(format, data)
	if err != nil {
		return err
	}
	return m.FromWireForm(tree)
}

// UnmarshalTree decodes data in the named format into a normalized wire
// tree.
func UnmarshalTree(format string, data []byte) (any, error) {
	f, err := LookupFormat(format)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := f.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return NormalizeTree(tree), nil
}
