package sdlrpc

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a JSON Schema describing the wire form of a descriptor's
// parameters.
type Schema struct {
	Title       string             `json:"title,omitempty"`
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Enum        []any              `json:"enum,omitempty"`
}

// JSONSchema renders d as a JSON Schema. Enum fields list the wire values of
// their catalog when it is in catalogs. Undeclared keys are allowed since
// decoders ignore them.
func (d *Descriptor) JSONSchema(catalogs CatalogSet) *Schema {
	s := &Schema{
		Title:      d.Name,
		Type:       "object",
		Properties: make(map[string]*Schema, len(d.fields)),
	}
	for i := range d.fields {
		f := &d.fields[i]
		s.Properties[f.Key] = f.schema(catalogs)
		if f.Mandatory {
			s.Required = append(s.Required, f.Key)
		}
	}
	return s
}

func (f *Field) schema(catalogs CatalogSet) *Schema {
	switch f.Kind {
	case KindBoolean:
		return &Schema{Type: "boolean"}
	case KindNumber:
		return &Schema{Type: "number"}
	case KindString:
		return &Schema{Type: "string"}
	case KindEnum:
		s := &Schema{Description: f.TypeName()}
		cat := catalogs.Lookup(f.Enum)
		if cat == nil {
			return s
		}
		allStrings, allInts := true, true
		for _, k := range cat.keys {
			wire := cat.byKey[k]
			switch wire.(type) {
			case string:
				allInts = false
			case int64:
				allStrings = false
			default:
				allStrings, allInts = false, false
			}
			s.Enum = append(s.Enum, wire)
		}
		switch {
		case allStrings:
			s.Type = "string"
		case allInts:
			s.Type = "integer"
		}
		return s
	case KindStruct:
		return f.Struct.JSONSchema(catalogs)
	case KindArray:
		return &Schema{Type: "array", Items: f.Elem.schema(catalogs)}
	}
	return &Schema{}
}

// ValidateJSON checks raw JSON wire parameters against d's schema. Unlike
// decoding, which drops malformed values, this reports each of them as an
// ErrorDetail unwrapping to ErrSchema.
func (d *Descriptor) ValidateJSON(catalogs CatalogSet, data []byte) error {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(d.JSONSchema(catalogs)))
	if err != nil {
		return fmt.Errorf("unable to load schema for %s: %w", d.Name, err)
	}
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("unable to validate against schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	model := &ErrorModel{
		Title:  "Invalid parameters",
		Detail: d.Name + " parameters do not match the schema",
	}
	for _, desc := range result.Errors() {
		// Some descriptions start with the context location, so trim it.
		model.Add(NewErrorDetail(ErrSchema,
			strings.TrimPrefix(strings.TrimPrefix(desc.Field(), "(root)"), "."),
			desc.Value(),
			strings.TrimPrefix(desc.Description(), desc.Context().String()+" "),
		))
	}
	return model
}
