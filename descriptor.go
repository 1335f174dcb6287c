package sdlrpc

import (
	"fmt"
	"strings"

	"github.com/danielgtaylor/casing"
)

// Field declares one parameter key of a struct or message payload.
type Field struct {
	// Key is the wire key, e.g. `gearStatus`.
	Key string

	// Kind is the declared value kind.
	Kind Kind

	// Mandatory marks keys a well-formed value must carry. It is advisory:
	// setters never enforce it, only Validate does.
	Mandatory bool

	// Enum names the catalog for KindEnum fields.
	Enum string

	// Struct is the nested descriptor for KindStruct fields.
	Struct *Descriptor

	// Elem is the element declaration for KindArray fields. Its Key is
	// ignored.
	Elem *Field
}

// BoolField declares a boolean key.
func BoolField(key string) Field { return Field{Key: key, Kind: KindBoolean} }

// NumberField declares a numeric key.
func NumberField(key string) Field { return Field{Key: key, Kind: KindNumber} }

// StringField declares a string key.
func StringField(key string) Field { return Field{Key: key, Kind: KindString} }

// EnumField declares a key whose values come from the named catalog.
func EnumField(key, catalog string) Field {
	return Field{Key: key, Kind: KindEnum, Enum: catalog}
}

// StructField declares a nested struct key.
func StructField(key string, d *Descriptor) Field {
	return Field{Key: key, Kind: KindStruct, Struct: d}
}

// ArrayField declares an ordered sequence whose items are shaped like elem.
func ArrayField(key string, elem Field) Field {
	elem.Key = ""
	return Field{Key: key, Kind: KindArray, Elem: &elem}
}

// Required returns a copy of the field marked mandatory.
func (f Field) Required() Field {
	f.Mandatory = true
	return f
}

// ConstName returns the generated constant name for the key, e.g.
// `KEY_GEAR_STATUS` for `gearStatus`.
func (f Field) ConstName() string {
	return "KEY_" + casing.Snake(f.Key, strings.ToUpper)
}

// TypeName describes the declared shape, e.g. `enum<PRNDL>` or
// `array<struct<WindowStatus>>`.
func (f Field) TypeName() string {
	switch f.Kind {
	case KindEnum:
		return "enum<" + f.Enum + ">"
	case KindStruct:
		if f.Struct != nil {
			return "struct<" + f.Struct.Name + ">"
		}
	case KindArray:
		if f.Elem != nil {
			return "array<" + f.Elem.TypeName() + ">"
		}
	}
	return f.Kind.String()
}

func (f Field) check(owner string) error {
	where := owner
	if f.Key != "" {
		where = owner + "." + f.Key
	}
	switch f.Kind {
	case KindBoolean, KindNumber, KindString:
	case KindEnum:
		if f.Enum == "" {
			return fmt.Errorf("%s: enum field without catalog: %w", where, ErrDescriptorInvalid)
		}
	case KindStruct:
		if f.Struct == nil {
			return fmt.Errorf("%s: struct field without descriptor: %w", where, ErrDescriptorInvalid)
		}
	case KindArray:
		if f.Elem == nil {
			return fmt.Errorf("%s: array field without element: %w", where, ErrDescriptorInvalid)
		}
		if f.Elem.Kind == KindArray {
			return fmt.Errorf("%s: nested arrays are not supported: %w", where, ErrDescriptorInvalid)
		}
		return f.Elem.check(where + "[]")
	default:
		return fmt.Errorf("%s: unknown kind %v: %w", where, f.Kind, ErrDescriptorInvalid)
	}
	return nil
}

// Descriptor is the static declaration of a struct or payload shape: an
// ordered list of fields. Descriptors are immutable after construction and
// may be shared freely.
type Descriptor struct {
	Name   string
	fields []Field
	index  map[string]int
}

// NewDescriptor builds a descriptor. Malformed declarations are a code
// generation bug and panic.
func NewDescriptor(name string, fields ...Field) *Descriptor {
	d := &Descriptor{
		Name:   name,
		fields: append([]Field(nil), fields...),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range d.fields {
		if f.Key == "" {
			panic(fmt.Errorf("%s: field %d has no key: %w", name, i, ErrDescriptorInvalid))
		}
		if _, ok := d.index[f.Key]; ok {
			panic(fmt.Errorf("%s: duplicate key %s: %w", name, f.Key, ErrDescriptorInvalid))
		}
		if err := f.check(name); err != nil {
			panic(err)
		}
		d.index[f.Key] = i
	}
	return d
}

// Field returns the declaration for key.
func (d *Descriptor) Field(key string) (*Field, bool) {
	i, ok := d.index[key]
	if !ok {
		return nil, false
	}
	return &d.fields[i], true
}

// Fields returns the declarations in order.
func (d *Descriptor) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// Keys returns the declared keys in order.
func (d *Descriptor) Keys() []string {
	keys := make([]string, len(d.fields))
	for i, f := range d.fields {
		keys[i] = f.Key
	}
	return keys
}

// Mandatory returns the keys marked mandatory.
func (d *Descriptor) Mandatory() []string {
	var keys []string
	for _, f := range d.fields {
		if f.Mandatory {
			keys = append(keys, f.Key)
		}
	}
	return keys
}
