package sdlrpc

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Struct is a named nested data structure: a descriptor plus the parameter
// bag holding its values. Concrete struct types wrap a *Struct and add typed
// accessors for each declared key.
//
//	status := sdlrpc.NewStruct(GearStatusDescriptor)
//	status.MustSet("actualGear", enums.PRNDLDrive.Enum())
type Struct struct {
	desc   *Descriptor
	params *Params
	codec  *Codec
}

// NewStruct creates an empty struct of descriptor d using DefaultCodec.
func NewStruct(d *Descriptor) *Struct {
	return DefaultCodec().NewStruct(d)
}

// NewStruct creates an empty struct of descriptor d bound to this codec.
func (c *Codec) NewStruct(d *Descriptor) *Struct {
	if d == nil {
		panic(fmt.Errorf("struct without descriptor: %w", ErrDescriptorInvalid))
	}
	return &Struct{desc: d, params: NewParams(), codec: c}
}

func (*Struct) Kind() Kind { return KindStruct }
func (*Struct) isValue()   {}

// Descriptor returns the struct's declaration.
func (s *Struct) Descriptor() *Descriptor {
	return s.desc
}

// Codec returns the codec the struct checks and encodes values with.
func (s *Struct) Codec() *Codec {
	return s.codec
}

// Params returns the underlying bag. It must be treated as read-only; use
// Set to modify values so that they are checked.
func (s *Struct) Params() *Params {
	return s.params
}

func (s *Struct) field(key string) (*Field, error) {
	f, ok := s.desc.Field(key)
	if !ok {
		return nil, NewErrorDetail(ErrUnknownKey, key, nil, key+" is not declared by "+s.desc.Name)
	}
	return f, nil
}

// Set stores v under key. A nil v clears the key, even when it is mandatory.
// Undeclared keys fail with ErrUnknownKey and values of the wrong shape with
// ErrShape; on error the struct is left unchanged. Lists are copied, so
// later changes to the caller's slice do not reach the struct.
func (s *Struct) Set(key string, v Value) error {
	f, err := s.field(key)
	if err != nil {
		return err
	}
	v = detach(v)
	if err := s.codec.check(key, f, v); err != nil {
		return err
	}
	s.params.Set(key, v)
	return nil
}

// MustSet is like Set but panics on error. Typed accessors use it since they
// only ever pass declared keys and values of the declared kind.
func (s *Struct) MustSet(key string, v Value) *Struct {
	if err := s.Set(key, v); err != nil {
		panic(err)
	}
	return s
}

// Clear removes key.
func (s *Struct) Clear(key string) *Struct {
	return s.MustSet(key, nil)
}

// Get returns the value under key or nil when absent. Lists are returned as
// copies. Asking for an undeclared key is a programming error and panics
// with ErrUnknownKey.
func (s *Struct) Get(key string) Value {
	if _, err := s.field(key); err != nil {
		panic(err)
	}
	return detach(s.params.Get(key))
}

// Has reports whether a value is present under key.
func (s *Struct) Has(key string) bool {
	return !IsAbsent(s.Get(key))
}

// GetBool returns the boolean under key or nil.
func (s *Struct) GetBool(key string) *bool {
	if v, ok := s.Get(key).(Bool); ok {
		b := bool(v)
		return &b
	}
	return nil
}

// GetNumber returns the number under key or nil.
func (s *Struct) GetNumber(key string) *float64 {
	if v, ok := s.Get(key).(Number); ok {
		n := float64(v)
		return &n
	}
	return nil
}

// GetInt returns the number under key as an int, or nil when it is absent
// or not integral.
func (s *Struct) GetInt(key string) *int {
	if v, ok := s.Get(key).(Number); ok {
		if i, ok := v.Int(); ok {
			return &i
		}
	}
	return nil
}

// GetString returns the string under key or nil.
func (s *Struct) GetString(key string) *string {
	if v, ok := s.Get(key).(String); ok {
		str := string(v)
		return &str
	}
	return nil
}

// GetEnum returns the enum under key or nil.
func (s *Struct) GetEnum(key string) *Enum {
	if v, ok := s.Get(key).(Enum); ok {
		return &v
	}
	return nil
}

// GetStruct returns the nested struct under key or nil.
func (s *Struct) GetStruct(key string) *Struct {
	if v, ok := s.Get(key).(*Struct); ok {
		return v
	}
	return nil
}

// GetList returns the sequence under key or nil. An empty, non-nil list
// means the key holds an empty sequence.
func (s *Struct) GetList(key string) List {
	if v, ok := s.Get(key).(List); ok {
		return v
	}
	return nil
}

// EnumKey returns the key of the enum under key converted to T, or nil.
//
//	gear := sdlrpc.EnumKey[enums.PRNDL](status, "actualGear")
func EnumKey[T ~string](s *Struct, key string) *T {
	e := s.GetEnum(key)
	if e == nil {
		return nil
	}
	out := T(e.Key)
	return &out
}

// Parameters returns the wire form of the struct: a mapping of each present
// key to its encoded value. Values were checked when they were set, so an
// encoding failure means the struct holds values from a codec with different
// catalogs, which panics.
func (s *Struct) Parameters() map[string]any {
	out, err := s.codec.encodeParams("", s)
	if err != nil {
		panic(err)
	}
	return out
}

// MarshalJSON encodes the struct's wire form.
func (s *Struct) MarshalJSON() ([]byte, error) {
	out, err := s.codec.encodeParams("", s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// UnmarshalJSON replaces the struct's values with the decoded wire form. The
// struct must have been created with NewStruct.
func (s *Struct) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return s.SetParameters(raw)
}

// SetParameters replaces the struct's values by decoding a wire mapping.
// Malformed values decode to absent and undeclared keys are ignored. On
// error the struct is left unchanged.
func (s *Struct) SetParameters(raw any) error {
	fresh := s.codec.NewStruct(s.desc)
	if m, ok := asMap(NormalizeTree(raw)); ok {
		if err := s.codec.decodeInto("", fresh, m); err != nil {
			return err
		}
	}
	s.params = fresh.params
	return nil
}

// Validate reports every absent mandatory key, descending into nested
// structs and arrays of structs. The returned error is an *ErrorModel whose
// details unwrap to ErrMissingMandatory.
func (s *Struct) Validate() error {
	model := &ErrorModel{
		Title:  "Invalid parameters",
		Detail: s.desc.Name + " is missing mandatory parameters",
	}
	s.validate("", model)
	return model.OrNil()
}

func (s *Struct) validate(loc string, model *ErrorModel) {
	for i := range s.desc.fields {
		f := &s.desc.fields[i]
		path := joinLocation(loc, f.Key)
		switch v := s.params.Get(f.Key).(type) {
		case nil:
			if f.Mandatory {
				model.Add(NewErrorDetail(ErrMissingMandatory, path, nil, "expected required parameter "+f.Key+" to be present"))
			}
		case *Struct:
			v.validate(path, model)
		case List:
			for j, item := range v {
				if nested, ok := item.(*Struct); ok {
					nested.validate(fmt.Sprintf("%s[%d]", path, j), model)
				}
			}
		}
	}
}

// Equal reports whether both structs share a descriptor and hold deeply
// equal values.
func (s *Struct) Equal(other *Struct) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.desc == other.desc && s.params.Equal(other.params)
}

// Clone returns a deep copy bound to the same descriptor and codec.
func (s *Struct) Clone() *Struct {
	if s == nil {
		return nil
	}
	return &Struct{desc: s.desc, params: s.params.Clone(), codec: s.codec}
}

// DecodeInto copies the struct's wire form into out, which is typically a
// pointer to a Go struct with `json` tags.
//
//	var status struct {
//		ActualGear string `json:"actualGear"`
//	}
//	err := gear.DecodeInto(&status)
func (s *Struct) DecodeInto(out any) error {
	params, err := s.codec.encodeParams("", s)
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(params)
}

func (s *Struct) String() string {
	return fmt.Sprintf("%s%v", s.desc.Name, s.Parameters())
}
