package sdlrpc

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// EnumPolicy controls what decoding does with enum wire values that are not
// in the field's catalog. Newer peers may send values an older catalog does
// not know, so the default drops them instead of failing the message.
type EnumPolicy int

const (
	// EnumDrop decodes unknown values as absent.
	EnumDrop EnumPolicy = iota

	// EnumWarn decodes unknown values as absent and logs a warning.
	EnumWarn

	// EnumReject fails decoding with ErrUnknownEnum.
	EnumReject
)

var enumPolicyNames = []string{"drop", "warn", "reject"}

func (p EnumPolicy) String() string {
	if int(p) >= 0 && int(p) < len(enumPolicyNames) {
		return enumPolicyNames[p]
	}
	return fmt.Sprintf("EnumPolicy(%d)", int(p))
}

// ParseEnumPolicy parses `drop`, `warn` or `reject`.
func ParseEnumPolicy(s string) (EnumPolicy, error) {
	for i, name := range enumPolicyNames {
		if strings.EqualFold(s, name) {
			return EnumPolicy(i), nil
		}
	}
	return EnumDrop, fmt.Errorf("unknown enum policy %q, expected one of %s", s, strings.Join(enumPolicyNames, ", "))
}

// Codec converts between wire trees and in-memory values, driven by field
// declarations. It is a pure function of its catalogs and policy, so a codec
// can be shared between goroutines.
type Codec struct {
	catalogs CatalogSet
	policy   EnumPolicy
	logger   *zap.Logger
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithEnumPolicy sets the unknown enum policy.
func WithEnumPolicy(p EnumPolicy) CodecOption {
	return func(c *Codec) {
		c.policy = p
	}
}

// WithLogger sets the logger used for dropped values.
func WithLogger(l *zap.Logger) CodecOption {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

// CodecConfig holds codec settings as read from configuration, e.g. by
// viper or mapstructure.
type CodecConfig struct {
	EnumPolicy string `mapstructure:"enum-policy" json:"enumPolicy,omitempty"`
}

// Options converts the config into codec options.
func (cfg CodecConfig) Options() ([]CodecOption, error) {
	if cfg.EnumPolicy == "" {
		return nil, nil
	}
	p, err := ParseEnumPolicy(cfg.EnumPolicy)
	if err != nil {
		return nil, err
	}
	return []CodecOption{WithEnumPolicy(p)}, nil
}

// NewCodec creates a codec resolving enums against catalogs.
func NewCodec(catalogs CatalogSet, opts ...CodecOption) *Codec {
	c := &Codec{
		catalogs: catalogs,
		policy:   EnumDrop,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	defaultCodecMu   sync.Mutex
	defaultCodecOpts []CodecOption
	defaultCodec     *Codec
)

// DefaultCodec returns a codec over the registered default catalogs, using
// the options from SetDefaultCodecOptions.
func DefaultCodec() *Codec {
	defaultCodecMu.Lock()
	defer defaultCodecMu.Unlock()
	if defaultCodec == nil {
		defaultCodec = NewCodec(DefaultCatalogs(), defaultCodecOpts...)
	}
	return defaultCodec
}

// SetDefaultCodecOptions sets the options applied by DefaultCodec.
func SetDefaultCodecOptions(opts ...CodecOption) {
	defaultCodecMu.Lock()
	defer defaultCodecMu.Unlock()
	defaultCodecOpts = opts
	defaultCodec = nil
}

func resetDefaultCodec() {
	defaultCodecMu.Lock()
	defer defaultCodecMu.Unlock()
	defaultCodec = nil
}

// Catalogs returns the codec's catalogs.
func (c *Codec) Catalogs() CatalogSet {
	return c.catalogs
}

// EnumPolicy returns the unknown enum policy.
func (c *Codec) EnumPolicy() EnumPolicy {
	return c.policy
}

// Logger returns the codec's logger.
func (c *Codec) Logger() *zap.Logger {
	return c.logger
}

func (c *Codec) catalog(loc string, name string) (*Catalog, error) {
	cat := c.catalogs.Lookup(name)
	if cat == nil {
		return nil, NewErrorDetail(ErrUnknownCatalog, loc, name, "unknown enum catalog")
	}
	return cat, nil
}

func describeValue(v Value) any {
	switch t := v.(type) {
	case Enum:
		return t.String()
	case *Struct:
		return "struct<" + t.desc.Name + ">"
	case List:
		return fmt.Sprintf("array[%d]", len(t))
	case nil:
		return nil
	}
	return v
}

func shapeError(loc string, f *Field, v Value, msg string) error {
	if msg == "" {
		msg = "expected " + f.TypeName()
	}
	return NewErrorDetail(ErrShape, loc, describeValue(v), msg)
}

// Check verifies that v may be stored under f. Nested structs are checked
// by descriptor identity only, since their own setters already checked
// their contents.
func (c *Codec) Check(f *Field, v Value) error {
	return c.check(f.Key, f, v)
}

func (c *Codec) check(loc string, f *Field, v Value) error {
	if IsAbsent(v) {
		return nil
	}
	if v.Kind() != f.Kind {
		return shapeError(loc, f, v, "")
	}

	switch f.Kind {
	case KindNumber:
		n := float64(v.(Number))
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return shapeError(loc, f, v, "number must be finite")
		}
	case KindEnum:
		e := v.(Enum)
		if e.Catalog != f.Enum {
			return shapeError(loc, f, v, "expected "+f.TypeName()+" but got enum<"+e.Catalog+">")
		}
		cat, err := c.catalog(loc, f.Enum)
		if err != nil {
			return err
		}
		if !cat.Has(e.Key) {
			return shapeError(loc, f, v, e.Key+" is not a member of "+f.Enum)
		}
	case KindStruct:
		s := v.(*Struct)
		if s.desc != f.Struct {
			return shapeError(loc, f, v, "")
		}
	case KindArray:
		for i, item := range v.(List) {
			itemLoc := fmt.Sprintf("%s[%d]", loc, i)
			if IsAbsent(item) {
				return shapeError(itemLoc, f.Elem, item, "array items cannot be absent")
			}
			if err := c.check(itemLoc, f.Elem, item); err != nil {
				return err
			}
		}
	}
	return nil
}

// Encode returns the wire form of v. Absent values encode to nil.
func (c *Codec) Encode(f *Field, v Value) (any, error) {
	return c.encode(f.Key, f, v)
}

func (c *Codec) encode(loc string, f *Field, v Value) (any, error) {
	if IsAbsent(v) {
		return nil, nil
	}
	if err := c.check(loc, f, v); err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case Bool:
		return bool(t), nil
	case Number:
		return normalizeFloat(float64(t)), nil
	case String:
		return string(t), nil
	case Enum:
		wire, _ := c.catalogs.Lookup(t.Catalog).ValueForKey(t.Key)
		return wire, nil
	case *Struct:
		return c.encodeParams(loc, t)
	case List:
		out := make([]any, 0, len(t))
		for i, item := range t {
			wire, err := c.encode(fmt.Sprintf("%s[%d]", loc, i), f.Elem, item)
			if err != nil {
				return nil, err
			}
			out = append(out, wire)
		}
		return out, nil
	}
	return nil, shapeError(loc, f, v, "")
}

func (c *Codec) encodeParams(loc string, s *Struct) (map[string]any, error) {
	out := make(map[string]any, s.params.Len())
	for i := range s.desc.fields {
		f := &s.desc.fields[i]
		v := s.params.Get(f.Key)
		if IsAbsent(v) {
			continue
		}
		wire, err := c.encode(joinLocation(loc, f.Key), f, v)
		if err != nil {
			return nil, err
		}
		out[f.Key] = wire
	}
	return out, nil
}

// Decode converts a wire value to its in-memory form. Values that do not fit
// the declaration decode to absent rather than failing, so one bad field
// never aborts its siblings. Only EnumReject and missing catalogs produce
// errors.
func (c *Codec) Decode(f *Field, raw any) (Value, error) {
	return c.decode(f.Key, f, raw)
}

func (c *Codec) decode(loc string, f *Field, raw any) (Value, error) {
	if raw == nil {
		return nil, nil
	}

	switch f.Kind {
	case KindBoolean:
		if b, ok := raw.(bool); ok {
			return Bool(b), nil
		}
	case KindNumber:
		if n, ok := asFloat(raw); ok {
			return Number(n), nil
		}
	case KindString:
		if s, ok := raw.(string); ok {
			return String(s), nil
		}
	case KindEnum:
		return c.decodeEnum(loc, f, raw)
	case KindStruct:
		m, ok := asMap(raw)
		if !ok {
			break
		}
		s, err := c.decodeStruct(loc, f.Struct, m)
		if err != nil || s == nil {
			return nil, err
		}
		return s, nil
	case KindArray:
		items, ok := asSlice(raw)
		if !ok {
			break
		}
		out := make(List, 0, len(items))
		for i, item := range items {
			v, err := c.decode(fmt.Sprintf("%s[%d]", loc, i), f.Elem, item)
			if err != nil {
				return nil, err
			}
			if !IsAbsent(v) {
				out = append(out, v)
			}
		}
		return out, nil
	}

	c.logger.Debug("dropping malformed value",
		zap.String("location", loc),
		zap.String("expected", f.TypeName()),
		zap.Any("value", raw),
	)
	return nil, nil
}

func (c *Codec) decodeEnum(loc string, f *Field, raw any) (Value, error) {
	cat, err := c.catalog(loc, f.Enum)
	if err != nil {
		return nil, err
	}
	if key, ok := cat.KeyForValue(raw); ok {
		return Enum{Catalog: cat.name, Key: key}, nil
	}

	switch c.policy {
	case EnumReject:
		return nil, NewErrorDetail(ErrUnknownEnum, loc, raw, "unrecognized "+f.Enum+" value")
	case EnumWarn:
		c.logger.Warn("dropping unrecognized enum value",
			zap.String("location", loc),
			zap.String("catalog", f.Enum),
			zap.Any("value", raw),
		)
	}
	return nil, nil
}

// DecodeStruct decodes a wire mapping into a new struct of descriptor d. An
// empty or absent mapping decodes to nil.
func (c *Codec) DecodeStruct(d *Descriptor, raw any) (*Struct, error) {
	m, ok := asMap(raw)
	if !ok {
		return nil, nil
	}
	return c.decodeStruct("", d, m)
}

func (c *Codec) decodeStruct(loc string, d *Descriptor, m map[string]any) (*Struct, error) {
	if len(m) == 0 {
		return nil, nil
	}
	s := c.NewStruct(d)
	if err := c.decodeInto(loc, s, m); err != nil {
		return nil, err
	}
	if s.params.Len() == 0 {
		return nil, nil
	}
	return s, nil
}

// decodeInto fills s from m. Keys m carries that s does not declare are
// ignored.
func (c *Codec) decodeInto(loc string, s *Struct, m map[string]any) error {
	for i := range s.desc.fields {
		f := &s.desc.fields[i]
		raw, ok := m[f.Key]
		if !ok {
			continue
		}
		v, err := c.decode(joinLocation(loc, f.Key), f, raw)
		if err != nil {
			return err
		}
		s.params.Set(f.Key, v)
	}
	if ce := c.logger.Check(zap.DebugLevel, "ignoring undeclared keys"); ce != nil {
		var extra []string
		for k := range m {
			if _, ok := s.desc.index[k]; !ok {
				extra = append(extra, k)
			}
		}
		if len(extra) > 0 {
			ce.Write(zap.String("location", loc), zap.Strings("keys", extra))
		}
	}
	return nil
}
