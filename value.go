package sdlrpc

import (
	"fmt"
	"math"
)

// Kind is the declared shape of a parameter. Every field in a descriptor has
// exactly one kind and every stored value reports one.
type Kind int

// Parameter kinds.
const (
	KindBoolean Kind = iota + 1
	KindNumber
	KindString
	KindEnum
	KindStruct
	KindArray
)

var kindNames = map[Kind]string{
	KindBoolean: "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindEnum:    "enum",
	KindStruct:  "struct",
	KindArray:   "array",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a parameter value stored in a Params bag. The set of
// implementations is closed: Bool, Number, String, Enum, *Struct and List.
// A nil Value is the canonical absent value.
type Value interface {
	Kind() Kind
	isValue()
}

// Bool is a boolean parameter value.
type Bool bool

// Number is a numeric parameter value. Integers and floats share one kind on
// the wire, so both are held as float64.
type Number float64

// String is a string parameter value.
type String string

// Enum is a symbolic value from a closed catalog. The wire scalar is owned by
// the catalog named by Catalog.
type Enum struct {
	Catalog string
	Key     string
}

// List is an ordered sequence of values of the same declared element kind.
// A nil List is absent; an empty non-nil List is an empty sequence.
type List []Value

func (Bool) Kind() Kind   { return KindBoolean }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Enum) Kind() Kind   { return KindEnum }
func (List) Kind() Kind   { return KindArray }

func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Enum) isValue()   {}
func (List) isValue()   {}

// detach returns a shallow copy of the list so that callers cannot change
// items behind the codec's checks. Nested structs are shared since their own
// setters check them.
func detach(v Value) Value {
	l, ok := v.(List)
	if !ok || l == nil {
		return v
	}
	return append(make(List, 0, len(l)), l...)
}

func (e Enum) String() string {
	return e.Catalog + "." + e.Key
}

// Int returns the number as an int when it is integral.
func (n Number) Int() (int, bool) {
	f := float64(n)
	if f != math.Trunc(f) || f >= 1<<63 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}

// StructValue wraps s as a Value, mapping a nil struct to the nil Value so it
// reads as absent instead of a typed nil.
func StructValue(s *Struct) Value {
	if s == nil {
		return nil
	}
	return s
}

// IsAbsent reports whether v is the absent value. Typed nils of the
// reference kinds count as absent.
func IsAbsent(v Value) bool {
	switch t := v.(type) {
	case nil:
		return true
	case *Struct:
		return t == nil
	case List:
		return t == nil
	}
	return false
}

// Equal compares two values deeply. Structs compare by descriptor and
// parameters, lists element by element.
func Equal(a, b Value) bool {
	aAbsent, bAbsent := IsAbsent(a), IsAbsent(b)
	if aAbsent || bAbsent {
		return aAbsent == bAbsent
	}

	switch av := a.(type) {
	case Bool, Number, String, Enum:
		return a == b
	case *Struct:
		bv, ok := b.(*Struct)
		return ok && av.Equal(bv)
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// cloneValue deep copies structs and lists; scalars are immutable.
func cloneValue(v Value) Value {
	switch t := v.(type) {
	case *Struct:
		if t == nil {
			return nil
		}
		return t.Clone()
	case List:
		if t == nil {
			return List(nil)
		}
		out := make(List, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}
