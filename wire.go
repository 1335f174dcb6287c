package sdlrpc

import (
	"encoding/json"
	"fmt"
	"math"
)

// normalizeScalar folds the numeric types produced by the JSON, YAML and CBOR
// decoders into int64 (integral values) or float64 so that wire scalars
// compare equal regardless of which format produced them.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return normalizeUnsigned(uint64(n))
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return normalizeUnsigned(n)
	case float32:
		return normalizeFloat(float64(n))
	case float64:
		return normalizeFloat(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return normalizeFloat(f)
		}
		return n.String()
	}
	return v
}

func normalizeUnsigned(n uint64) any {
	if n > math.MaxInt64 {
		return float64(n)
	}
	return int64(n)
}

func normalizeFloat(f float64) any {
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is strict.
	if f == math.Trunc(f) && f >= math.MinInt64 && f < 1<<63 {
		return int64(f)
	}
	return f
}

func isComparable(v any) bool {
	switch v.(type) {
	case string, int64, float64, bool:
		return true
	}
	return false
}

// asFloat reports the numeric value of a wire scalar.
func asFloat(v any) (float64, bool) {
	switch n := normalizeScalar(v).(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// asMap returns v as a string-keyed mapping. Decoders for YAML and CBOR can
// produce interface-keyed maps, which are converted.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[fmt.Sprint(k)] = item
		}
		return out, true
	}
	return nil, false
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		out := make([]any, len(s))
		for i := range s {
			out[i] = s[i]
		}
		return out, true
	}
	return nil, false
}

// NormalizeTree converts a decoded wire tree from any supported format into
// the canonical shape: string-keyed maps, []any sequences and int64/float64
// numbers.
func NormalizeTree(v any) any {
	if m, ok := asMap(v); ok {
		out := make(map[string]any, len(m))
		for k, item := range m {
			out[k] = NormalizeTree(item)
		}
		return out
	}
	if s, ok := asSlice(v); ok {
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = NormalizeTree(item)
		}
		return out
	}
	return normalizeScalar(v)
}
