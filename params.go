package sdlrpc

// Params is the key/value storage behind every struct and message payload.
// Keys are unique. Insertion order is kept for deterministic output but never
// affects equality. Setting an absent value removes the key, so a key that
// was cleared is indistinguishable from one that was never set.
//
// The zero value is an empty bag ready to use. Params is not safe for
// concurrent mutation.
type Params struct {
	keys   []string
	values map[string]Value
}

// NewParams creates an empty bag.
func NewParams() *Params {
	return &Params{values: map[string]Value{}}
}

// Set stores v under key. An absent v removes the key instead.
func (p *Params) Set(key string, v Value) {
	if IsAbsent(v) {
		p.Remove(key)
		return
	}
	if p.values == nil {
		p.values = map[string]Value{}
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// Get returns the value under key, or nil when it is not present.
func (p *Params) Get(key string) Value {
	if p == nil {
		return nil
	}
	return p.values[key]
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[key]
	return ok
}

// Remove deletes key. Removing a missing key is a no-op.
func (p *Params) Remove(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the stored keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Range calls fn for each key in insertion order until fn returns false.
func (p *Params) Range(fn func(key string, v Value) bool) {
	if p == nil {
		return
	}
	for _, k := range p.keys {
		if !fn(k, p.values[k]) {
			return
		}
	}
}

// Equal reports whether both bags hold the same keys with deeply equal
// values.
func (p *Params) Equal(other *Params) bool {
	if p.Len() != other.Len() {
		return false
	}
	equal := true
	p.Range(func(key string, v Value) bool {
		if !other.Has(key) || !Equal(v, other.Get(key)) {
			equal = false
		}
		return equal
	})
	return equal
}

// Clone returns a deep copy of the bag.
func (p *Params) Clone() *Params {
	out := NewParams()
	p.Range(func(key string, v Value) bool {
		out.Set(key, cloneValue(v))
		return true
	})
	return out
}
