package sdlrpc

import (
	"fmt"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entry is one member of a closed value set: the symbolic key and the
// protocol-fixed scalar it is sent as.
type Entry struct {
	Key  string
	Wire any
}

// Catalog is an immutable, total bidirectional mapping between symbolic keys
// and wire scalars for one closed value set (an enum or the function ids).
type Catalog struct {
	name   string
	keys   []string
	byKey  map[string]any
	byWire map[any]string
}

// NewCatalog builds a catalog. Duplicate keys or wire values are a
// declaration bug and panic.
func NewCatalog(name string, entries ...Entry) *Catalog {
	c := &Catalog{
		name:   name,
		byKey:  make(map[string]any, len(entries)),
		byWire: make(map[any]string, len(entries)),
	}
	for _, e := range entries {
		wire := normalizeScalar(e.Wire)
		if _, ok := c.byKey[e.Key]; ok {
			panic(fmt.Errorf("catalog %s: duplicate key %s", name, e.Key))
		}
		if other, ok := c.byWire[wire]; ok {
			panic(fmt.Errorf("catalog %s: keys %s and %s share wire value %v", name, other, e.Key, e.Wire))
		}
		c.keys = append(c.keys, e.Key)
		c.byKey[e.Key] = wire
		c.byWire[wire] = e.Key
	}
	return c
}

// NewStringCatalog builds a catalog whose wire values are the keys
// themselves, which is how most protocol enums are sent.
func NewStringCatalog(name string, keys ...string) *Catalog {
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Wire: k}
	}
	return NewCatalog(name, entries...)
}

// Name returns the catalog name that descriptors refer to.
func (c *Catalog) Name() string {
	return c.name
}

// Keys returns every key in declaration order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Has reports whether key is a member of the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// ValueForKey returns the wire scalar for key.
func (c *Catalog) ValueForKey(key string) (any, bool) {
	v, ok := c.byKey[key]
	return v, ok
}

// KeyForValue returns the key for a wire scalar. Numeric wire values are
// matched regardless of their Go numeric type.
func (c *Catalog) KeyForValue(wire any) (string, bool) {
	wire = normalizeScalar(wire)
	if wire == nil {
		return "", false
	}
	if !isComparable(wire) {
		return "", false
	}
	k, ok := c.byWire[wire]
	return k, ok
}

// Enum returns the symbolic value for key. Unknown keys panic since typed
// accessors only ever pass declared members.
func (c *Catalog) Enum(key string) Enum {
	if !c.Has(key) {
		panic(fmt.Errorf("catalog %s: unknown key %s", c.name, key))
	}
	return Enum{Catalog: c.name, Key: key}
}

// CatalogSet is the read-only collection of catalogs a codec resolves enum
// fields against.
type CatalogSet map[string]*Catalog

// NewCatalogSet indexes catalogs by name.
func NewCatalogSet(catalogs ...*Catalog) CatalogSet {
	s := make(CatalogSet, len(catalogs))
	for _, c := range catalogs {
		s[c.name] = c
	}
	return s
}

// Lookup returns the named catalog or nil.
func (s CatalogSet) Lookup(name string) *Catalog {
	return s[name]
}

// Names returns the catalog names sorted alphabetically.
func (s CatalogSet) Names() []string {
	names := maps.Keys(s)
	slices.Sort(names)
	return names
}

// With returns a new set holding both the receiver's catalogs and the given
// ones, later catalogs replacing earlier ones of the same name.
func (s CatalogSet) With(catalogs ...*Catalog) CatalogSet {
	out := maps.Clone(s)
	if out == nil {
		out = CatalogSet{}
	}
	for _, c := range catalogs {
		out[c.name] = c
	}
	return out
}

var (
	defaultCatalogsMu sync.RWMutex
	defaultCatalogs   = CatalogSet{}
)

// RegisterCatalog adds c to the process-wide default catalog set used by
// DefaultCodec. Catalog packages call it from init, the same way format
// packages register themselves in DefaultFormats.
func RegisterCatalog(c *Catalog) *Catalog {
	defaultCatalogsMu.Lock()
	if existing, ok := defaultCatalogs[c.name]; ok && existing != c {
		defaultCatalogsMu.Unlock()
		panic(fmt.Errorf("catalog %s registered twice", c.name))
	}
	defaultCatalogs = defaultCatalogs.With(c)
	defaultCatalogsMu.Unlock()
	resetDefaultCodec()
	return c
}

// DefaultCatalogs returns a snapshot of the registered catalogs.
func DefaultCatalogs() CatalogSet {
	defaultCatalogsMu.RLock()
	defer defaultCatalogsMu.RUnlock()
	return maps.Clone(defaultCatalogs)
}
