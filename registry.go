package sdlrpc

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores descriptors by name so that tooling can enumerate every
// declared struct and payload shape. Each concrete type registers its
// descriptor once, typically from a package-level variable initializer.
type Registry interface {
	Register(d *Descriptor) *Descriptor
	Descriptor(name string) *Descriptor
	Names() []string
}

type mapRegistry struct {
	mu          sync.RWMutex
	descriptors map[string]*Descriptor
}

// Register adds d. Registering a different descriptor under an existing name
// means two generated types collide, which panics. Re-registering the same
// descriptor is a no-op.
func (r *mapRegistry) Register(d *Descriptor) *Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.descriptors[d.Name]; ok {
		if existing != d {
			panic(fmt.Errorf("duplicate name: %s: %w", d.Name, ErrDescriptorInvalid))
		}
		return d
	}
	r.descriptors[d.Name] = d
	return d
}

func (r *mapRegistry) Descriptor(name string) *Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.descriptors[name]
}

func (r *mapRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.descriptors))
	for name := range r.descriptors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewMapRegistry creates an empty registry.
func NewMapRegistry() Registry {
	return &mapRegistry{descriptors: map[string]*Descriptor{}}
}

// DefaultRegistry holds every descriptor declared through Declare.
var DefaultRegistry = NewMapRegistry()

// Declare builds a descriptor and registers it in DefaultRegistry.
//
//	var GearStatusDescriptor = sdlrpc.Declare("GearStatus",
//		sdlrpc.EnumField("userSelectedGear", "PRNDL"),
//		sdlrpc.EnumField("actualGear", "PRNDL"),
//	)
func Declare(name string, fields ...Field) *Descriptor {
	return DefaultRegistry.Register(NewDescriptor(name, fields...))
}
