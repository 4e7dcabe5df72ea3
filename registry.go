package treebind

import (
	"fmt"
	"reflect"
	"sync"
)

// Field describes one member of a record type: the wire name and an accessor
// returning a pointer to the field inside the given record instance.
//
//	treebind.Field[Person]{Name: "age", Ref: func(p *Person) any { return &p.Age }}
type Field[T any] struct {
	Name string
	Ref  func(*T) any
}

// fieldDesc is the type-erased descriptor stored in the registry.
type fieldDesc struct {
	name string
	typ  reflect.Type       // storage type the accessor points at
	ref  func(rec any) any  // rec is a *T
}

type recordDesc struct {
	rt     reflect.Type
	fields []fieldDesc
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]*recordDesc{}
)

func lookupRecord(rt reflect.Type) (*recordDesc, bool) {
	registryMu.RLock()
	d, ok := registry[rt]
	registryMu.RUnlock()
	return d, ok
}

// Register describes record type T with ordered field descriptors. The whole
// type tree is classified eagerly, so unsupported storage is rejected here
// rather than during Marshal/Unmarshal. Record types referenced by fields
// must already be registered; self-references are allowed.
func Register[T any](fields ...Field[T]) error {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return fmt.Errorf("treebind: Register requires a struct type, got %s", rt)
	}
	if isTupleType(rt) {
		return fmt.Errorf("treebind: tuple type %s does not take descriptors", rt)
	}
	if len(fields) == 0 {
		return fmt.Errorf("treebind: no field descriptors for %s", rt)
	}

	probe := new(T)
	desc := &recordDesc{rt: rt}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("treebind: empty field name for %s", rt)
		}
		if f.Ref == nil {
			return fmt.Errorf("treebind: field %q of %s has no accessor", f.Name, rt)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("treebind: duplicate field %q for %s", f.Name, rt)
		}
		seen[f.Name] = struct{}{}

		pv := reflect.ValueOf(f.Ref(probe))
		if !pv.IsValid() || pv.Kind() != reflect.Pointer || pv.IsNil() {
			return fmt.Errorf("treebind: accessor for field %q of %s must return a pointer into the record", f.Name, rt)
		}
		ref := f.Ref
		desc.fields = append(desc.fields, fieldDesc{
			name: f.Name,
			typ:  pv.Type().Elem(),
			ref:  func(rec any) any { return ref(rec.(*T)) },
		})
	}

	// Publish before classifying so self-referential records resolve.
	registryMu.Lock()
	if _, exists := registry[rt]; exists {
		registryMu.Unlock()
		return fmt.Errorf("treebind: %s is already registered", rt)
	}
	registry[rt] = desc
	registryMu.Unlock()

	for _, fd := range desc.fields {
		if _, err := classify(fd.typ); err != nil {
			registryMu.Lock()
			delete(registry, rt)
			registryMu.Unlock()
			return fmt.Errorf("treebind: field %q of %s: %w", fd.name, rt, err)
		}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister[T any](fields ...Field[T]) {
	if err := Register(fields...); err != nil {
		panic(err)
	}
}
