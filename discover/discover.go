// Package discover finds the declared bindings of a target struct.
//
// A target is a pointer to a struct, typically a package-level singleton.
// Every field carrying an `env` tag is bound, exported or not, in field
// declaration order. Nested and embedded structs are not traversed.
package discover

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"env-binder/binding"
)

var ErrInvalidTarget = errors.New("target must be a non-nil pointer to a struct")

// Declared is a type-level view of one declared field.
type Declared struct {
	binding.Declaration

	Field    reflect.StructField
	Shadowed bool // an earlier field already declares the same name
}

// Bindings builds a fresh binding map for target.
func Bindings(target reflect.Value) (*binding.Map, error) {
	if target.Kind() != reflect.Pointer || target.IsNil() || target.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidTarget, describe(target))
	}

	elem := target.Elem()
	typ := elem.Type()
	m := binding.NewMap()

	owner := typ.Name()
	if owner == "" {
		owner = "struct"
	}

	for i := range typ.NumField() {
		sf := typ.Field(i)

		decl, ok := binding.Lookup(sf.Tag)
		if !ok {
			continue
		}

		m.Add(binding.NewField(decl, owner+"."+sf.Name, settable(elem.Field(i))))
	}

	return m, nil
}

// DeclaredFields lists the declared fields of the struct type t without needing an instance.
func DeclaredFields(t reflect.Type) ([]Declared, error) {
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidTarget, t)
	}

	seen := map[string]struct{}{}
	var out []Declared

	for i := range t.NumField() {
		sf := t.Field(i)

		decl, ok := binding.Lookup(sf.Tag)
		if !ok {
			continue
		}

		_, shadowed := seen[decl.Name]
		seen[decl.Name] = struct{}{}

		out = append(out, Declared{Declaration: decl, Field: sf, Shadowed: shadowed})
	}

	return out, nil
}

// settable returns an assignable view of v, including unexported fields.
// v must be addressable, which holds for fields reached through a pointer.
func settable(v reflect.Value) reflect.Value {
	if v.CanSet() {
		return v
	}

	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
}

func describe(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	if v.Kind() == reflect.Pointer && v.IsNil() {
		return "nil " + v.Type().String()
	}

	return v.Type().String()
}
