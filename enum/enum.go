// Package enum keeps the registry of enumeration types.
//
// Go has no enumeration kind, so a named type becomes an enumeration by
// registering its members:
//
//	type Level int
//
//	const (
//		LevelDebug Level = iota
//		LevelInfo
//	)
//
//	func init() { enum.Register(LevelDebug, LevelInfo) }
//
// A member's name is its String() result, or the value itself for string kinds
// that do not implement fmt.Stringer. Names are matched case-insensitively.
package enum

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var ErrNoMember = errors.New("value is not a member of the enumeration")

var registry = struct {
	sync.RWMutex
	members map[reflect.Type]*Members
}{members: map[reflect.Type]*Members{}}

// Members are the named values of one enumeration type, in registration order.
type Members struct {
	typ    reflect.Type
	names  []string
	values []reflect.Value
}

// Register records members as the complete member set of T, replacing any earlier registration.
// It panics when a member has no usable name, since that's a programming error found at init.
func Register[T comparable](members ...T) {
	m := &Members{typ: reflect.TypeFor[T]()}

	for _, member := range members {
		m.names = append(m.names, nameOf(member))
		m.values = append(m.values, reflect.ValueOf(member))
	}

	registry.Lock()
	defer registry.Unlock()
	registry.members[m.typ] = m
}

// Unregister removes the registration of T, if any.
func Unregister[T comparable]() {
	registry.Lock()
	defer registry.Unlock()
	delete(registry.members, reflect.TypeFor[T]())
}

// Lookup returns the members registered for rtype.
func Lookup(rtype reflect.Type) (*Members, bool) {
	registry.RLock()
	defer registry.RUnlock()

	m, ok := registry.members[rtype]
	return m, ok
}

// Type returns the enumeration type.
func (m *Members) Type() reflect.Type { return m.typ }

// Names returns member names in registration order.
func (m *Members) Names() []string {
	return append([]string(nil), m.names...)
}

// Parse returns the first member whose name equals raw ignoring case.
func (m *Members) Parse(raw string) (reflect.Value, error) {
	for i, name := range m.names {
		if strings.EqualFold(name, raw) {
			return m.values[i], nil
		}
	}

	return reflect.Value{}, fmt.Errorf("%w: %q is not one of %s [%s]",
		ErrNoMember, raw, m.typ, strings.Join(m.names, ", "))
}

func nameOf(member any) string {
	if s, ok := member.(fmt.Stringer); ok {
		return s.String()
	}

	v := reflect.ValueOf(member)
	if v.Kind() == reflect.String {
		return v.String()
	}

	panic(fmt.Sprintf("enum: member %v of %T has no name: implement fmt.Stringer", member, member))
}
