package envvars

import "os"

// Source is a read-only environment table.
type Source interface {
	Lookup(name string) (value string, ok bool)
}

// LookupFunc adapts a function such as os.LookupEnv to a Source.
type LookupFunc func(name string) (string, bool)

func (f LookupFunc) Lookup(name string) (string, bool) { return f(name) }

// OS is the process environment.
var OS Source = LookupFunc(os.LookupEnv)

// Map is an in-memory environment table.
type Map map[string]string

func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
