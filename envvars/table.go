package envvars

import (
	"fmt"
	"reflect"
	"strings"

	"env-binder/binding"
)

type tableEntry struct {
	decl  binding.Declaration
	path  string
	value reflect.Value
}

// Table binds package-level variables, which reflection can't discover, to environment variables.
//
//	var (
//		addr  string
//		debug bool
//	)
//
//	var bindings = envvars.NewTable().
//		Bind("LISTEN_ADDR", &addr).
//		Bind("DEBUG", &debug)
//
// Entries keep their registration order. When two entries share a name the first one wins.
type Table struct {
	entries []tableEntry
}

func NewTable() *Table {
	return &Table{}
}

// Bind adds ptr, a non-nil pointer, under name. It panics on misuse since tables are built at init.
func (t *Table) Bind(name string, ptr any) *Table {
	return t.BindVar(name, "", ptr)
}

// BindVar is Bind with a path naming the variable in diagnostics.
func (t *Table) BindVar(name, path string, ptr any) *Table {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		panic(fmt.Sprintf("envvars: binding %q needs a non-nil pointer, got %T", name, ptr))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		panic(fmt.Sprintf("envvars: empty variable name for %T", ptr))
	}

	if path == "" {
		path = v.Elem().Type().String()
	}

	t.entries = append(t.entries, tableEntry{
		decl:  binding.Declaration{Name: name},
		path:  path,
		value: v.Elem(),
	})

	return t
}

// Bindings builds the binding map of the table. Conversion shapes are chosen here
// rather than in Bind, so enumerations registered in init functions are honored.
func (t *Table) Bindings() *binding.Map {
	m := binding.NewMap()
	for _, e := range t.entries {
		m.Add(binding.NewField(e.decl, e.path, e.value))
	}

	return m
}

// Populate assigns every bound variable.
func (t *Table) Populate(opts ...Option) error {
	return populate(t.Bindings(), newOptions(opts).source)
}
