package analyze

import (
	"go/token"
	"go/types"

	"env-binder/convert"
	"env-binder/internal/diagnostic"
)

// Binding is one variable or struct field bound to an environment variable.
type Binding struct {
	// Name is the environment variable.
	Name string
	// Var is the Go identifier: the variable name, or the field name inside a Struct.
	Var  string
	Type types.Type
	// Shape is what the converter would do with Type. Named types over string and
	// integer kinds report ShapeScalar; the runtime upgrades them to ShapeEnum once
	// registered.
	Shape convert.Shape
	Pos   token.Position
	// Shadowed is set when an earlier binding in the same scope already uses Name.
	Shadowed bool
}

func (b Binding) supported() bool {
	return b.Shape != convert.ShapeUnsupported
}

// Struct is a named struct type with at least one tagged field.
type Struct struct {
	Name   string
	Fields []Binding
}

// Package is the analysis result for one loaded package.
type Package struct {
	Path string
	Name string
	Dir  string

	// Vars are the directive-annotated package variables, in source order.
	Vars    []Binding
	Structs []Struct

	Diagnostics diagnostic.Diagnostics
}

// Active returns the variables that population assigns, dropping shadowed ones.
func (p *Package) Active() []Binding {
	var active []Binding
	for _, b := range p.Vars {
		if !b.Shadowed {
			active = append(active, b)
		}
	}

	return active
}

// Exclude drops every variable bound to one of names and reports each drop as info.
func (p *Package) Exclude(names ...string) {
	if len(names) == 0 {
		return
	}

	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	kept := p.Vars[:0]
	for _, b := range p.Vars {
		if drop[b.Name] {
			p.Diagnostics.AddInfo(diagnostic.CodeExcluded, "excluded by manifest: "+b.Name, p.Path, b.Var, b.Pos)
			continue
		}

		kept = append(kept, b)
	}

	p.Vars = kept
	markShadowed(p.Vars, nil, "", "")
}
