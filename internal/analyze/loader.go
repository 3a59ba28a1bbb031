package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"env-binder/binding"
	"env-binder/internal/diagnostic"
	"env-binder/internal/match"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads packages and extracts their bindings.
type Analyzer struct {
	// Dir is the working directory patterns are resolved against; empty means the current one.
	Dir string
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the packages matching patterns, such as "./config" or "example.com/app/...",
// and analyzes each of them. Loading fails as a whole if any package doesn't type-check.
func (a *Analyzer) LoadPackages(patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	result := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		result = append(result, a.processPackage(pkg))
	}

	return result, nil
}

func (a *Analyzer) processPackage(pkg *packages.Package) *Package {
	p := &Package{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		// generated files, our own output included, carry no directives
		if ast.IsGenerated(file) {
			continue
		}

		for _, decl := range file.Decls {
			a.processDecl(pkg, p, decl)
		}
	}

	markShadowed(p.Vars, &p.Diagnostics, p.Path, "")
	warnNearDuplicates(p.Vars, &p.Diagnostics, p.Path, "")
	a.processStructs(pkg, p)

	if len(p.Vars) == 0 {
		p.Diagnostics.AddInfo(diagnostic.CodeNoBindings, "no //env:var variables", p.Path, "", token.Position{})
	}

	return p
}

func (a *Analyzer) processDecl(pkg *packages.Package, p *Package, decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		a.rejectDirective(pkg, p, d.Doc, d.Name.Name, "function")

	case *ast.GenDecl:
		for _, spec := range d.Specs {
			doc := specDoc(d, spec)

			switch s := spec.(type) {
			case *ast.ValueSpec:
				if d.Tok == token.CONST {
					a.rejectDirective(pkg, p, doc, s.Names[0].Name, "constant")
					continue
				}

				a.processVar(pkg, p, doc, s)

			case *ast.TypeSpec:
				a.rejectDirective(pkg, p, doc, s.Name.Name, "type")
			}
		}
	}
}

// specDoc returns the comment group holding a spec's directives. An unparenthesized
// declaration keeps its comment on the GenDecl.
func specDoc(d *ast.GenDecl, spec ast.Spec) *ast.CommentGroup {
	var doc *ast.CommentGroup
	switch s := spec.(type) {
	case *ast.ValueSpec:
		doc = s.Doc
	case *ast.TypeSpec:
		doc = s.Doc
	}

	if doc == nil && !d.Lparen.IsValid() {
		doc = d.Doc
	}

	return doc
}

// directives returns the declarations found in doc along with the position of the first.
func directives(fset *token.FileSet, doc *ast.CommentGroup) ([]binding.Declaration, token.Position) {
	if doc == nil {
		return nil, token.Position{}
	}

	var (
		found []binding.Declaration
		pos   token.Position
	)

	for _, c := range doc.List {
		decl, ok := binding.ParseDirective(c.Text)
		if !ok {
			if strings.TrimSpace(c.Text) == strings.TrimSpace(binding.DirectivePrefix) {
				found = append(found, binding.Declaration{})
			}

			continue
		}

		if len(found) == 0 {
			pos = fset.Position(c.Pos())
		}

		found = append(found, decl)
	}

	if len(found) > 0 && !pos.IsValid() {
		pos = fset.Position(doc.Pos())
	}

	return found, pos
}

func (a *Analyzer) rejectDirective(pkg *packages.Package, p *Package, doc *ast.CommentGroup, name, what string) {
	if found, pos := directives(pkg.Fset, doc); len(found) > 0 {
		p.Diagnostics.AddWarning(diagnostic.CodeMisplaced,
			fmt.Sprintf("//env:var directive on a %s is ignored; only package variables are bound", what),
			p.Path, name, pos)
	}
}

func (a *Analyzer) processVar(pkg *packages.Package, p *Package, doc *ast.CommentGroup, spec *ast.ValueSpec) {
	found, pos := directives(pkg.Fset, doc)
	if len(found) == 0 {
		return
	}

	names := make([]string, len(spec.Names))
	for i, n := range spec.Names {
		names[i] = n.Name
	}

	variable := strings.Join(names, ", ")

	switch {
	case len(found) > 1:
		p.Diagnostics.AddError(diagnostic.CodeMultipleDirective, "a variable takes a single //env:var directive", p.Path, variable, pos)
		return
	case found[0].Name == "":
		p.Diagnostics.AddError(diagnostic.CodeEmptyDirective, "//env:var directive without a name", p.Path, variable, pos)
		return
	case len(spec.Names) > 1:
		p.Diagnostics.AddError(diagnostic.CodeMultiNameSpec, "one //env:var directive for several variables; declare them separately", p.Path, variable, pos)
		return
	case names[0] == "_":
		p.Diagnostics.AddError(diagnostic.CodeBlankVariable, "the blank identifier cannot be bound", p.Path, variable, pos)
		return
	}

	obj := pkg.TypesInfo.Defs[spec.Names[0]]
	if obj == nil {
		return
	}

	b := Binding{
		Name:  found[0].Name,
		Var:   names[0],
		Type:  obj.Type(),
		Shape: ShapeOf(obj.Type()),
		Pos:   pos,
	}

	if !b.supported() {
		p.Diagnostics.AddError(diagnostic.CodeUnsupportedType,
			fmt.Sprintf("%s cannot be bound to %s", typeString(b.Type, pkg.Types), b.Name),
			p.Path, b.Var, b.Pos)
		return
	}

	p.Vars = append(p.Vars, b)
}

// processStructs lists named struct types with tagged fields. Unsupported field types
// are warnings here: Populate reports them at runtime.
func (a *Analyzer) processStructs(pkg *packages.Package, p *Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}

		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		s := Struct{Name: name}
		for i := range st.NumFields() {
			field := st.Field(i)

			decl, ok := binding.Lookup(reflect.StructTag(st.Tag(i)))
			if !ok {
				continue
			}

			b := Binding{
				Name:  decl.Name,
				Var:   field.Name(),
				Type:  field.Type(),
				Shape: ShapeOf(field.Type()),
				Pos:   pkg.Fset.Position(field.Pos()),
			}

			if !b.supported() {
				p.Diagnostics.AddWarning(diagnostic.CodeUnsupportedType,
					fmt.Sprintf("%s cannot be bound to %s; Populate will fail on it", typeString(b.Type, pkg.Types), b.Name),
					p.Path, name+"."+b.Var, b.Pos)
			}

			s.Fields = append(s.Fields, b)
		}

		if len(s.Fields) == 0 {
			continue
		}

		markShadowed(s.Fields, &p.Diagnostics, p.Path, name+".")
		warnNearDuplicates(s.Fields, &p.Diagnostics, p.Path, name+".")
		p.Structs = append(p.Structs, s)
	}
}

// markShadowed flags every binding whose name an earlier one already uses.
// Each flagged binding is reported as a warning when diags is non-nil.
func markShadowed(bindings []Binding, diags *diagnostic.Diagnostics, pkgPath, prefix string) {
	first := make(map[string]string, len(bindings))
	for i := range bindings {
		b := &bindings[i]

		winner, taken := first[b.Name]
		b.Shadowed = taken

		if !taken {
			first[b.Name] = prefix + b.Var
			continue
		}

		if diags != nil {
			diags.AddWarning(diagnostic.CodeDuplicateName,
				fmt.Sprintf("%s is already bound by %s; this binding is never assigned", b.Name, winner),
				pkgPath, prefix+b.Var, b.Pos)
		}
	}
}

func typeString(t types.Type, from *types.Package) string {
	return types.TypeString(t, types.RelativeTo(from))
}

// warnNearDuplicates reports names that differ from an earlier one only in case or
// separators. Environment names are case-sensitive, so both are bound.
func warnNearDuplicates(bindings []Binding, diags *diagnostic.Diagnostics, pkgPath, prefix string) {
	seen := make(map[string]Binding, len(bindings))
	for _, b := range bindings {
		key := match.Fold(b.Name)

		earlier, ok := seen[key]
		if !ok {
			seen[key] = b
			continue
		}

		if earlier.Name != b.Name {
			diags.AddWarning(diagnostic.CodeNearDuplicate,
				fmt.Sprintf("%s looks like %s bound by %s%s", b.Name, earlier.Name, prefix, earlier.Var),
				pkgPath, prefix+b.Var, b.Pos)
		}
	}
}
