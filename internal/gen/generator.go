package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"reflect"
	"strings"
	"text/template"

	"env-binder/envvars"
	"env-binder/internal/analyze"
)

// ErrNoBindings is returned for a package without bound variables.
var ErrNoBindings = errors.New("no bound variables")

// envvarsPath is the import path written into generated files.
var envvarsPath = reflect.TypeFor[envvars.Table]().PkgPath()

// Config holds what a generated file is called and what it declares.
type Config struct {
	// Filename is the name of the file written next to the package sources.
	Filename string
	// VarName is the package variable holding the table.
	VarName string
	// FuncName is the function populating the table.
	FuncName string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Filename: "envbind_gen.go",
		VarName:  "envBindings",
		FuncName: "populateEnv",
	}
}

// Merge returns c with its empty fields taken from other.
func (c Config) Merge(other Config) Config {
	if c.Filename == "" {
		c.Filename = other.Filename
	}

	if c.VarName == "" {
		c.VarName = other.VarName
	}

	if c.FuncName == "" {
		c.FuncName = other.FuncName
	}

	return c
}

// Validate checks that the declared names are identifiers and the file is a Go source file.
func (c Config) Validate() error {
	if !token.IsIdentifier(c.VarName) {
		return fmt.Errorf("invalid table variable name %q", c.VarName)
	}

	if !token.IsIdentifier(c.FuncName) {
		return fmt.Errorf("invalid function name %q", c.FuncName)
	}

	if c.VarName == c.FuncName {
		return fmt.Errorf("table variable and function are both named %q", c.VarName)
	}

	if !strings.HasSuffix(c.Filename, ".go") || strings.HasSuffix(c.Filename, "_test.go") || strings.ContainsAny(c.Filename, `/\`) {
		return fmt.Errorf("invalid output file name %q", c.Filename)
	}

	return nil
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir      string
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator generates binding tables.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config.Merge(DefaultConfig())}
}

type bindingData struct {
	Name string
	Var  string
}

type templateData struct {
	PackageName string
	Import      string
	VarName     string
	FuncName    string
	Bindings    []bindingData
}

// Generate renders the table file for pkg. It fails if the analysis reported errors,
// and with ErrNoBindings when nothing would be bound.
func (g *Generator) Generate(pkg *analyze.Package) (*GeneratedFile, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	if err := pkg.Diagnostics.Error(); err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", pkg.Path, err)
	}

	if pkg.Path == envvarsPath {
		return nil, fmt.Errorf("%s cannot bind its own variables", envvarsPath)
	}

	active := pkg.Active()
	if len(active) == 0 {
		return nil, fmt.Errorf("%s: %w", pkg.Path, ErrNoBindings)
	}

	data := &templateData{
		PackageName: pkg.Name,
		Import:      envvarsPath,
		VarName:     g.config.VarName,
		FuncName:    g.config.FuncName,
	}

	for _, b := range active {
		data.Bindings = append(data.Bindings, bindingData{Name: b.Name, Var: b.Var})
	}

	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(pkg.Dir, g.config.Filename, buf.Bytes())

		return &GeneratedFile{
			Dir:      pkg.Dir,
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      pkg.Dir,
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

var tableTemplate = template.Must(template.New("table").Parse(`// Code generated by envbind-gen. DO NOT EDIT.

package {{.PackageName}}

import "{{.Import}}"

// {{.VarName}} binds the //env:var variables of this package.
var {{.VarName}} = envvars.NewTable(){{range .Bindings}}.
	BindVar({{printf "%q" .Name}}, {{printf "%q" .Var}}, &{{.Var}}){{end}}

// {{.FuncName}} assigns every //env:var variable of this package from the environment.
func {{.FuncName}}(opts ...envvars.Option) error {
	return {{.VarName}}.Populate(opts...)
}
`))
