package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"env-binder/internal/analyze"
	"env-binder/internal/diagnostic"
)

func samplePackage(dir string) *analyze.Package {
	return &analyze.Package{
		Path: "example.com/app/config",
		Name: "config",
		Dir:  dir,
		Vars: []analyze.Binding{
			{Name: "LISTEN_ADDR", Var: "listenAddr"},
			{Name: "DEBUG", Var: "debug"},
			{Name: "LISTEN_ADDR", Var: "altAddr", Shadowed: true},
		},
	}
}

const sampleOutput = `// Code generated by envbind-gen. DO NOT EDIT.

package config

import "env-binder/envvars"

// envBindings binds the //env:var variables of this package.
var envBindings = envvars.NewTable().
	BindVar("LISTEN_ADDR", "listenAddr", &listenAddr).
	BindVar("DEBUG", "debug", &debug)

// populateEnv assigns every //env:var variable of this package from the environment.
func populateEnv(opts ...envvars.Option) error {
	return envBindings.Populate(opts...)
}
`

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file, err := NewGenerator(Config{}).Generate(samplePackage(dir))
	require.NoError(t, err)

	assert.Equal(t, "envbind_gen.go", file.Filename)
	assert.Equal(t, filepath.Join(dir, "envbind_gen.go"), file.Path())
	assert.Equal(t, sampleOutput, string(file.Content))

	parsed, err := parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "config", parsed.Name.Name)
}

func TestGenerator_CustomNames(t *testing.T) {
	t.Parallel()

	file, err := NewGenerator(Config{VarName: "table", FuncName: "loadEnv", Filename: "env_gen.go"}).
		Generate(samplePackage(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "env_gen.go", file.Filename)
	assert.Contains(t, string(file.Content), "var table = envvars.NewTable().")
	assert.Contains(t, string(file.Content), "func loadEnv(opts ...envvars.Option) error {\n\treturn table.Populate(opts...)\n}")
}

func TestGenerator_Errors(t *testing.T) {
	t.Parallel()

	t.Run("diagnostics", func(t *testing.T) {
		pkg := samplePackage("")
		pkg.Diagnostics.AddError(diagnostic.CodeUnsupportedType, "chan int cannot be bound to CH", pkg.Path, "ch", token.Position{})

		_, err := NewGenerator(Config{}).Generate(pkg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported_type")
	})

	t.Run("nothing bound", func(t *testing.T) {
		pkg := samplePackage("")
		pkg.Vars = pkg.Vars[2:]

		_, err := NewGenerator(Config{}).Generate(pkg)
		assert.ErrorIs(t, err, ErrNoBindings)
	})

	t.Run("own package", func(t *testing.T) {
		pkg := samplePackage("")
		pkg.Path = envvarsPath

		_, err := NewGenerator(Config{}).Generate(pkg)
		assert.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		for _, cfg := range []Config{
			{VarName: "1table"},
			{FuncName: "load-env"},
			{VarName: "same", FuncName: "same"},
			{Filename: "env.txt"},
			{Filename: "env_test.go"},
			{Filename: "sub/env.go"},
		} {
			_, err := NewGenerator(cfg).Generate(samplePackage(""))
			assert.Error(t, err, "%+v", cfg)
		}
	})
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file, err := NewGenerator(Config{}).Generate(samplePackage(dir))
	require.NoError(t, err)

	stale, err := Stale([]*GeneratedFile{file})
	require.NoError(t, err)
	assert.Equal(t, []string{file.Path()}, stale)

	written, err := WriteFiles([]*GeneratedFile{file})
	require.NoError(t, err)
	assert.Equal(t, []string{file.Path()}, written)

	content, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Equal(t, sampleOutput, string(content))

	written, err = WriteFiles([]*GeneratedFile{file})
	require.NoError(t, err)
	assert.Empty(t, written, "current files are left alone")

	stale, err = Stale([]*GeneratedFile{file})
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestGenerator_ExampleSettingsIsCurrent(t *testing.T) {
	pkgs, err := analyze.NewAnalyzer().LoadPackages("env-binder/examples/settings")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	file, err := NewGenerator(Config{}).Generate(pkgs[0])
	require.NoError(t, err)

	current, err := IsCurrent(file)
	require.NoError(t, err)
	assert.True(t, current, "examples/settings/%s is stale; rerun go generate ./examples/settings\n%s", file.Filename, file.Content)
}
