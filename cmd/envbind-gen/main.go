// Command envbind-gen writes envvars binding tables for package variables
// annotated with //env:var NAME directives.
//
// Usage:
//
//	envbind-gen [flags] [packages]
//
// Packages are go/packages patterns and default to -pkg. Each package with bound
// variables gets a generated file declaring the table and a populate function:
//
//	//env:var LISTEN_ADDR
//	var listenAddr string
//
//	func main() {
//		if err := populateEnv(); err != nil { ... }
//	}
//
// Every flag defaults from an environment variable: ENVBIND_PKG, ENVBIND_OUT,
// ENVBIND_FUNC, ENVBIND_VAR, ENVBIND_MANIFEST, ENVBIND_CHECK and ENVBIND_VERBOSE.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"env-binder/envvars"
	"env-binder/internal/analyze"
	"env-binder/internal/diagnostic"
	"env-binder/internal/gen"
	"env-binder/internal/logger"
)

const role = "envbind-gen"

// options are the command settings, read from the environment first and then from flags.
type options struct {
	Pkg      string `env:"ENVBIND_PKG"`
	Out      string `env:"ENVBIND_OUT"`
	Func     string `env:"ENVBIND_FUNC"`
	Var      string `env:"ENVBIND_VAR"`
	Manifest string `env:"ENVBIND_MANIFEST"`
	Check    bool   `env:"ENVBIND_CHECK"`
	Verbose  bool   `env:"ENVBIND_VERBOSE"`
}

var errStale = errors.New("generated files are stale")

func main() {
	if err := run(os.Args[1:], envvars.OS, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, role+":", err)
		}

		os.Exit(1)
	}
}

func run(args []string, env envvars.Source, stderr io.Writer) error {
	var o options
	if err := envvars.Populate(&o, envvars.WithSource(env)); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	fs := flag.NewFlagSet(role, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.Pkg, "pkg", o.Pkg, "package pattern to generate for, used when no packages are given")
	fs.StringVar(&o.Out, "out", o.Out, "name of the generated file (default envbind_gen.go)")
	fs.StringVar(&o.Func, "func", o.Func, "name of the generated populate function (default populateEnv)")
	fs.StringVar(&o.Var, "var", o.Var, "name of the generated table variable (default envBindings)")
	fs.StringVar(&o.Manifest, "manifest", o.Manifest, "YAML manifest listing packages and their settings")
	fs.BoolVar(&o.Check, "check", o.Check, "fail instead of writing when a generated file is missing or stale")
	fs.BoolVar(&o.Verbose, "v", o.Verbose, "log every finding")

	if err := fs.Parse(args); err != nil {
		return err
	}

	l := logger.NewConsole(stderr, role, o.Verbose)

	m, err := o.manifest(fs.Args())
	if err != nil {
		return err
	}

	files, err := generate(l, m)
	if err != nil {
		return err
	}

	if o.Check {
		return check(l, files)
	}

	written, err := gen.WriteFiles(files)
	for _, path := range written {
		l.Info().Str("file", path).Msg("wrote binding table")
	}

	return err
}

// manifest returns what to generate: the -manifest file, or a single-target
// manifest built from the flags.
func (o *options) manifest(patterns []string) (*gen.Manifest, error) {
	if o.Manifest != "" {
		if o.Out != "" || o.Func != "" || o.Var != "" {
			return nil, errors.New("-manifest cannot be combined with -out, -func or -var")
		}

		return gen.LoadManifest(o.Manifest)
	}

	if len(patterns) == 0 && o.Pkg != "" {
		patterns = strings.Split(o.Pkg, ",")
	}

	if len(patterns) == 0 {
		return nil, errors.New("no packages given; use -pkg, -manifest or positional patterns")
	}

	m := &gen.Manifest{Defaults: gen.Target{Out: o.Out, Func: o.Func, Var: o.Var}}
	for _, p := range patterns {
		m.Packages = append(m.Packages, gen.Target{Pattern: strings.TrimSpace(p)})
	}

	if err := m.Normalize(); err != nil {
		return nil, err
	}

	return m, nil
}

func generate(l *logger.Logger, m *gen.Manifest) ([]*gen.GeneratedFile, error) {
	var (
		files []*gen.GeneratedFile
		errs  []error
	)

	analyzer := analyze.NewAnalyzer()
	for _, target := range m.Packages {
		pkgs, err := analyzer.LoadPackages(target.Pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", target.Pattern, err))
			continue
		}

		g := gen.NewGenerator(target.Config())
		for _, pkg := range pkgs {
			pkg.Exclude(target.Exclude...)

			pl := l.Child("package", pkg.Path)
			report(pl, pkg.Diagnostics)

			file, err := g.Generate(pkg)
			if errors.Is(err, gen.ErrNoBindings) {
				pl.Debug().Msg("nothing to generate")
				continue
			}

			if err != nil {
				errs = append(errs, err)
				continue
			}

			files = append(files, file)
		}
	}

	return files, errors.Join(errs...)
}

func check(l *logger.Logger, files []*gen.GeneratedFile) error {
	stale, err := gen.Stale(files)
	if err != nil {
		return err
	}

	for _, path := range stale {
		l.Error().Str("file", path).Msg("out of date")
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %d of %d", errStale, len(stale), len(files))
	}

	l.Debug().Int("files", len(files)).Msg("generated files are current")
	return nil
}

func report(l *logger.Logger, d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		var event *zerolog.Event
		switch diag.Severity {
		case diagnostic.SeverityError:
			event = l.Error()
		case diagnostic.SeverityWarning:
			event = l.Warn()
		default:
			event = l.Debug()
		}

		if diag.Pos.IsValid() {
			event = event.Str("pos", diag.Pos.String())
		}

		if diag.Variable != "" {
			event = event.Str("variable", diag.Variable)
		}

		event.Str("code", diag.Code).Msg(diag.Message)
	}
}
