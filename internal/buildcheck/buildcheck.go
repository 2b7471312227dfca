// Package buildcheck type-checks the cpumap package under a set of build
// tags and reports the compiler diagnostics, so configuration mistakes that
// must fail the build can be asserted without a firmware toolchain.
package buildcheck

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Target is the package whose build configuration is checked.
const Target = "cpumap-go/cpumap"

// Config is one build configuration.
type Config struct {
	Tags       []string
	BuildFlags []string // extra `go build` flags, tags excluded
	Dir        string   // directory inside the module; "" for the working directory
}

func (c Config) Name() string {
	if len(c.Tags) == 0 {
		return "(no tags)"
	}
	return strings.Join(c.Tags, ",")
}

// Diagnostic is one compiler message.
type Diagnostic struct {
	Pos string
	Msg string
}

func (d Diagnostic) String() string {
	if d.Pos == "" {
		return d.Msg
	}
	return d.Pos + ": " + d.Msg
}

// Result is the outcome of loading Target under one configuration.
type Result struct {
	Config      Config
	Pkg         *packages.Package
	Diagnostics []Diagnostic
}

// OK reports a clean build.
func (r *Result) OK() bool { return len(r.Diagnostics) == 0 }

// Mentions reports whether any diagnostic contains s.
func (r *Result) Mentions(s string) bool { return mentions(r.Diagnostics, s) }

func mentions(ds []Diagnostic, s string) bool {
	for _, d := range ds {
		if strings.Contains(d.Msg, s) {
			return true
		}
	}
	return false
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedImports |
	packages.NeedDeps | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo

// Load type-checks Target under cfg. The returned error covers failures to
// run the loader at all; compile errors land in Result.Diagnostics.
func Load(ctx context.Context, cfg Config) (*Result, error) {
	flags := append([]string(nil), cfg.BuildFlags...)
	if len(cfg.Tags) > 0 {
		flags = append(flags, "-tags="+strings.Join(cfg.Tags, ","))
	}
	pc := &packages.Config{
		Context:    ctx,
		Mode:       loadMode,
		Dir:        cfg.Dir,
		BuildFlags: flags,
		Tests:      false,
	}
	pkgs, err := packages.Load(pc, Target)
	if err != nil {
		return nil, fmt.Errorf("buildcheck: load %s [%s]: %w", Target, cfg.Name(), err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("buildcheck: load %s [%s]: got %d packages", Target, cfg.Name(), len(pkgs))
	}

	res := &Result{Config: cfg, Pkg: pkgs[0]}
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{Pos: e.Pos, Msg: e.Msg})
		}
	})
	return res, nil
}

// Probe type-checks `var _ = <expr>` in a throwaway package that imports
// Target, e.g. Probe("cpumap.Step[3]"). It returns the type errors, which is
// what a firmware package writing the same expression would hit.
func (r *Result) Probe(expr string) []Diagnostic {
	if !r.OK() || r.Pkg.Types == nil {
		return []Diagnostic{{Msg: "target does not build under " + r.Config.Name()}}
	}
	src := "package probe\n\nimport \"" + Target + "\"\n\nvar _ = " + expr + "\n"

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "probe.go", src, 0)
	if err != nil {
		return []Diagnostic{{Msg: err.Error()}}
	}

	var diags []Diagnostic
	conf := types.Config{
		Importer: importerFunc(r.lookup),
		Error: func(err error) {
			if te, ok := err.(types.Error); ok {
				diags = append(diags, Diagnostic{Pos: te.Fset.Position(te.Pos).String(), Msg: te.Msg})
				return
			}
			diags = append(diags, Diagnostic{Msg: err.Error()})
		},
	}
	_, _ = conf.Check("probe", fset, []*ast.File{f}, nil)
	return diags
}

func (r *Result) lookup(path string) (*types.Package, error) {
	var found *types.Package
	packages.Visit([]*packages.Package{r.Pkg}, func(p *packages.Package) bool {
		if p.PkgPath == path {
			found = p.Types
		}
		return found == nil
	}, nil)
	if found == nil {
		return nil, fmt.Errorf("buildcheck: %s is not in the import graph of %s", path, Target)
	}
	return found, nil
}

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }
