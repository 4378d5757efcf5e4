// Package srctest type checks in-memory go sources for tests.
package srctest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/m4gshm/gollections/map_"
	"github.com/m4gshm/gollections/slice/sort"
	"github.com/stretchr/testify/require"
)

const PkgPath = "example.com/entity"

// Package is a parsed and type checked set of sources.
type Package struct {
	Fset   *token.FileSet
	Files  []*ast.File
	Types  *types.Package
	Errors []error
}

// Check parses the sources (file name to content) and type checks them as one package.
// Type errors are collected, not fatal.
func Check(t *testing.T, sources map[string]string) *Package {
	t.Helper()
	names := sort.Asc(map_.Keys(sources))

	fset := token.NewFileSet()
	files := make([]*ast.File, 0, len(names))
	for _, name := range names {
		file, err := parser.ParseFile(fset, name, sources[name], parser.ParseComments)
		require.NoError(t, err, name)
		files = append(files, file)
	}

	result := &Package{Fset: fset, Files: files}
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error:    func(err error) { result.Errors = append(result.Errors, err) },
	}
	pkg, _ := conf.Check(PkgPath, fset, files, nil)
	result.Types = pkg
	return result
}

// MustCheck is Check that fails the test on type errors.
func MustCheck(t *testing.T, sources map[string]string) *Package {
	t.Helper()
	pkg := Check(t, sources)
	require.Empty(t, pkg.Errors)
	return pkg
}

// TypeName looks up the package level type name.
func (p *Package) TypeName(t *testing.T, name string) *types.TypeName {
	t.Helper()
	obj, ok := p.Types.Scope().Lookup(name).(*types.TypeName)
	require.True(t, ok, "type %s not found", name)
	return obj
}
