package generator

import (
	"bytes"
	"go/token"
	"go/types"
	"path"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/m4gshm/gollections/map_"
	"github.com/m4gshm/gollections/predicate/is"
	"github.com/m4gshm/gollections/slice"
	"github.com/m4gshm/gollections/slice/sort"
	"github.com/pkg/errors"

	"github.com/m4gshm/accessors/model/util"
	"github.com/m4gshm/accessors/unique"
)

type imports struct {
	outPkgPath string
	aliases    map[string]string
	names      *unique.Names
}

func newImports(outPkg *types.Package) *imports {
	return &imports{outPkgPath: outPkg.Path(), aliases: map[string]string{}, names: unique.NewNamesWith()}
}

// AddImport registers the package and returns the name to qualify its members with.
// An already registered package keeps its first alias.
func (g *Generator) AddImport(pkgPath, name string) (string, error) {
	return g.imports.add(pkgPath, name)
}

func (i *imports) add(pkgPath, name string) (string, error) {
	if len(pkgPath) == 0 {
		return "", errors.New("empty import path")
	} else if pkgPath == i.outPkgPath {
		return "", nil
	} else if alias, ok := i.aliases[pkgPath]; ok {
		return alias, nil
	}
	if len(name) == 0 {
		name = packagePathToName(util.PackageName(pkgPath))
	}
	if len(name) == 0 || token.IsKeyword(name) {
		name = "pkg"
	}
	alias := i.names.Get(name)
	i.aliases[pkgPath] = alias
	return alias, nil
}

// Qualifier returns the go/types qualifier that registers imports of the referenced packages.
func (g *Generator) Qualifier() types.Qualifier {
	return util.Qualifier(g.imports.outPkgPath, func(p *types.Package) string {
		alias, _ := g.imports.add(p.Path(), p.Name())
		return alias
	})
}

// TypeString writes the type as it is referenced from the output package.
func (g *Generator) TypeString(typ types.Type) string {
	return types.TypeString(typ, g.Qualifier())
}

func (i *imports) write(out *bytes.Buffer) {
	if len(i.aliases) == 0 {
		return
	}
	paths := sort.Asc(map_.Keys(i.aliases))

	out.WriteString("import (\n")
	for _, p := range paths {
		alias := i.aliases[p]
		if alias != util.PackageName(p) {
			out.WriteString(alias + " ")
		}
		out.WriteString(strconv.Quote(p) + "\n")
	}
	out.WriteString(")\n\n")
}

func badSymbol(ch rune) bool {
	return !('a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || '0' <= ch && ch <= '9' ||
		ch == '_' || ch >= utf8.RuneSelf && (unicode.IsLetter(ch)))
}

func packagePathToName(importPath string) string {
	base := path.Base(importPath)
	name := string(slice.Filter([]rune(base), is.Not(badSymbol)))
	if len(name) > 0 && unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}
