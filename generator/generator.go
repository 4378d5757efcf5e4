package generator

import (
	"bytes"
	"go/format"
	"go/types"
	"strings"

	"github.com/pkg/errors"

	"github.com/m4gshm/accessors/logger"
)

// Generator accumulates generated functions and methods of one output file.
type Generator struct {
	Name     string
	Args     []string
	BuildTag string
	OutPkg   *types.Package

	imports *imports
	body    bytes.Buffer
	funcs   []string
}

func New(name string, args []string, buildTag string, outPkg *types.Package) *Generator {
	return &Generator{
		Name:     name,
		Args:     args,
		BuildTag: buildTag,
		OutPkg:   outPkg,
		imports:  newImports(outPkg),
	}
}

// AddMethod appends the method body of the type; typeName is empty for package level functions.
func (g *Generator) AddMethod(typeName, methodName, methodBody string) error {
	if len(methodName) == 0 {
		return errors.New("empty method name")
	} else if len(methodBody) == 0 {
		return errors.Errorf("empty body of %s", MethodName(typeName, methodName))
	}
	name := MethodName(typeName, methodName)
	for _, f := range g.funcs {
		if f == name {
			return errors.Errorf("duplicated %s", name)
		}
	}
	logger.Debugf("add %s", name)
	g.funcs = append(g.funcs, name)
	if g.body.Len() > 0 {
		g.body.WriteString("\n")
	}
	g.body.WriteString(methodBody)
	return nil
}

// AddFunc appends a package level function.
func (g *Generator) AddFunc(funcName, funcBody string) error {
	return g.AddMethod("", funcName, funcBody)
}

// Funcs returns the names of added methods (Type.Method) and functions in order of addition.
func (g *Generator) Funcs() []string {
	return g.funcs
}

func (g *Generator) Empty() bool {
	return len(g.funcs) == 0
}

func (g *Generator) FormatSrc() ([]byte, error) {
	src := g.Src()
	fmtSrc, err := format.Source(src)
	if err != nil {
		return src, errors.Wrap(err, "format generated source")
	}
	return fmtSrc, nil
}

func (g *Generator) Src() []byte {
	out := bytes.Buffer{}
	out.WriteString("// Code generated by '" + strings.TrimSpace(g.Name+" "+strings.Join(g.Args, " ")) + "'; DO NOT EDIT.\n\n")
	if len(g.BuildTag) > 0 {
		out.WriteString("//go:build " + g.BuildTag + "\n\n")
	}
	out.WriteString("package " + g.OutPkg.Name() + "\n\n")
	g.imports.write(&out)
	out.Write(g.body.Bytes())
	return out.Bytes()
}

func MethodName(typ, fun string) string {
	if len(typ) == 0 {
		return fun
	}
	return typ + "." + fun
}

func NoLint(nolint bool) string {
	if nolint {
		return "//nolint"
	}
	return ""
}
