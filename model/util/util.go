package util

import (
	"fmt"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/m4gshm/gollections/op"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"github.com/m4gshm/accessors/logger"
)

const packageMode = packages.NeedSyntax | packages.NeedName | packages.NeedFiles | packages.NeedTypesInfo | packages.NeedTypes

// ExtractPackage loads the single package matched by the pattern.
func ExtractPackage(fileSet *token.FileSet, buildTags []string, pattern string) (*packages.Package, error) {
	pkgs, err := packages.Load(&packages.Config{
		Fset:       fileSet,
		Mode:       packageMode,
		BuildFlags: buildTagsArg(buildTags),
		Logf:       func(format string, args ...any) { logger.Debugf("packagesLoad: "+format, args...) },
	}, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "load package %s", pattern)
	} else if len(pkgs) != 1 {
		return nil, fmt.Errorf("%d packages found by pattern '%s'", len(pkgs), pattern)
	}
	pkg := pkgs[0]
	if errs := pkg.Errors; len(errs) > 0 {
		logger.Debugf("package error; %v", errs[0])
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("no type information for package '%s'", pkg.PkgPath)
	}
	return pkg, nil
}

// PackageDir returns the directory of the first go file of the package.
func PackageDir(pkg *packages.Package) (string, error) {
	if len(pkg.GoFiles) == 0 {
		return "", fmt.Errorf("no go files in package '%s'", pkg.PkgPath)
	}
	return filepath.Dir(pkg.GoFiles[0]), nil
}

func buildTagsArg(buildTags []string) []string {
	return []string{fmt.Sprintf("-tags=%s", strings.Join(buildTags, ","))}
}

// Qualifier writes types of the outPkgPath package unqualified.
func Qualifier(outPkgPath string, named func(p *types.Package) string) types.Qualifier {
	return func(p *types.Package) string {
		return op.IfElse(p.Path() == outPkgPath, "", named(p))
	}
}

// PackageName returns the last path element that is not a major version suffix.
func PackageName(pkgPath string) string {
	j := len(pkgPath)
	i := j - 1
	for ; i >= 0; i-- {
		if pkgPath[i] == '/' {
			part := pkgPath[i+1 : j]
			if !isVersionElement(part) {
				return part
			}
			j = i
		}
	}
	return pkgPath[i+1 : j]
}

// isVersionElement reports whether s is a well-formed path version element:
// v2, v3, v10, etc, but not v0, v05, v1.
func isVersionElement(pkgName string) bool {
	if len(pkgName) < 2 || pkgName[0] != 'v' || pkgName[1] == '0' || pkgName[1] == '1' && len(pkgName) == 2 {
		return false
	}
	for i := 1; i < len(pkgName); i++ {
		if pkgName[i] < '0' || '9' < pkgName[i] {
			return false
		}
	}
	return true
}
