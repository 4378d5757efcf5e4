package generator

import (
	"go/types"
	"strings"

	"github.com/m4gshm/gollections/op"
	"github.com/pkg/errors"
)

// Receiver of generated methods or the first argument of generated setter functions.
type Receiver struct {
	Var string
	// Type is the instantiated type name, like Box[K, V].
	Type string
	Ref  bool
}

func (r Receiver) TypeRef() string {
	return op.IfElse(r.Ref, "*", "") + r.Type
}

func GenerateGetter(rec Receiver, methodName, fieldName, fieldType string, returnRef, nolint bool) string {
	return "func (" + rec.Var + " " + rec.TypeRef() + ") " + methodName + "() " + op.IfElse(returnRef, "*", "") + fieldType +
		" {" + NoLint(nolint) + "\n" +
		"return " + op.IfElse(returnRef, "&", "") + rec.Var + "." + fieldName + "\n" +
		"}\n"
}

func GenerateSetter(rec Receiver, methodName, fieldName, fieldType, arg string, nolint bool) string {
	return "func (" + rec.Var + " " + rec.TypeRef() + ") " + methodName + "(" + arg + " " + fieldType + ") {" + NoLint(nolint) + "\n" +
		rec.Var + "." + fieldName + " = " + arg + "\n" +
		"}\n"
}

// GenerateIntoSetter generates a generic setter function, the value type parameter is declared in typeParamsDecl.
func GenerateIntoSetter(rec Receiver, funcName, typeParamsDecl, fieldName, valueExpr, arg, argType string, nolint bool) string {
	return "func " + funcName + typeParamsDecl + "(" + rec.Var + " " + rec.TypeRef() + ", " + arg + " " + argType + ") {" + NoLint(nolint) + "\n" +
		rec.Var + "." + fieldName + " = " + valueExpr + "\n" +
		"}\n"
}

// IntoConstraint returns the constraint of value types convertible to the field type and tells whether
// the conversion expression is needed.
// A value of any type with the same underlying type converts to the field type.
// A method set interface field accepts its implementations as is.
// If the underlying type cannot be written in the out package, like a struct with unexported fields of
// another package, the constraint is the field type itself.
func IntoConstraint(fieldType types.Type, outPkg *types.Package, typeString func(types.Type) string) (string, bool, error) {
	switch ft := types.Unalias(fieldType).(type) {
	case *types.TypeParam:
		return "", false, errors.Errorf("setter into is not supported for type parameter field type %s", typeString(ft))
	}
	underlying := fieldType.Underlying()
	if iface, ok := underlying.(*types.Interface); ok {
		if !iface.IsMethodSet() {
			return "", false, errors.Errorf("setter into is not supported for constraint interface field type %s", typeString(fieldType))
		}
		return typeString(fieldType), false, nil
	}
	if !expressible(underlying, outPkg, map[types.Type]bool{}) {
		return typeString(fieldType), true, nil
	}
	return "~" + typeString(underlying), true, nil
}

// expressible reports whether the type literal can be written in the pkg package.
func expressible(typ types.Type, pkg *types.Package, seen map[types.Type]bool) bool {
	if seen[typ] {
		return true
	}
	seen[typ] = true
	visible := func(obj types.Object) bool {
		return obj.Exported() || obj.Pkg() == nil || obj.Pkg() == pkg
	}
	switch t := types.Unalias(typ).(type) {
	case *types.Named:
		if !visible(t.Obj()) {
			return false
		}
		args := t.TypeArgs()
		for i := 0; i < args.Len(); i++ {
			if !expressible(args.At(i), pkg, seen) {
				return false
			}
		}
		return true
	case *types.Pointer:
		return expressible(t.Elem(), pkg, seen)
	case *types.Slice:
		return expressible(t.Elem(), pkg, seen)
	case *types.Array:
		return expressible(t.Elem(), pkg, seen)
	case *types.Chan:
		return expressible(t.Elem(), pkg, seen)
	case *types.Map:
		return expressible(t.Key(), pkg, seen) && expressible(t.Elem(), pkg, seen)
	case *types.Struct:
		for i := 0; i < t.NumFields(); i++ {
			if f := t.Field(i); !visible(f) || !expressible(f.Type(), pkg, seen) {
				return false
			}
		}
		return true
	case *types.Signature:
		return expressible(t.Params(), pkg, seen) && expressible(t.Results(), pkg, seen)
	case *types.Tuple:
		for i := 0; i < t.Len(); i++ {
			if !expressible(t.At(i).Type(), pkg, seen) {
				return false
			}
		}
		return true
	case *types.Interface:
		for i := 0; i < t.NumExplicitMethods(); i++ {
			if !visible(t.ExplicitMethod(i)) {
				return false
			}
		}
		for i := 0; i < t.NumEmbeddeds(); i++ {
			if !expressible(t.EmbeddedType(i), pkg, seen) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// ConvertExpr returns the conversion of the argument to the type.
func ConvertExpr(typ, arg string) string {
	if strings.HasPrefix(typ, "*") || strings.HasPrefix(typ, "<-") || strings.HasPrefix(typ, "chan") || strings.HasPrefix(typ, "func") {
		typ = "(" + typ + ")"
	}
	return typ + "(" + arg + ")"
}
