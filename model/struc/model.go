package struc

import (
	"go/token"
	"go/types"

	"github.com/m4gshm/accessors/logger"
	"github.com/m4gshm/accessors/use"
)

type (
	// Field is a named struct field with its raw tag.
	Field struct {
		Name string
		Type types.Type
		Tag  string
		Var  *types.Var
	}

	// Model struct type model.
	Model struct {
		Typ    *types.Named
		Fset   *token.FileSet
		Fields []Field
	}
)

func (m *Model) TypeName() string {
	return m.Typ.Obj().Name()
}

func (m *Model) Package() *types.Package {
	return m.Typ.Obj().Pkg()
}

func (m *Model) TypeParams() *types.TypeParamList {
	return m.Typ.TypeParams()
}

// FieldByName returns the field declared with the name.
func (m *Model) FieldByName(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Err makes a user error positioned at the field declaration.
func (m *Model) Err(field Field, message string) error {
	return use.PosErr(m.Fset, field.Var.Pos(), message)
}

// New builds the model of a braced struct type for the derive.
// Non struct types, aliases, structs with no fields and structs with embedded fields are rejected.
func New(fset *token.FileSet, obj *types.TypeName, derive string) (*Model, error) {
	typName := obj.Name()
	restriction := func(reason string) error {
		return use.PosErrf(fset, obj.Pos(), "%s can only be used with braced structs; %s", derive, reason)
	}
	if obj.IsAlias() {
		return nil, restriction(typName + " is an alias")
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, restriction(typName + " is not a named type")
	}
	typStruct, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, restriction(typName + " is " + describe(named.Underlying()))
	} else if typStruct.NumFields() == 0 {
		return nil, restriction(typName + " has no fields")
	}

	model := &Model{Typ: named, Fset: fset}
	for i := 0; i < typStruct.NumFields(); i++ {
		fieldVar := typStruct.Field(i)
		fldName := fieldVar.Name()
		if fieldVar.Embedded() {
			return nil, use.PosErrf(fset, fieldVar.Pos(), "%s can only be used with braced structs; field %s of %s is embedded", derive, fldName, typName)
		} else if fldName == "_" {
			logger.Debugf("skip blank field of %s", typName)
			continue
		}
		model.Fields = append(model.Fields, Field{Name: fldName, Type: fieldVar.Type(), Tag: typStruct.Tag(i), Var: fieldVar})
	}
	return model, nil
}

func describe(typ types.Type) string {
	switch typ.(type) {
	case *types.Basic:
		return "a basic type " + typ.String()
	case *types.Interface:
		return "an interface"
	case *types.Pointer:
		return "a pointer"
	case *types.Slice:
		return "a slice"
	case *types.Array:
		return "an array"
	case *types.Map:
		return "a map"
	case *types.Chan:
		return "a channel"
	case *types.Signature:
		return "a function"
	default:
		return typ.String()
	}
}
