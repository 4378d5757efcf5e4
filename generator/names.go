package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m4gshm/gollections/op"
)

const (
	DefaultGetterPrefix = "Get"
	DefaultSetterPrefix = "Set"
	ValueArg            = "value"
	ValueTypeParam      = "V"
)

// IdentName changes the case of the first letter to export or unexport the name.
func IdentName(name string, export bool) string {
	if len(name) == 0 {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(op.IfElse(export, unicode.ToUpper(first), unicode.ToLower(first))) + name[size:]
}

func IsExported(name string) bool {
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(first)
}

// GetterName returns the getter name of the field.
// Without a prefix the getter is named as the field, but a method cannot be named as a field of its type, so
// the default prefix is used when the names match.
func GetterName(fieldName, prefix string, export bool) string {
	suffix := IdentName(fieldName, true)
	if len(prefix) == 0 && IdentName(suffix, export) == fieldName {
		prefix = DefaultGetterPrefix
	}
	return IdentName(prefix+suffix, export)
}

// SetterName returns the setter method name of the field: the prefix followed by the exported field name.
func SetterName(fieldName, prefix string, export bool) string {
	return IdentName(prefix+IdentName(fieldName, true), export)
}

// SetterFuncName returns the name of the package level setter function of the type field.
func SetterFuncName(typeName, fieldName, prefix string, export bool) string {
	return IdentName(prefix+IdentName(typeName, true)+IdentName(fieldName, true), export)
}

// TypeReceiverVar returns the one letter receiver name of the type.
func TypeReceiverVar(typeName string) string {
	if i := strings.LastIndex(typeName, "."); i >= 0 {
		typeName = typeName[i+1:]
	}
	for _, r := range typeName {
		if unicode.IsLetter(r) {
			return string(unicode.ToLower(r))
		}
	}
	return "r"
}
