package struc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/accessors/internal/srctest"
)

const src = `package entity

type Simple struct {
	fieldA string ` + "`setter:\"into\"`" + `
	FieldB []int
	_      int
	c, d   bool
}

type Box[T any, K comparable] struct {
	value T
	keys  map[K]T
}

type Color int

type Shape interface{ Area() float64 }

type Unit struct{}

type Base struct{ ID int }

type Derived struct {
	Base
	Name string
}

type SimpleAlias = Simple

type Names []string
`

func Test_New(t *testing.T) {
	pkg := srctest.MustCheck(t, map[string]string{"entity.go": src})

	model, err := New(pkg.Fset, pkg.TypeName(t, "Simple"), "getters")
	require.NoError(t, err)
	assert.Equal(t, "Simple", model.TypeName())
	assert.Equal(t, srctest.PkgPath, model.Package().Path())
	assert.Equal(t, 0, model.TypeParams().Len())

	names := []string{}
	for _, f := range model.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"fieldA", "FieldB", "c", "d"}, names)
	assert.Equal(t, `setter:"into"`, model.Fields[0].Tag)
	assert.Equal(t, "string", model.Fields[0].Type.String())
	assert.Equal(t, "[]int", model.Fields[1].Type.String())
}

func Test_New_Generic(t *testing.T) {
	pkg := srctest.MustCheck(t, map[string]string{"entity.go": src})

	model, err := New(pkg.Fset, pkg.TypeName(t, "Box"), "setters")
	require.NoError(t, err)
	assert.Equal(t, 2, model.TypeParams().Len())
	assert.Len(t, model.Fields, 2)
}

func Test_New_Restrictions(t *testing.T) {
	pkg := srctest.MustCheck(t, map[string]string{"entity.go": src})

	testCases := []struct {
		typ    string
		reason string
	}{
		{"Color", "Color is a basic type int"},
		{"Shape", "Shape is an interface"},
		{"Unit", "Unit has no fields"},
		{"Derived", "field Base of Derived is embedded"},
		{"SimpleAlias", "SimpleAlias is an alias"},
		{"Names", "Names is a slice"},
	}
	for _, tc := range testCases {
		_, err := New(pkg.Fset, pkg.TypeName(t, tc.typ), "getters")
		if assert.Error(t, err, tc.typ) {
			assert.Contains(t, err.Error(), "getters can only be used with braced structs; "+tc.reason)
			assert.Contains(t, err.Error(), "entity.go:")
		}
	}
}
