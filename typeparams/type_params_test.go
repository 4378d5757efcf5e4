package typeparams

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m4gshm/accessors/internal/srctest"
)

func Test_TypeParams(t *testing.T) {
	pkg := srctest.MustCheck(t, map[string]string{"entity.go": `package entity

type Number interface{ ~int | ~float64 }

type Plain struct{ a int }

type Box[K comparable, V any, N Number, S ~string | ~[]byte] struct {
	values map[K]V
	n      N
	s      S
}
`})
	q := func(p *types.Package) string { return "" }

	box := New(pkg.TypeName(t, "Box").Type().(*types.Named).TypeParams(), q)
	assert.Equal(t, []string{"K", "V", "N", "S"}, box.Names())
	assert.Equal(t, "[K, V, N, S]", box.Ident())
	assert.Equal(t, "[K comparable, V any, N Number, S ~string | ~[]byte]", box.Decl())
	assert.Equal(t, "[K comparable, V any, N Number, S ~string | ~[]byte, T ~int]", box.Decl("T ~int"))

	plain := New(pkg.TypeName(t, "Plain").Type().(*types.Named).TypeParams(), q)
	assert.Empty(t, plain.Names())
	assert.Equal(t, "", plain.Ident())
	assert.Equal(t, "", plain.Decl())
	assert.Equal(t, "[V ~string]", plain.Decl("V ~string"))
}
