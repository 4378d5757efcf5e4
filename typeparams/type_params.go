package typeparams

import (
	"go/types"
	"strings"

	"github.com/m4gshm/gollections/slice"
)

// TypeParams renders a type parameter list for generated declarations.
type TypeParams struct {
	list      []*types.TypeParam
	qualifier types.Qualifier
}

func New(tparams *types.TypeParamList, qualifier types.Qualifier) TypeParams {
	list := make([]*types.TypeParam, tparams.Len())
	for i := range list {
		list[i] = tparams.At(i)
	}
	return TypeParams{list: list, qualifier: qualifier}
}

func (params TypeParams) Names() []string {
	return slice.Convert(params.list, func(p *types.TypeParam) string { return p.Obj().Name() })
}

// Ident returns the instantiation suffix, like [K, V].
func (params TypeParams) Ident() string {
	return wrap(params.Names())
}

// Decl returns the declaration, like [K comparable, V any], with the extra declarations appended.
func (params TypeParams) Decl(extra ...string) string {
	decls := slice.Convert(params.list, func(p *types.TypeParam) string {
		return p.Obj().Name() + " " + types.TypeString(p.Constraint(), params.qualifier)
	})
	return wrap(append(decls, extra...))
}

func wrap(elements []string) string {
	if len(elements) == 0 {
		return ""
	}
	return "[" + strings.Join(elements, ", ") + "]"
}
