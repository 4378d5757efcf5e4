package command

import (
	"go/token"
	"go/types"

	"github.com/m4gshm/accessors/generator"
	"github.com/m4gshm/accessors/model/struc"
	"github.com/m4gshm/accessors/params"
)

type Context struct {
	Generator *generator.Generator
	FileSet   *token.FileSet
	Type      *types.TypeName
	model     *struc.Model
}

// Model returns the model of the context type, validated for the derive.
func (c *Context) Model(derive params.Derive) (*struc.Model, error) {
	if m := c.model; m != nil {
		return m, nil
	}
	model, err := struc.New(c.FileSet, c.Type, string(derive))
	if err != nil {
		return nil, err
	}
	c.model = model
	return model, nil
}
