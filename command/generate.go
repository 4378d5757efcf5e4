package command

import (
	"go/token"

	"github.com/m4gshm/accessors/generator"
	"github.com/m4gshm/accessors/logger"
)

// Generate runs the commands of every target; the first error stops the generation.
func Generate(g *generator.Generator, fset *token.FileSet, targets []*Target) error {
	for _, target := range targets {
		context := &Context{Generator: g, FileSet: fset, Type: target.Type}
		for _, cmd := range target.Commands {
			logger.Debugf("run %s for type %s", cmd.name, target.Type.Name())
			if err := cmd.Run(context); err != nil {
				return err
			}
		}
	}
	return nil
}
