package command

import (
	"flag"

	"github.com/m4gshm/accessors/generator"
	"github.com/m4gshm/accessors/logger"
	"github.com/m4gshm/accessors/option"
	"github.com/m4gshm/accessors/params"
	"github.com/m4gshm/accessors/typeparams"
	"github.com/m4gshm/accessors/unique"
)

func NewGetters() *Command {
	const (
		cmdName = params.Getters
	)
	var (
		flagSet       = flag.NewFlagSet(string(cmdName), flag.ContinueOnError)
		prefix        = params.Prefix(flagSet, "", "getter methods prefix; "+generator.DefaultGetterPrefix+" is used if a getter would be named as its field")
		noExport      = params.NoExport(flagSet)
		returnRef     = flagSet.Bool("ref", false, "return field references (pointers) instead of values")
		valueReceiver = flagSet.Bool("value-receiver", false, "use value type (not pointer) for methods receiver")
		nameExpr      = params.NameExpr(flagSet, "getter")
		nolint        = params.Nolint(flagSet)
	)

	return New(
		cmdName, "generates a getter per field of a structure type",
		flagSet,
		func(context *Context) error {
			model, err := context.Model(cmdName)
			if err != nil {
				return err
			}
			namer, err := generator.NewNamer(*nameExpr)
			if err != nil {
				return err
			}
			g := context.Generator
			typeName := model.TypeName()
			tparams := typeparams.New(model.TypeParams(), g.Qualifier())
			names := unique.NewNamesWith(unique.PreInit(tparams.Names()...))
			rec := generator.Receiver{
				Var:  names.Get(generator.TypeReceiverVar(typeName)),
				Type: typeName + tparams.Ident(),
				Ref:  !*valueReceiver,
			}
			logger.Debugf("generate getters: receiver %s, type %s, prefix %s", rec.Var, rec.Type, *prefix)

			for _, field := range model.Fields {
				if _, err := option.NewGetter(model, field); err != nil {
					return err
				}
				getterName, err := methodName("getter", namer, generator.NameEnv{
					Field: field.Name, Type: typeName, Prefix: *prefix,
					Default: generator.GetterName(field.Name, *prefix, !*noExport),
				}, model, field)
				if err != nil {
					return err
				}
				body := generator.GenerateGetter(rec, getterName, field.Name, g.TypeString(field.Type), *returnRef, *nolint)
				if err := g.AddMethod(typeName, getterName, body); err != nil {
					return model.Err(field, err.Error())
				}
			}
			return nil
		},
	)
}
