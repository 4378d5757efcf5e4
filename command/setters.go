package command

import (
	"flag"

	"github.com/m4gshm/gollections/op"

	"github.com/m4gshm/accessors/generator"
	"github.com/m4gshm/accessors/logger"
	"github.com/m4gshm/accessors/option"
	"github.com/m4gshm/accessors/params"
	"github.com/m4gshm/accessors/typeparams"
	"github.com/m4gshm/accessors/unique"
)

func NewSetters() *Command {
	const (
		cmdName = params.Setters
	)
	var (
		flagSet  = flag.NewFlagSet(string(cmdName), flag.ContinueOnError)
		prefix   = params.Prefix(flagSet, generator.DefaultSetterPrefix, "setter methods and functions prefix")
		noExport = params.NoExport(flagSet)
		nameExpr = params.NameExpr(flagSet, "setter")
		nolint   = params.Nolint(flagSet)
	)

	return New(
		cmdName, "generates a setter per field of a structure type; "+
			"a field tagged `setter:\"into\"` gets a generic setter function accepting convertible values",
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
			rec := generator.Receiver{Var: names.Get(generator.TypeReceiverVar(typeName)), Type: typeName + tparams.Ident(), Ref: true}
			arg := names.Get(generator.ValueArg)
			valueParam := names.Get(generator.ValueTypeParam)
			export := !*noExport
			logger.Debugf("generate setters: receiver %s, type %s, prefix %s", rec.Var, rec.Type, *prefix)

			for _, field := range model.Fields {
				setter, err := option.NewSetter(model, field)
				if err != nil {
					return err
				}
				fieldType := g.TypeString(field.Type)
				env := generator.NameEnv{Field: field.Name, Type: typeName, Prefix: *prefix, Into: setter.Into}
				if !setter.Into {
					env.Default = generator.SetterName(field.Name, *prefix, export)
					setterName, err := methodName("setter", namer, env, model, field)
					if err != nil {
						return err
					}
					body := generator.GenerateSetter(rec, setterName, field.Name, fieldType, arg, *nolint)
					if err := g.AddMethod(typeName, setterName, body); err != nil {
						return model.Err(field, err.Error())
					}
					continue
				}

				constraint, convert, err := generator.IntoConstraint(field.Type, g.OutPkg, g.TypeString)
				if err != nil {
					return model.Err(field, err.Error())
				}
				env.Default = generator.SetterFuncName(typeName, field.Name, *prefix, export)
				setterFunc, err := funcName("setter", namer, env, model, field)
				if err != nil {
					return err
				}
				valueExpr := op.IfElse(convert, generator.ConvertExpr(fieldType, arg), arg)
				body := generator.GenerateIntoSetter(rec, setterFunc, tparams.Decl(valueParam+" "+constraint), field.Name, valueExpr, arg, valueParam, *nolint)
				if err := g.AddFunc(setterFunc, body); err != nil {
					return model.Err(field, err.Error())
				}
			}
			return nil
		},
	)
}
