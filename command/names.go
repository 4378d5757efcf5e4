package command

import (
	"github.com/m4gshm/accessors/generator"
	"github.com/m4gshm/accessors/logger"
	"github.com/m4gshm/accessors/model/struc"
)

func funcName(kind string, namer *generator.Namer, env generator.NameEnv, model *struc.Model, field struc.Field) (string, error) {
	n, err := namer.Name(env)
	if err != nil {
		return "", model.Err(field, err.Error())
	}
	logger.Debugf("%s %s of field %s", kind, n, field.Name)
	return n, nil
}

// methodName is funcName that rejects names of the type fields, a method cannot share a name with a field.
func methodName(kind string, namer *generator.Namer, env generator.NameEnv, model *struc.Model, field struc.Field) (string, error) {
	n, err := funcName(kind, namer, env, model, field)
	if err != nil {
		return "", err
	} else if _, ok := model.FieldByName(n); ok {
		return "", model.Err(field, kind+" "+n+" has the same name as a field of "+model.TypeName())
	}
	return n, nil
}
