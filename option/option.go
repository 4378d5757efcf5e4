// Package option builds the typed per-field options of the getters and setters derives.
package option

import (
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/accessors/attr"
	"github.com/m4gshm/accessors/logger"
	"github.com/m4gshm/accessors/model/struc"
)

const (
	GetterAttr = "getter"
	SetterAttr = "setter"

	intoOpt = "into"
)

// Setter options of a field.
type Setter struct {
	// Into makes the setter accept any value convertible to the field type.
	Into bool
}

// Getter options of a field. No option is recognized yet.
type Getter struct{}

func NewSetter(model *struc.Model, field struc.Field) (Setter, error) {
	config, err := extract(model, field, SetterAttr, intoOpt)
	if err != nil {
		return Setter{}, err
	}
	into, err := config.Bool(intoOpt, false)
	if err != nil {
		return Setter{}, model.Err(field, err.Error())
	}
	return Setter{Into: into}, nil
}

// NewGetter validates the getter block of the field and discards it.
func NewGetter(model *struc.Model, field struc.Field) (Getter, error) {
	if _, err := extract(model, field, GetterAttr); err != nil {
		return Getter{}, err
	}
	return Getter{}, nil
}

func extract(model *struc.Model, field struc.Field, name string, known ...string) (attr.Config, error) {
	config, err := attr.Extract(field.Tag, name)
	if err != nil {
		return nil, model.Err(field, err.Error())
	}
	for _, key := range config.Keys() {
		if !slice.Contains(known, key) {
			logger.Debugf("unknown %s option '%s' of field %s.%s", name, key, model.TypeName(), field.Name)
		}
	}
	return config, nil
}
