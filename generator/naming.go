package generator

import (
	"go/token"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
)

// NameEnv is the data a name expression is evaluated with.
type NameEnv struct {
	Field  string
	Type   string
	Prefix string
	Into   bool
	// Default is the name generated without the expression.
	Default string
}

func (e NameEnv) vars() map[string]any {
	return map[string]any{
		"field":    e.Field,
		"type":     e.Type,
		"prefix":   e.Prefix,
		"into":     e.Into,
		"name":     e.Default,
		"export":   func(s string) string { return IdentName(s, true) },
		"unexport": func(s string) string { return IdentName(s, false) },
	}
}

// Namer computes generated function names by an expr-lang expression, for example: prefix + export(field).
// A nil Namer returns default names.
type Namer struct {
	expression string
	program    *vm.Program
}

func NewNamer(expression string) (*Namer, error) {
	if len(expression) == 0 {
		return nil, nil
	}
	program, err := expr.Compile(expression, expr.Env(NameEnv{}.vars()), expr.AsKind(reflect.String))
	if err != nil {
		return nil, errors.Wrapf(err, "compile name expression '%s'", expression)
	}
	return &Namer{expression: expression, program: program}, nil
}

func (n *Namer) Name(env NameEnv) (string, error) {
	if n == nil {
		return env.Default, nil
	}
	out, err := expr.Run(n.program, env.vars())
	if err != nil {
		return "", errors.Wrapf(err, "evaluate name expression '%s' for field %s", n.expression, env.Field)
	}
	name, _ := out.(string)
	if !token.IsIdentifier(name) {
		return "", errors.Errorf("name expression '%s' result '%s' is not an identifier", n.expression, name)
	}
	return name, nil
}
