// Package attr extracts per-field configuration blocks from struct tags.
//
// A block is the value of one tag key, for example `setter:"into, into=false"`.
// It is a comma separated list of entries, each either a bare word, shorthand
// for word=true, or a key=value pair whose value is a Go literal token.
package attr

import (
	"go/scanner"
	"go/token"

	"github.com/m4gshm/gollections/map_"
	"github.com/m4gshm/gollections/slice/sort"
	"github.com/pkg/errors"
)

type Kind int

const (
	Bool Kind = iota
	Int
	Float
	Imag
	Char
	String
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case Imag:
		return "imag"
	case Char:
		return "char"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Lit is a literal option value as written in the tag.
type Lit struct {
	Kind  Kind
	Value string
}

var True = Lit{Kind: Bool, Value: "true"}

func (l Lit) Bool() (bool, error) {
	if l.Kind != Bool {
		return false, errors.Errorf("expected bool, got %s %s", l.Kind, l.Value)
	}
	return l.Value == "true", nil
}

// Config maps option names of one block to their values.
type Config map[string]Lit

// Bool returns the boolean option or the default if the option is absent.
func (c Config) Bool(key string, def bool) (bool, error) {
	lit, ok := c[key]
	if !ok {
		return def, nil
	}
	v, err := lit.Bool()
	if err != nil {
		return false, errors.Wrapf(err, "option %s", key)
	}
	return v, nil
}

func (c Config) Keys() []string {
	return sort.Asc(map_.Keys(c))
}

// Extract returns the configuration block named name from the struct tag.
// No block gives an empty Config, more than one block is an error.
func Extract(tag, name string) (Config, error) {
	blocks := lookupAll(tag, name)
	switch len(blocks) {
	case 0:
		return Config{}, nil
	case 1:
		config, err := parse(blocks[0])
		if err != nil {
			return nil, errors.Wrapf(err, "malformed %s attribute", name)
		}
		return config, nil
	default:
		return nil, errors.Errorf("expected at most one %s attribute", name)
	}
}

func parse(block string) (Config, error) {
	src := []byte(block)
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var scanErr error
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		if scanErr == nil {
			scanErr = errors.Errorf("column %d: %s", pos.Column, msg)
		}
	}, 0)

	next := func() (int, token.Token, string) {
		pos, tok, lit := s.Scan()
		if tok == token.SEMICOLON && lit == "\n" {
			tok = token.EOF
		}
		return file.Offset(pos) + 1, tok, lit
	}

	config := Config{}
	for {
		col, tok, key := next()
		if tok == token.EOF {
			break
		} else if tok != token.IDENT {
			return nil, unexpected(col, tok, key, "option name")
		}

		col, tok, lit := next()
		if tok == token.ASSIGN {
			var value Lit
			if col, tok, lit = next(); tok == token.IDENT && (lit == "true" || lit == "false") {
				value = Lit{Kind: Bool, Value: lit}
			} else if kind, ok := literalKinds[tok]; ok {
				value = Lit{Kind: kind, Value: lit}
			} else {
				return nil, unexpected(col, tok, lit, "literal value of "+key)
			}
			config[key] = value
			col, tok, lit = next()
		} else {
			config[key] = True
		}

		if tok == token.EOF {
			break
		} else if tok != token.COMMA {
			return nil, unexpected(col, tok, lit, "comma")
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}
	return config, nil
}

var literalKinds = map[token.Token]Kind{
	token.INT:    Int,
	token.FLOAT:  Float,
	token.IMAG:   Imag,
	token.CHAR:   Char,
	token.STRING: String,
}

func unexpected(col int, tok token.Token, lit, expected string) error {
	found := tok.String()
	if len(lit) > 0 {
		found = lit
	}
	return errors.Errorf("column %d: expected %s, found '%s'", col, expected, found)
}
