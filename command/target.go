package command

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/google/shlex"

	"github.com/m4gshm/accessors/logger"
	"github.com/m4gshm/accessors/params"
	"github.com/m4gshm/accessors/use"
)

// Target is a structure type and the commands generating its accessors.
type Target struct {
	Type     *types.TypeName
	Commands []*Command
}

func (t *Target) add(cmd *Command, fset *token.FileSet, pos token.Pos) error {
	for _, c := range t.Commands {
		if c.name == cmd.name {
			return use.PosErrf(fset, pos, "duplicated %s directive of %s", cmd.name, t.Type.Name())
		}
	}
	t.Commands = append(t.Commands, cmd)
	return nil
}

// FindTargets collects types marked by //accessors:<command> [flags] lines in their doc comments,
// in order of files and declarations.
func FindTargets(fset *token.FileSet, files []*ast.File, pkg *types.Package) ([]*Target, error) {
	var targets []*Target
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec := spec.(*ast.TypeSpec)
				doc := typeSpec.Doc
				if doc == nil && len(genDecl.Specs) == 1 {
					doc = genDecl.Doc
				}
				target, err := directiveTarget(fset, pkg, typeSpec, doc)
				if err != nil {
					return nil, err
				} else if target != nil {
					targets = append(targets, target)
				}
			}
		}
	}
	return targets, nil
}

func directiveTarget(fset *token.FileSet, pkg *types.Package, typeSpec *ast.TypeSpec, doc *ast.CommentGroup) (*Target, error) {
	if doc == nil {
		return nil, nil
	}
	var target *Target
	for _, comment := range doc.List {
		text, ok := strings.CutPrefix(comment.Text, params.DirectivePrefix)
		if !ok {
			continue
		}
		if target == nil {
			obj, ok := pkg.Scope().Lookup(typeSpec.Name.Name).(*types.TypeName)
			if !ok {
				return nil, use.PosErrf(fset, typeSpec.Pos(), "type %s not found in package scope", typeSpec.Name.Name)
			}
			target = &Target{Type: obj}
		}
		args, err := shlex.Split(text)
		if err != nil {
			return nil, use.PosErrf(fset, comment.Pos(), "split directive '%s': %v", comment.Text, err)
		} else if len(args) == 0 {
			return nil, use.PosErrf(fset, comment.Pos(), "empty directive; supported: %v", Supported())
		}
		commands, err := ParseCommands(args)
		if err != nil {
			return nil, use.PosErr(fset, comment.Pos(), err.Error())
		}
		for _, cmd := range commands {
			logger.Debugf("directive %s of type %s", cmd.name, typeSpec.Name.Name)
			if err := target.add(cmd, fset, comment.Pos()); err != nil {
				return nil, err
			}
		}
	}
	return target, nil
}

// NewTarget makes the target of the command line: the type name, positional commands and -derive flag values.
func NewTarget(pkg *types.Package, typeName string, args []string, derives []params.Derive) (*Target, error) {
	obj, ok := pkg.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, use.Err("type not found, " + typeName)
	}
	target := &Target{Type: obj}
	commands, err := ParseCommands(args)
	if err != nil {
		return nil, err
	}
	for _, derive := range derives {
		cmd := Get(string(derive))
		if cmd == nil {
			return nil, use.Err("unknown derive " + string(derive))
		}
		commands = append(commands, cmd)
	}
	if len(commands) == 0 {
		return nil, use.Err("no commands for type " + typeName)
	}
	for _, cmd := range commands {
		if err := target.add(cmd, nil, token.NoPos); err != nil {
			return nil, err
		}
	}
	return target, nil
}

// MergeTargets adds the commands of the target to the target of the same type or appends the target.
func MergeTargets(targets []*Target, target *Target) ([]*Target, error) {
	for _, t := range targets {
		if t.Type == target.Type {
			for _, cmd := range target.Commands {
				if err := t.add(cmd, nil, token.NoPos); err != nil {
					return nil, err
				}
			}
			return targets, nil
		}
	}
	return append(targets, target), nil
}
