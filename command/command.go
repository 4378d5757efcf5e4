package command

import (
	"flag"
	"fmt"
	"os"

	"github.com/m4gshm/accessors/params"
)

func New(name params.Derive, description string, flagSet *flag.FlagSet, op func(context *Context) error) *Command {
	c := &Command{
		name:        name,
		description: description,
		flag:        flagSet,
		op:          op,
	}
	flagSet.Usage = c.PrintUsage
	return c
}

type Command struct {
	name        params.Derive
	description string
	op          func(context *Context) error
	flag        *flag.FlagSet
}

func (c *Command) Name() params.Derive {
	return c.name
}

func (c *Command) PrintUsage() {
	out := c.flag.Output()
	_, _ = fmt.Fprintln(out, c.description)
	_, _ = fmt.Fprintln(out, "Flags:")
	c.flag.PrintDefaults()
}

func (c *Command) Run(context *Context) error {
	return c.op(context)
}

// Parse consumes the command flags and returns the rest arguments.
func (c *Command) Parse(arguments []string) ([]string, error) {
	if err := c.flag.Parse(arguments); err != nil {
		return nil, fmt.Errorf("parse args '%s': %w", c.name, err)
	}
	return c.flag.Args(), nil
}

// Get returns a new instance of the named command or nil.
func Get(name string) *Command {
	if constructor, ok := index[params.Derive(name)]; ok {
		return constructor()
	}
	return nil
}

// ParseCommands parses a chain of commands with their flags, like: getters -ref setters -prefix With.
func ParseCommands(args []string) ([]*Command, error) {
	var result []*Command
	for len(args) > 0 {
		name := args[0]
		cmd := Get(name)
		if cmd == nil {
			return nil, fmt.Errorf("unknown command '%s'; supported: %v", name, Supported())
		}
		rest, err := cmd.Parse(args[1:])
		if err != nil {
			return nil, err
		}
		result = append(result, cmd)
		args = rest
	}
	return result, nil
}

func Supported() []params.Derive {
	list := []params.Derive{}
	for _, cmd := range commands {
		list = append(list, cmd().name)
	}
	return list
}

func PrintUsage() {
	out := os.Stderr
	_, _ = fmt.Fprintln(out, "Commands:")
	for _, cmd := range commands {
		c := cmd()
		_, _ = fmt.Fprintln(out, "  "+string(c.name)+"\n    \t"+c.description)
	}
}

var commands = []func() *Command{
	NewGetters,
	NewSetters,
}

var index = toMap(commands)

func toMap(commands []func() *Command) map[params.Derive]func() *Command {
	index := map[params.Derive]func() *Command{}
	for _, c := range commands {
		index[c().name] = c
	}
	return index
}
