package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/accessors/internal/srctest"
	"github.com/m4gshm/accessors/params"
)

func commandNames(target *Target) []params.Derive {
	names := make([]params.Derive, len(target.Commands))
	for i, c := range target.Commands {
		names[i] = c.Name()
	}
	return names
}

func Test_FindTargets(t *testing.T) {
	pkg := srctest.MustCheck(t, map[string]string{"entity.go": `package entity

// Simple has no directives.
// accessors: is not a directive
type Simple struct{ a int }

// Entity is the marked type.
//
//accessors:getters -ref setters -prefix With
type Entity struct{ a int }

type (
	//accessors:setters
	First struct{ a int }
	Second struct{ b int }
)

//accessors:getters
type (
	Third  struct{ c int }
	Fourth struct{ d int }
)
`})
	targets, err := FindTargets(pkg.Fset, pkg.Files, pkg.Types)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	assert.Equal(t, "Entity", targets[0].Type.Name())
	assert.Equal(t, []params.Derive{params.Getters, params.Setters}, commandNames(targets[0]))
	assert.Equal(t, "First", targets[1].Type.Name())
	assert.Equal(t, []params.Derive{params.Setters}, commandNames(targets[1]))
}

func Test_FindTargets_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains string
	}{
		{
			name: "unknown command",
			src: `package entity

//accessors:builder
type Entity struct{ a int }
`,
			contains: "entity.go:3:1: unknown command 'builder'; supported: [getters setters]",
		},
		{
			name: "duplicated directive",
			src: `package entity

//accessors:getters
//accessors:getters -ref
type Entity struct{ a int }
`,
			contains: "entity.go:4:1: duplicated getters directive of Entity",
		},
		{
			name: "unknown flag",
			src: `package entity

//accessors:setters -into
type Entity struct{ a int }
`,
			contains: "parse args 'setters'",
		},
		{
			name: "empty directive",
			src: `package entity

//accessors:
type Entity struct{ a int }
`,
			contains: "empty directive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := srctest.MustCheck(t, map[string]string{"entity.go": tt.src})
			_, err := FindTargets(pkg.Fset, pkg.Files, pkg.Types)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func Test_NewTarget(t *testing.T) {
	pkg := srctest.MustCheck(t, map[string]string{"entity.go": `package entity

//accessors:getters
type Entity struct{ a int }
`})
	target, err := NewTarget(pkg.Types, "Entity", []string{"setters", "-prefix", "With"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []params.Derive{params.Setters}, commandNames(target))

	target, err = NewTarget(pkg.Types, "Entity", nil, []params.Derive{params.Getters, params.Setters})
	require.NoError(t, err)
	assert.Equal(t, []params.Derive{params.Getters, params.Setters}, commandNames(target))

	_, err = NewTarget(pkg.Types, "Unknown", []string{"getters"}, nil)
	assert.EqualError(t, err, "type not found, Unknown")

	_, err = NewTarget(pkg.Types, "Entity", nil, nil)
	assert.EqualError(t, err, "no commands for type Entity")

	_, err = NewTarget(pkg.Types, "Entity", []string{"getters"}, []params.Derive{params.Getters})
	assert.EqualError(t, err, "duplicated getters directive of Entity")
}

func Test_MergeTargets(t *testing.T) {
	pkg := srctest.MustCheck(t, map[string]string{"entity.go": `package entity

//accessors:getters
type Entity struct{ a int }

type Other struct{ b int }
`})
	targets, err := FindTargets(pkg.Fset, pkg.Files, pkg.Types)
	require.NoError(t, err)

	setters, err := NewTarget(pkg.Types, "Entity", []string{"setters"}, nil)
	require.NoError(t, err)
	targets, err = MergeTargets(targets, setters)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, []params.Derive{params.Getters, params.Setters}, commandNames(targets[0]))

	other, err := NewTarget(pkg.Types, "Other", []string{"getters"}, nil)
	require.NoError(t, err)
	targets, err = MergeTargets(targets, other)
	require.NoError(t, err)
	require.Len(t, targets, 2)

	getters, err := NewTarget(pkg.Types, "Entity", []string{"getters"}, nil)
	require.NoError(t, err)
	_, err = MergeTargets(targets, getters)
	assert.EqualError(t, err, "duplicated getters directive of Entity")
}

func Test_ParseCommands(t *testing.T) {
	commands, err := ParseCommands([]string{"getters", "-ref", "-nolint", "setters", "-prefix", "With"})
	require.NoError(t, err)
	require.Len(t, commands, 2)
	assert.Equal(t, params.Getters, commands[0].Name())
	assert.Equal(t, params.Setters, commands[1].Name())

	_, err = ParseCommands([]string{"-ref"})
	assert.EqualError(t, err, "unknown command '-ref'; supported: [getters setters]")

	commands, err = ParseCommands(nil)
	require.NoError(t, err)
	assert.Empty(t, commands)
}
