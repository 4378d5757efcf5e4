package util

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageName(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"time", "time"},
		{"github.com/m4gshm/accessors", "accessors"},
		{"github.com/jackc/pgx/v5", "pgx"},
		{"example.com/v1", "v1"},
		{"example.com/mod/v2/sub", "sub"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, PackageName(tc.input), tc.input)
	}
}

func TestQualifier(t *testing.T) {
	local := types.NewPackage("example.com/local", "local")
	other := types.NewPackage("example.com/other", "other")
	q := Qualifier(local.Path(), (*types.Package).Name)

	assert.Equal(t, "", q(local))
	assert.Equal(t, "other", q(other))
}

func Test_buildTagsArg(t *testing.T) {
	assert.Equal(t, []string{"-tags=accessors,dev"}, buildTagsArg([]string{"accessors", "dev"}))
}
