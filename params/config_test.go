package params

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	flagSet := flag.NewFlagSet(Name, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	return flagSet
}

func Test_NewConfig_Defaults(t *testing.T) {
	flagSet := newFlagSet()
	config := NewConfig(flagSet)
	require.NoError(t, flagSet.Parse([]string{}))

	assert.Equal(t, "", *config.Type)
	assert.Equal(t, []string{Name}, *config.BuildTags)
	assert.Equal(t, DefaultOutput, *config.Output)
	assert.Equal(t, ".", *config.PackagePattern)
	assert.False(t, *config.Debug)
}

func Test_NewConfig(t *testing.T) {
	flagSet := newFlagSet()
	config := NewConfig(flagSet)
	require.NoError(t, flagSet.Parse([]string{
		"-type", "Simple", "-out", "simple_accessors.go", "-buildTag", "dev", "-buildTag", "test",
		"getters", "-ref",
	}))

	assert.Equal(t, "Simple", *config.Type)
	assert.Equal(t, "simple_accessors.go", *config.Output)
	assert.Equal(t, []string{"dev", "test"}, *config.BuildTags)
	assert.Equal(t, []string{"getters", "-ref"}, flagSet.Args())
}

func Test_multiVal_Duplicated(t *testing.T) {
	flagSet := newFlagSet()
	NewConfig(flagSet)
	assert.Error(t, flagSet.Parse([]string{"-buildTag", "dev", "-buildTag", "dev"}))
}
