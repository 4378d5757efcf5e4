package params

import (
	"flag"

	"github.com/m4gshm/flag/flagenum"
)

const (
	Name            = "accessors"
	DefaultOutput   = Name + "_gen.go"
	DirectivePrefix = "//" + Name + ":"
)

// Derive is the name of a generation command.
type Derive string

const (
	Getters Derive = "getters"
	Setters Derive = "setters"
)

func toString[F ~string](from F) string { return string(from) }
func fromString[F ~string](s string) F  { return F(s) }

func NewConfig(flagSet *flag.FlagSet) *Config {
	derive, err := flagenum.Multiple(flagSet, "derive", []Derive{}, []Derive{Getters, Setters}, fromString[Derive], toString[Derive],
		"generate accessors of the -type structure with default command flags")
	if err != nil {
		panic(err)
	}
	return &Config{
		Type:           flagSet.String("type", "", "structure type name; optional if the type is marked by "+DirectivePrefix+" comments"),
		BuildTags:      multiVal(flagSet, "buildTag", []string{Name}, "include build tag"),
		Output:         flagSet.String("out", DefaultOutput, "output file name; relative paths are resolved against the package directory"),
		PackagePattern: flagSet.String("package", ".", "used package"),
		OutBuildTag:    flagSet.String("outBuildTag", "", "add build constraint to generated file"),
		Derive:         derive,
		Debug:          flagSet.Bool("debug", false, "enable debug logging"),
	}
}

type Config struct {
	Type           *string
	BuildTags      *[]string
	Output         *string
	PackagePattern *string
	OutBuildTag    *string
	Derive         *[]Derive
	Debug          *bool
}

func Nolint(flagSet *flag.FlagSet) *bool {
	return flagSet.Bool("nolint", false, "add //nolint comment")
}

func NoExport(flagSet *flag.FlagSet) *bool {
	return flagSet.Bool("no-export", false, "no export generated methods")
}

func Prefix(flagSet *flag.FlagSet, def, usage string) *string {
	return flagSet.String("prefix", def, usage)
}

func NameExpr(flagSet *flag.FlagSet, content string) *string {
	return flagSet.String("name", "", content+" name expression (expr-lang); "+
		"variables: field, type, prefix, into, name (default name); functions: export, unexport")
}
