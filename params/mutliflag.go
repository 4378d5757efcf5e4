package params

import (
	"flag"
	"fmt"
	"strings"
)

type multiflag struct {
	name             string
	values           []string
	defaults         bool
	duplicateControl map[string]struct{}
}

func (f *multiflag) String() string {
	return strings.Join(f.values, ",")
}

// Set replaces the default values by the first explicit value and appends the next ones.
func (f *multiflag) Set(s string) error {
	if f.defaults {
		f.values = []string{}
		f.duplicateControl = map[string]struct{}{}
		f.defaults = false
	}
	if err := checkDuplicated(s, f.duplicateControl, f.name); err != nil {
		return err
	}
	f.values = append(f.values, s)
	f.duplicateControl[s] = struct{}{}
	return nil
}

func (f *multiflag) Get() interface{} { return f.values }

func multiVal(flagSet *flag.FlagSet, name string, defValues []string, usage string) *[]string {
	duplicateControl := map[string]struct{}{}
	for _, defValue := range defValues {
		if err := checkDuplicated(defValue, duplicateControl, name); err != nil {
			panic(err)
		}
		duplicateControl[defValue] = struct{}{}
	}
	values := &multiflag{name: name, values: defValues, defaults: true, duplicateControl: duplicateControl}
	flagSet.Var(values, name, usage)
	return &values.values
}

func checkDuplicated(value string, duplicateControl map[string]struct{}, name string) error {
	if _, ok := duplicateControl[value]; ok {
		return fmt.Errorf("duplicated value %v of parameter %v", value, name)
	}
	return nil
}
