package unique

import (
	"strconv"

	"github.com/m4gshm/gollections/collection/mutable"
)

func NewNamesWith(opts ...func(*Names)) *Names {
	u := &Names{uniques: mutable.NewSet[string]()}
	for _, o := range opts {
		o(u)
	}
	return u
}

// PreInit reserves names that Get never returns.
func PreInit(names ...string) func(*Names) {
	return func(un *Names) {
		for _, name := range names {
			un.uniques.AddNew(name)
		}
	}
}

// Names produces identifiers unique within one generated declaration.
type Names struct {
	uniques *mutable.Set[string]
}

// Get returns the name or the name with the first free numeric suffix and reserves it.
func (u *Names) Get(name string) string {
	if u.uniques.AddNew(name) {
		return name
	}
	for i := 1; ; i++ {
		if candidate := name + strconv.Itoa(i); u.uniques.AddNew(candidate) {
			return candidate
		}
	}
}
