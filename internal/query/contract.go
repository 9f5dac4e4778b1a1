package query

import (
	"errors"
	"fmt"
	"sort"
)

// Name identifies a query in the catalogue.
type Name string

// Variables is the variables object sent alongside a query document.
type Variables map[string]any

var (
	// ErrUnknownQuery is returned when a name is not in the catalogue.
	ErrUnknownQuery = errors.New("unknown query")
	// ErrMissingVariable is returned when a required variable is not bound.
	ErrMissingVariable = errors.New("missing query variable")
	// ErrUnknownVariable is returned when a variable is not declared by the contract.
	ErrUnknownVariable = errors.New("undeclared query variable")
)

// Contract declares what a query needs and where its payload lives.
// Root is the top-level data field the normalizers read from.
type Contract struct {
	Name     Name
	Document string
	Required []string
	Optional []string
	PerPage  int
	Root     string
}

// Paginated reports whether the query takes a page number.
func (c Contract) Paginated() bool {
	return c.PerPage > 0
}

// Bind checks vars against the contract and returns a copy holding only
// declared variables.
func (c Contract) Bind(vars Variables) (Variables, error) {
	bound := make(Variables, len(vars))
	for _, name := range c.Required {
		v, ok := vars[name]
		if !ok || v == nil {
			return nil, fmt.Errorf("%s: %w %q", c.Name, ErrMissingVariable, name)
		}
		bound[name] = v
	}
	for _, name := range c.Optional {
		if v, ok := vars[name]; ok && v != nil {
			bound[name] = v
		}
	}
	for name := range vars {
		if !c.declares(name) {
			return nil, fmt.Errorf("%s: %w %q", c.Name, ErrUnknownVariable, name)
		}
	}
	return bound, nil
}

func (c Contract) declares(name string) bool {
	for _, n := range c.Required {
		if n == name {
			return true
		}
	}
	for _, n := range c.Optional {
		if n == name {
			return true
		}
	}
	return false
}

// Lookup returns the contract registered under name.
func Lookup(name Name) (Contract, bool) {
	c, ok := catalogue[name]
	return c, ok
}

// MustLookup returns the contract registered under name and panics when it is
// missing; callers only pass the package's own constants.
func MustLookup(name Name) Contract {
	c, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("query: %v %q", ErrUnknownQuery, name))
	}
	return c
}

// Names lists every registered query in sorted order.
func Names() []Name {
	names := make([]Name, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
