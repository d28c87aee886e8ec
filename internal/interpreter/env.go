package interpreter

import (
	"fmt"
	"sort"
)

// Environment holds variables.
type Environment struct {
	vars map[string]float64
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]float64)}
}

func (e *Environment) Get(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// set is only called by the assignment handler.
func (e *Environment) set(name string, val float64) {
	e.vars[name] = val
}

func (e *Environment) Len() int {
	return len(e.vars)
}

// Names returns the defined variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *Environment) String() string {
	return fmt.Sprint(e.vars)
}
