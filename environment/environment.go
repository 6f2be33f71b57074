// Package environment implements the lexically scoped name→value chain
// the evaluator reads and writes against. Grounded on the teacher's
// scope.Scope: a map plus a parent pointer, with Define always
// shadowing in the current scope and Assign walking up to the nearest
// scope that already declares the name.
package environment

import "github.com/akashmaji946/golox/value"

// Environment is a single lexical scope: a set of bindings plus a
// pointer to the enclosing scope (nil for the global environment).
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates a scope enclosed by parent. Pass nil to create the
// global scope.
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]value.Value),
		enclosing: parent,
	}
}

// Define unconditionally binds name to v in the current environment,
// shadowing any binding of the same name in an enclosing scope.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get searches the current environment and then each enclosing parent
// in order. The second return value is false if name is bound nowhere
// in the chain. The walk is iterative — lexical nesting depth should
// never consume host call-stack frames.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return value.Nil, false
}

// Assign writes v into the nearest enclosing environment (starting
// with the current one) that already declares name. It returns false
// without side effects if name is bound nowhere in the chain.
func (e *Environment) Assign(name string, v value.Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return true
		}
	}
	return false
}
