// Package platform declares the contracts shared by the engine front-ends:
// the generator surface and its response shape.
package platform

import "context"

// Generator runs a compiled generator program and returns the C source it
// produced. The program and its configuration are fixed at construction, so
// a Generator follows the compile-once, generate-many pattern.
type Generator interface {
	// Generate executes the generator program. Every emitted fragment is
	// fully reduced before it reaches the response; a reduction failure
	// (arity mismatch, counter underflow, depth limit) aborts the run.
	Generate(ctx context.Context) (GeneratorResponse, error)
}

// GeneratorResponse carries the output of one generation run.
type GeneratorResponse interface {
	// Output returns the generated C translation-unit text.
	Output() string

	// GetUnitID returns the ID of the executable unit that produced this
	// output.
	GetUnitID() string

	// GetExecTime returns how long the run took, formatted for logs.
	GetExecTime() string
}
