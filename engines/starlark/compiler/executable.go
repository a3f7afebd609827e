package compiler

import (
	starlarkLib "go.starlark.net/starlark"
)

// Executable is compiled Starlark generator content.
type Executable struct {
	source  string
	program *starlarkLib.Program
}

func newExecutable(source string, program *starlarkLib.Program) *Executable {
	return &Executable{source: source, program: program}
}

// GetSource implements script.ExecutableContent.
func (e *Executable) GetSource() string { return e.source }

// GetByteCode implements script.ExecutableContent. The evaluator asserts the
// result back into *starlark.Program.
func (e *Executable) GetByteCode() any { return e.program }
