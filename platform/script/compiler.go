package script

import "io"

// Compiler turns generator program source into ExecutableContent. Each
// front-end provides one; compilation happens once, when the executable
// unit is built.
type Compiler interface {
	Compile(reader io.ReadCloser) (ExecutableContent, error)
}
