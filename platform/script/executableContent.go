package script

// ExecutableContent is a validated, compiled generator program. The compiled
// form is engine-specific; the front-end that compiled it asserts the
// concrete type back out at run time.
type ExecutableContent interface {
	// GetSource returns the generator program source before compilation.
	GetSource() string

	// GetByteCode returns the compiled program in a front-end-specific
	// format.
	GetByteCode() any
}
