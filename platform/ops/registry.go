package ops

import "fmt"

// Registry maps operation names to their single registered implementation.
// It is populated once during setup and read-only afterwards; the engine
// itself dispatches on the Op carried by a Call, the registry only serves
// front-ends that resolve operations by name.
type Registry struct {
	byName map[string]*Op
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Op)}
}

// Register adds op under its name. Registering the same name twice is an
// error: each operation has exactly one arity record.
func (r *Registry) Register(op *Op) error {
	if op == nil {
		return ErrNilRegistration
	}
	if _, exists := r.byName[op.name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOp, op.name)
	}
	r.byName[op.name] = op
	return nil
}

// Lookup resolves a name to its operation.
func (r *Registry) Lookup(name string) (*Op, error) {
	op, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	return op, nil
}

// Len returns the number of registered operations.
func (r *Registry) Len() int { return len(r.byName) }
