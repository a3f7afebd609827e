package engine

import "errors"

// ErrDepthExceeded reports a rewrite chain that never reached its base case
// within the configured step limit. The limit is explicit here rather than
// deferred to any outer tooling, so the failure names a number the caller
// can raise via options.WithMaxDepth.
var ErrDepthExceeded = errors.New("reduction depth limit exceeded")
