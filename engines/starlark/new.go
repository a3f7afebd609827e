// Package starlark assembles the Starlark generator front-end: loader in,
// compiled unit, evaluator out.
package starlark

import (
	"log/slog"

	"github.com/termgen/go-termgen/engine"
	"github.com/termgen/go-termgen/engines/starlark/compiler"
	"github.com/termgen/go-termgen/engines/starlark/evaluator"
	"github.com/termgen/go-termgen/platform"
	"github.com/termgen/go-termgen/platform/script"
	"github.com/termgen/go-termgen/platform/script/loader"
)

// FromLoader compiles the generator program supplied by l and returns a
// Generator ready to run it. The unit ID is derived from the loader's source
// URL when available.
func FromLoader(handler slog.Handler, l loader.Loader, reducer *engine.Reducer) (platform.Generator, error) {
	unitID := ""
	if sourceURL := l.GetSourceURL(); sourceURL != nil {
		unitID = sourceURL.String()
	}

	comp := compiler.New(handler)

	execUnit, err := script.NewExecutableUnit(handler, unitID, l, comp)
	if err != nil {
		return nil, err
	}

	return evaluator.New(handler, execUnit, reducer), nil
}
