package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger returns a handler/logger pair for a component. A nil handler
// gets a default text handler grouped under the component name, so library
// users who never configure logging still get attributed output.
func SetupLogger(handler slog.Handler, component string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(component)
	}

	if groupName != "" {
		return handler, slog.New(handler.WithGroup(groupName))
	}
	return handler, slog.New(handler)
}
