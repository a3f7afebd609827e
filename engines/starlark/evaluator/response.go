package evaluator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/termgen/go-termgen/internal/helpers"
)

// result is the output of one generation run.
type result struct {
	output   string
	execTime time.Duration
	unitID   string

	logHandler slog.Handler
	logger     *slog.Logger
}

func newResult(handler slog.Handler, output string, execTime time.Duration, unitID string) *result {
	handler, logger := helpers.SetupLogger(handler, "starlark", "result")
	return &result{
		output:     output,
		execTime:   execTime,
		unitID:     unitID,
		logHandler: handler,
		logger:     logger,
	}
}

func (r *result) String() string {
	return fmt.Sprintf(
		"starlark.result{UnitID: %s, Bytes: %d, ExecTime: %s}",
		r.unitID, len(r.output), r.GetExecTime(),
	)
}

// Output implements platform.GeneratorResponse.
func (r *result) Output() string { return r.output }

// GetUnitID implements platform.GeneratorResponse.
func (r *result) GetUnitID() string { return r.unitID }

// GetExecTime implements platform.GeneratorResponse.
func (r *result) GetExecTime() string { return r.execTime.String() }
