package script

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/termgen/go-termgen/internal/helpers"
	"github.com/termgen/go-termgen/platform/script/loader"
)

const checksumLength = 12

// ExecutableUnit is one compiled version of a generator program: its source
// identity, its compiled content, and the compiler that produced it.
type ExecutableUnit struct {
	// ID identifies this unit, derived from a content checksum when the
	// caller does not supply one.
	ID string

	// CreatedAt records when the unit was compiled.
	CreatedAt time.Time

	// SourceLoader is where the program text came from.
	SourceLoader loader.Loader

	// Compiler compiled this unit.
	Compiler Compiler

	// Content is the compiled program plus its source.
	Content ExecutableContent

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewExecutableUnit loads the program through sourceLoader, compiles it, and
// wraps the result. An empty unitID is replaced with a source checksum.
func NewExecutableUnit(
	handler slog.Handler,
	unitID string,
	sourceLoader loader.Loader,
	compiler Compiler,
) (*ExecutableUnit, error) {
	handler, logger := helpers.SetupLogger(handler, "script", "ExecutableUnit")

	if compiler == nil {
		return nil, errors.New("compiler is nil")
	}
	if sourceLoader == nil {
		return nil, errors.New("loader is nil")
	}

	reader, err := sourceLoader.GetReader()
	if err != nil {
		return nil, fmt.Errorf("failed to get reader from loader: %w", err)
	}

	content, err := compiler.Compile(reader)
	if err != nil {
		return nil, fmt.Errorf("compiler failed: %w", err)
	}

	if unitID == "" {
		unitID = helpers.SHA256(content.GetSource())
		if len(unitID) > checksumLength {
			unitID = unitID[:checksumLength]
		}
	}

	logger.Debug("executable unit created", "unitID", unitID)

	return &ExecutableUnit{
		ID:           unitID,
		CreatedAt:    time.Now(),
		SourceLoader: sourceLoader,
		Compiler:     compiler,
		Content:      content,
		logHandler:   handler,
		logger:       logger,
	}, nil
}

func (e *ExecutableUnit) String() string {
	return fmt.Sprintf("script.ExecutableUnit{ID: %s}", e.ID)
}

// GetID returns the unit's identifier.
func (e *ExecutableUnit) GetID() string { return e.ID }

// GetContent returns the compiled program.
func (e *ExecutableUnit) GetContent() ExecutableContent { return e.Content }
