package meshclient

import (
	"context"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"facemetry/internal/capture"
	"facemetry/internal/facerr"
	"facemetry/internal/landmark"
)

// FileSource reads a landmark set from a JSON point array, for offline runs
// where detection already happened elsewhere.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the given file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Detect ignores the frame and returns the stored set. The file must hold
// either an empty array or a complete mesh.
func (s *FileSource) Detect(_ context.Context, _ capture.Frame) (landmark.Set, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, facerr.Wrap(facerr.CodeInvalidInput, err)
	}

	var set landmark.Set
	if err := jsoniter.Unmarshal(data, &set); err != nil {
		return nil, facerr.Wrap(facerr.CodeInvalidInput, fmt.Errorf("parse landmark file %s: %w", s.path, err))
	}

	if len(set) != 0 && len(set) != landmark.MeshSize {
		return nil, facerr.Newf(facerr.CodeInvalidInput,
			"landmark file %s has %d points, want %d or none", s.path, len(set), landmark.MeshSize)
	}
	return set, nil
}
