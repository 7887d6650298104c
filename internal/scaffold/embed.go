package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/expresskit/create-express/internal/catalog"
)

// The all: prefix keeps underscore-prefixed stand-ins like _gitignore.
//
//go:embed all:templates
var templatesFS embed.FS

// ErrUnknownTemplate is returned for an id outside the catalog.
var ErrUnknownTemplate = errors.New("unknown template")

// TemplateFS returns the file tree of the template with the given id.
func TemplateFS(id string) (fs.FS, error) {
	if !catalog.IsKnown(id) {
		return nil, fmt.Errorf("%w %q", ErrUnknownTemplate, id)
	}
	sub, err := fs.Sub(templatesFS, path.Join("templates", id))
	if err != nil {
		return nil, fmt.Errorf("opening template %q: %w", id, err)
	}
	return sub, nil
}
