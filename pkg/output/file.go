package output

import (
	"context"
	"os"
	"path/filepath"

	"github.com/vango-dev/utemplates/internal/errors"
)

// Sink receives rendered documents by name.
type Sink interface {
	Write(ctx context.Context, name, html string) error
}

// SaveToFile writes html to path, creating missing parent directories and
// replacing any existing file.
func SaveToFile(html, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.New("E400").WithPath(path).Wrap(err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return errors.New("E400").WithPath(path).Wrap(err)
	}
	return nil
}

// Dir is a Sink that stores documents under a root directory.
type Dir struct {
	Root string
}

// Write stores html at Root/name.
func (d Dir) Write(ctx context.Context, name, html string) error {
	if err := ctx.Err(); err != nil {
		return errors.New("E400").WithPath(name).Wrap(err)
	}
	return SaveToFile(html, filepath.Join(d.Root, filepath.FromSlash(name)))
}
