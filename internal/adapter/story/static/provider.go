package staticstory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"shadowrise/internal/app/ports"
)

// Provider serves story chapters from a content directory: index.json plus
// one chapter-N.json per chapter.
type Provider struct {
	Root string
}

func (p Provider) Index(_ context.Context) ([]byte, error) {
	return os.ReadFile(filepath.Join(p.Root, "index.json"))
}

func (p Provider) Chapter(_ context.Context, number int) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(p.Root, fmt.Sprintf("chapter-%d.json", number)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ports.ErrNotFound
	}
	return b, err
}

var _ ports.StoryProvider = Provider{}
