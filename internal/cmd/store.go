package cmd

import (
	"fmt"

	"github.com/Alia5/viipad/internal/configpaths"
	"github.com/Alia5/viipad/layout"
)

// layoutPath resolves the layout file commands read and write. An empty
// path selects the default location in the user config dir.
func layoutPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	p, err := configpaths.DefaultLayoutPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve layout path: %w", err)
	}
	return p, nil
}

func layoutStore(path string) (layout.FileStore, error) {
	p, err := layoutPath(path)
	if err != nil {
		return layout.FileStore{}, err
	}
	return layout.FileStore{Path: p}, nil
}
