package cmd

import (
	"fmt"

	"github.com/Alia5/vtouch/internal/configpaths"
	"github.com/Alia5/vtouch/layout"
)

// layoutStore returns the store for path, or for the default layout file
// when path is empty.
func layoutStore(path string) (layout.FileStore, error) {
	if path == "" {
		p, err := configpaths.DefaultLayoutPath()
		if err != nil {
			return layout.FileStore{}, fmt.Errorf("resolve layout path: %w", err)
		}
		path = p
	}
	return layout.FileStore{Path: path}, nil
}
