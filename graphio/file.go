package graphio

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/katalvlaran/lvpar/core"
)

// Load reads the graph stored at path on fs; the format follows the
// file extension.
func Load(fs afero.Fs, path string) (*core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer file.Close()

	g, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("graphio: load %s: %w", path, err)
	}
	return g, nil
}

// Save writes g to path on fs, creating or truncating it; the format
// follows the file extension.
func Save(fs afero.Fs, path string, g *core.Graph) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	if err := Encode(file, g, f); err != nil {
		file.Close()
		return fmt.Errorf("graphio: save %s: %w", path, err)
	}
	return file.Close()
}
