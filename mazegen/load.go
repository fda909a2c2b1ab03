package mazegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a maze file. The format is chosen by extension: .yaml and .yml
// are YAML, .json is JSON. Height and Width are recomputed from the grid.
func Load(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mazegen: read %s: %w", path, err)
	}

	return Decode(data, filepath.Ext(path))
}

// Decode parses data in the format named by ext (".json", ".yaml", ".yml").
func Decode(data []byte, ext string) (*Maze, error) {
	var m Maze
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("mazegen: decode json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("mazegen: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, ext)
	}

	return newMaze(m.Grid, m.Start, m.Goal), nil
}
