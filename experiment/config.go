package experiment

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/heuristic"
)

// ErrInvalidConfig is returned by Validate, and by Run and the loaders for
// configs that fail it.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Maze generation modes for a Difficulty.
const (
	ModeRandom  = "random"  // uniform walls with ObstacleProb; the default
	ModeCarved  = "carved"  // backtracker corridors on a Rows×Rows grid
	ModeKruskal = "kruskal" // randomized Kruskal maze on a Rows×Rows grid
	ModeSimple  = "simple"  // fixed 5×5 maze
	ModeMedium  = "medium"  // fixed 10×10 maze
)

// Difficulty is one batch of mazes generated with the same parameters.
type Difficulty struct {
	Name         string  `yaml:"name"`
	Mode         string  `yaml:"mode,omitempty"`
	Rows         int     `yaml:"rows,omitempty"`
	Cols         int     `yaml:"cols,omitempty"`
	ObstacleProb float64 `yaml:"obstacle_prob,omitempty"`
	Mazes        int     `yaml:"mazes"`
	// EnsurePath opens the fewest walls needed to make each maze solvable.
	EnsurePath bool `yaml:"ensure_path,omitempty"`
}

// Config describes a suite.
type Config struct {
	// Seed drives every generated maze.
	Seed int64 `yaml:"seed"`
	// Parallel bounds concurrent searches; <= 0 means one per CPU.
	Parallel      int          `yaml:"parallel"`
	AllowDiagonal bool         `yaml:"allow_diagonal"`
	Heuristics    []string     `yaml:"heuristics"`
	MaxExpansions int          `yaml:"max_expansions,omitempty"`
	Difficulties  []Difficulty `yaml:"difficulties"`
}

// DefaultConfig compares every heuristic on Easy (5×5, 20%), Medium
// (10×10, 30%) and Hard (20×20, 35%) random mazes, five of each.
func DefaultConfig() Config {
	return Config{
		Seed:       1,
		Parallel:   4,
		Heuristics: heuristic.Names(),
		Difficulties: []Difficulty{
			{Name: "Easy", Mode: ModeRandom, Rows: 5, Cols: 5, ObstacleProb: 0.2, Mazes: 5},
			{Name: "Medium", Mode: ModeRandom, Rows: 10, Cols: 10, ObstacleProb: 0.3, Mazes: 5},
			{Name: "Hard", Mode: ModeRandom, Rows: 20, Cols: 20, ObstacleProb: 0.35, Mazes: 5},
		},
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if len(c.Heuristics) == 0 {
		return fmt.Errorf("%w: no heuristics", ErrInvalidConfig)
	}
	for _, name := range c.Heuristics {
		if _, err := heuristic.Lookup(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions cannot be negative (%d)", ErrInvalidConfig, c.MaxExpansions)
	}
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulties", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Difficulties))
	for i, d := range c.Difficulties {
		if d.Name == "" {
			return fmt.Errorf("%w: difficulty %d has no name", ErrInvalidConfig, i)
		}
		if seen[d.Name] {
			return fmt.Errorf("%w: duplicate difficulty %q", ErrInvalidConfig, d.Name)
		}
		seen[d.Name] = true
		if err := d.validate(); err != nil {
			return fmt.Errorf("%w: difficulty %q: %w", ErrInvalidConfig, d.Name, err)
		}
	}

	return nil
}

func (d Difficulty) validate() error {
	if d.Mazes <= 0 {
		return fmt.Errorf("mazes must be positive (%d)", d.Mazes)
	}
	switch d.mode() {
	case ModeRandom:
		if d.Rows <= 0 || d.Cols <= 0 {
			return fmt.Errorf("size must be positive (%dx%d)", d.Rows, d.Cols)
		}
		if d.ObstacleProb < 0 || d.ObstacleProb > 1 || math.IsNaN(d.ObstacleProb) {
			return fmt.Errorf("obstacle_prob must be within [0, 1] (%v)", d.ObstacleProb)
		}
	case ModeCarved, ModeKruskal:
		if d.Rows < 3 {
			return fmt.Errorf("%s mazes need rows >= 3 (%d)", d.mode(), d.Rows)
		}
	case ModeSimple, ModeMedium:
	default:
		return fmt.Errorf("unknown mode %q", d.Mode)
	}

	return nil
}

func (d Difficulty) mode() string {
	if d.Mode == "" {
		return ModeRandom
	}

	return strings.ToLower(d.Mode)
}

// LoadConfig reads a YAML suite from path and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: read %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a YAML suite and validates it. Keys missing from data
// keep their DefaultConfig values; lists present in data replace the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("experiment: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

//go:embed suites/*.yaml
var suiteFS embed.FS

// LoadPreset returns the embedded suite with the given name.
func LoadPreset(name string) (Config, error) {
	data, err := suiteFS.ReadFile("suites/" + name + ".yaml")
	if err != nil {
		return Config{}, fmt.Errorf("experiment: preset %q not found (available: %s): %w",
			name, strings.Join(Presets(), ", "), err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("preset %q: %w", name, err)
	}

	return cfg, nil
}

// Presets returns the names of the embedded suites, sorted.
func Presets() []string {
	entries, _ := suiteFS.ReadDir("suites")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)

	return names
}
