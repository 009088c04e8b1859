package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

var (
	ErrRosterMismatch  = errors.New("positions and questions differ in count")
	ErrEmptyRoster     = errors.New("level has no targets")
	ErrBadCorrectIndex = errors.New("correct option out of range")
	ErrUnknownLevel    = errors.New("unknown level")
)

// Point is a spawn position in scene units
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Question is one multiple-choice prompt of a level
type Question struct {
	Text    string   `yaml:"text"`
	Options []string `yaml:"options"`
	Correct int      `yaml:"correct"`
}

// Level is a level descriptor. Positions and Questions pair up one to one,
// in roster order.
type Level struct {
	ID           int        `yaml:"id"`
	Name         string     `yaml:"name"`
	Briefing     string     `yaml:"briefing"`
	Background   string     `yaml:"background"`
	EntitySprite string     `yaml:"entitySprite"`
	EntityWidth  float64    `yaml:"entityWidth"`
	EntityHeight float64    `yaml:"entityHeight"`
	PassScore    int        `yaml:"passScore"`
	Layout       string     `yaml:"layout"` // optional TMX file with an Entities object group
	Positions    []Point    `yaml:"positions"`
	Questions    []Question `yaml:"questions"`

	Source string `yaml:"-"`
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads the levels embedded in the binary
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: "levels"}
}

// NewLevelLoaderFS reads levels from dir inside fsys
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LoadAll loads every *.yaml level in file name order
func (l *LevelLoader) LoadAll() ([]Level, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read level directory %s: %w", l.dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("no level files in %s", l.dir)
	}

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		level, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *level)
	}
	return levels, nil
}

// MustLoadAll is LoadAll for the embedded levels, which are known good
func (l *LevelLoader) MustLoadAll() []Level {
	levels, err := l.LoadAll()
	if err != nil {
		panic(err)
	}
	return levels
}

// Load reads, completes and validates a single level file
func (l *LevelLoader) Load(name string) (*Level, error) {
	file := path.Join(l.dir, name)
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", file, err)
	}

	var level Level
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to parse level YAML from %s: %w", file, err)
	}
	level.Source = file

	if level.Layout != "" {
		positions, err := loadLayout(l.fsys, path.Join(l.dir, level.Layout))
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", file, err)
		}
		level.Positions = positions
	}

	applyDefaults(&level)

	if err := ValidateLevel(&level); err != nil {
		return nil, fmt.Errorf("invalid level in %s: %w", file, err)
	}
	return &level, nil
}

func applyDefaults(level *Level) {
	if level.Name == "" {
		level.Name = fmt.Sprintf("Level %d", level.ID)
	}
	if level.Background == "" {
		level.Background = "range"
	}
	if level.EntitySprite == "" {
		level.EntitySprite = "infantry"
	}
}

// CheckRoster reports a level whose positions and questions differ in count
func CheckRoster(level *Level) error {
	if len(level.Positions) != len(level.Questions) {
		return fmt.Errorf("%w: %d positions, %d questions", ErrRosterMismatch, len(level.Positions), len(level.Questions))
	}
	return nil
}

// ValidateLevel rejects descriptors the simulation cannot run: every
// position needs exactly one question, and the roster may not be empty.
func ValidateLevel(level *Level) error {
	if err := CheckRoster(level); err != nil {
		return err
	}
	if len(level.Questions) == 0 {
		return ErrEmptyRoster
	}
	if level.EntityWidth <= 0 || level.EntityHeight <= 0 {
		return fmt.Errorf("entity size must be positive, got %vx%v", level.EntityWidth, level.EntityHeight)
	}
	if level.PassScore < 0 || level.PassScore > len(level.Questions) {
		return fmt.Errorf("passScore must be between 0 and %d, got %d", len(level.Questions), level.PassScore)
	}
	for i, q := range level.Questions {
		if q.Text == "" {
			return fmt.Errorf("question %d: text is required", i)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: at least two options are required", i)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question %d: %w: %d of %d", i, ErrBadCorrectIndex, q.Correct, len(q.Options))
		}
	}
	return nil
}

// Find returns the level with the given id
func Find(levels []Level, id int) (int, error) {
	for i := range levels {
		if levels[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
}
