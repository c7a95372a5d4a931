package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// library is the full static content set parsed from the embedded
// YAML files. It is loaded once and treated as read-only afterwards.
type library struct {
	Games   []Game
	Words   map[string]WordContent
	Pairs   []PairSet
	Events  map[string]EventSet
	Puzzles []Puzzle
}

func loadLibrary() (*library, error) {
	lib := &library{}

	var games struct {
		Games []Game `yaml:"games"`
	}
	if err := loadYAML("data/games.yaml", &games); err != nil {
		return nil, err
	}
	lib.Games = games.Games

	var words struct {
		Difficulties map[string]WordContent `yaml:"difficulties"`
	}
	if err := loadYAML("data/words.yaml", &words); err != nil {
		return nil, err
	}
	lib.Words = words.Difficulties

	var pairs struct {
		Levels []PairSet `yaml:"levels"`
	}
	if err := loadYAML("data/pairs.yaml", &pairs); err != nil {
		return nil, err
	}
	lib.Pairs = pairs.Levels

	var events struct {
		Difficulties map[string]EventSet `yaml:"difficulties"`
	}
	if err := loadYAML("data/events.yaml", &events); err != nil {
		return nil, err
	}
	lib.Events = events.Difficulties

	var puzzles struct {
		Puzzles []Puzzle `yaml:"puzzles"`
	}
	if err := loadYAML("data/puzzles.yaml", &puzzles); err != nil {
		return nil, err
	}
	lib.Puzzles = puzzles.Puzzles

	if err := lib.validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

func loadYAML(path string, out any) error {
	b, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
