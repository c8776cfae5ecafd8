package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid scenario")

// Entry submits Input to the building before the step of Tick.
type Entry struct {
	Tick  int    `yaml:"tick"`
	Input string `yaml:"input"`
}

type Scenario struct {
	Steps    int     `yaml:"steps"`
	Requests []Entry `yaml:"requests"`
}

// Demo is used when no scenario file is given.
func Demo() Scenario {
	return Scenario{
		Steps: 30,
		Requests: []Entry{
			{Tick: 0, Input: "1 2"},
			{Tick: 0, Input: "7 3 9 0"},
			{Tick: 4, Input: "0 5 2 8"},
			{Tick: 12, Input: "6 1"},
		},
	}
}

func Load(path string) (Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("open scenario %s: %w", path, err)
	}
	defer file.Close()

	return Decode(file)
}

func Decode(r io.Reader) (Scenario, error) {
	s := Scenario{}
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (s Scenario) Validate() error {
	if s.Steps < 0 {
		return fmt.Errorf("%w: steps must not be negative, got %d", ErrInvalid, s.Steps)
	}
	for i, e := range s.Requests {
		if e.Tick < 0 || e.Tick >= s.Steps {
			return fmt.Errorf("%w: request %d at tick %d outside [0, %d)", ErrInvalid, i, e.Tick, s.Steps)
		}
	}
	return nil
}

// ByTick groups request inputs by tick, keeping file order within a tick.
func (s Scenario) ByTick() map[int][]string {
	entries := make([]Entry, len(s.Requests))
	copy(entries, s.Requests)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Tick < entries[j].Tick
	})

	byTick := make(map[int][]string)
	for _, e := range entries {
		byTick[e.Tick] = append(byTick[e.Tick], e.Input)
	}
	return byTick
}
