package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"elevatorsim/building"
)

const (
	EnvFloors        = "ELEVATOR_FLOORS"
	EnvElevators     = "ELEVATOR_ELEVATORS"
	EnvCapacity      = "ELEVATOR_CAPACITY"
	EnvDwellTicks    = "ELEVATOR_DWELL_TICKS"
	EnvIdleWaitTicks = "ELEVATOR_IDLE_WAIT_TICKS"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Floors        int `yaml:"floors"`
	Elevators     int `yaml:"elevators"`
	Capacity      int `yaml:"capacity"`
	DwellTicks    int `yaml:"dwellTicks"`
	IdleWaitTicks int `yaml:"idleWaitTicks"`
}

func Default() Config {
	return Config{
		Floors:        10,
		Elevators:     2,
		Capacity:      4,
		DwellTicks:    3,
		IdleWaitTicks: 5,
	}
}

// LoadFile overlays the YAML file at path onto c. Keys missing from the
// file keep their current value.
func (c *Config) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// LoadEnv overlays values from the given .env files and then from the
// process environment, which wins. Missing .env files are skipped.
func (c *Config) LoadEnv(envFiles ...string) error {
	values := make(map[string]string)
	for _, path := range envFiles {
		fileValues, err := godotenv.Read(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read env file %s: %w", path, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	fields := []struct {
		key string
		dst *int
	}{
		{EnvFloors, &c.Floors},
		{EnvElevators, &c.Elevators},
		{EnvCapacity, &c.Capacity},
		{EnvDwellTicks, &c.DwellTicks},
		{EnvIdleWaitTicks, &c.IdleWaitTicks},
	}
	for _, f := range fields {
		raw, ok := os.LookupEnv(f.key)
		if !ok {
			raw, ok = values[f.key]
		}
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, f.key, raw)
		}
		*f.dst = n
	}
	return nil
}

// Validate applies the building's parameter rules plus the timing rules.
func (c Config) Validate() error {
	if err := building.ValidateParameters(c.Floors, c.Elevators, c.Capacity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.DwellTicks < 1 {
		return fmt.Errorf("%w: dwell ticks must be at least 1, got %d", ErrInvalid, c.DwellTicks)
	}
	if c.IdleWaitTicks < 0 {
		return fmt.Errorf("%w: idle wait ticks must not be negative, got %d", ErrInvalid, c.IdleWaitTicks)
	}
	return nil
}

// NewBuilding builds an out-of-service building from the configuration.
func (c Config) NewBuilding() (*building.Building, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return building.New(c.Floors, c.Elevators, c.Capacity,
		building.WithDwellTicks(c.DwellTicks),
		building.WithIdleWaitTicks(c.IdleWaitTicks))
}
