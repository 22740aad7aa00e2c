package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/localsearch"
)

// Problem names accepted by the run config and the --problem flag.
const (
	problemQuadratic = "quadratic"
	problemQueens    = "queens"
	problemTour      = "tour"
	problemKnapsack  = "knapsack"
)

// ErrInvalidConfig wraps every validation failure of a run config.
var ErrInvalidConfig = errors.New("hillclimb: invalid run config")

// configValidate is shared; validator caches struct metadata.
var configValidate = validator.New()

// RunConfig describes one search run.
//
// Example file:
//
//	problem: tour
//	max_iterations: 200
//	tour:
//	  points: [[0, 0], [1, 0], [1, 1], [0, 1]]
//	  order: [0, 2, 1, 3]
type RunConfig struct {
	Problem       string          `yaml:"problem" validate:"required,oneof=quadratic queens tour knapsack"`
	MaxIterations int             `yaml:"max_iterations" validate:"gte=0"`
	Quadratic     QuadraticConfig `yaml:"quadratic"`
	Queens        QueensConfig    `yaml:"queens"`
	Tour          TourConfig      `yaml:"tour"`
	Knapsack      KnapsackConfig  `yaml:"knapsack"`
}

// QuadraticConfig holds the starting x.
type QuadraticConfig struct {
	Start int `yaml:"start"`
}

// QueensConfig holds either explicit rows or a board size (all queens on row 0).
type QueensConfig struct {
	Size int   `yaml:"size" validate:"gte=0"`
	Rows []int `yaml:"rows" validate:"omitempty,dive,gte=0"`
}

// TourConfig holds 2-D points and an optional starting order.
type TourConfig struct {
	Points [][]float64 `yaml:"points" validate:"omitempty,dive,len=2"`
	Order  []int       `yaml:"order"`
}

// KnapsackConfig holds items, capacity and an optional initial selection.
type KnapsackConfig struct {
	Capacity int            `yaml:"capacity" validate:"gte=0"`
	Items    []KnapsackItem `yaml:"items" validate:"dive"`
	Take     []bool         `yaml:"take"`
}

// KnapsackItem is one item of a knapsack instance.
type KnapsackItem struct {
	Weight int `yaml:"weight" validate:"gte=0"`
	Value  int `yaml:"value" validate:"gte=0"`
}

// DefaultRunConfig returns the defaults applied before the file and flags.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		MaxIterations: localsearch.DefaultMaxIterations,
		Queens:        QueensConfig{Size: 8},
	}
}

// LoadRunConfig reads path over the defaults. An empty path yields the defaults.
// The result is not validated; call Validate after applying flag overrides.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read run config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse run config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks struct tags, then the per-problem requirements.
func (c RunConfig) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch c.Problem {
	case problemQueens:
		if len(c.Queens.Rows) == 0 && c.Queens.Size == 0 {
			return fmt.Errorf("%w: queens needs rows or a positive size", ErrInvalidConfig)
		}
	case problemTour:
		if len(c.Tour.Points) == 0 {
			return fmt.Errorf("%w: tour needs at least one point", ErrInvalidConfig)
		}
	}

	return nil
}
