// Package models defines data structures for configuration and parsing.
package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBlockSize      = 5
	DefaultMaxWindow      = 30
	StrictMaxWindow       = 100
	DefaultMaxCandidates  = 25
	DefaultMinSize        = 9
	DefaultMaxSize        = 12
	DefaultLargeThreshold = 100
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid run configuration")

// DetectorConfig tunes the question-block detector.
type DetectorConfig struct {
	BlockSize int `yaml:"block_size"`
	MaxWindow int `yaml:"max_window"`
}

// SegmentConfig selects the theme discovery strategy.
type SegmentConfig struct {
	Strategy SegmentStrategy `yaml:"strategy"`
}

// SelectorConfig tunes the best-5 selector.
// MaxCandidates caps exhaustive search; 0 means unlimited.
type SelectorConfig struct {
	MaxCandidates int `yaml:"max_candidates"`
}

// PartitionConfig holds the theme partitioning bounds.
type PartitionConfig struct {
	MinSize        int               `yaml:"min_size"`
	MaxSize        int               `yaml:"max_size"`
	LargeThreshold int               `yaml:"large_threshold"`
	Strategy       PartitionStrategy `yaml:"strategy"`
	UserSplit      []int             `yaml:"user_split,omitempty"`
}

// OutputConfig describes where and how rounds are written.
type OutputConfig struct {
	Dir     string         `yaml:"dir"`
	Prefix  string         `yaml:"prefix"`
	Formats []OutputFormat `yaml:"formats"`
	SQLite  string         `yaml:"sqlite,omitempty"`
}

// RunConfig holds the full configuration of one batch run.
// Values come from an optional YAML file, overridden by CLI flags.
type RunConfig struct {
	Language  Language        `yaml:"language"`
	Detector  DetectorConfig  `yaml:"detector"`
	Segment   SegmentConfig   `yaml:"segment"`
	Selector  SelectorConfig  `yaml:"selector"`
	Partition PartitionConfig `yaml:"partition"`
	Output    OutputConfig    `yaml:"output"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() RunConfig {
	return RunConfig{
		Language: LanguageAuto,
		Detector: DetectorConfig{
			BlockSize: DefaultBlockSize,
			MaxWindow: DefaultMaxWindow,
		},
		Segment:  SegmentConfig{Strategy: SegmentBlocks},
		Selector: SelectorConfig{MaxCandidates: DefaultMaxCandidates},
		Partition: PartitionConfig{
			MinSize:        DefaultMinSize,
			MaxSize:        DefaultMaxSize,
			LargeThreshold: DefaultLargeThreshold,
			Strategy:       PartitionEven,
		},
		Output: OutputConfig{
			Dir:     ".",
			Formats: []OutputFormat{FormatDocx},
		},
	}
}

// LoadConfig reads a YAML run configuration on top of the defaults.
func LoadConfig(path string) (RunConfig, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects structurally invalid configurations before any processing.
func (c RunConfig) Validate() error {
	if c.Detector.BlockSize <= 0 {
		return fmt.Errorf("%w: block_size must be positive, got %d", ErrInvalidConfig, c.Detector.BlockSize)
	}
	if c.Detector.MaxWindow <= 0 {
		return fmt.Errorf("%w: max_window must be positive, got %d", ErrInvalidConfig, c.Detector.MaxWindow)
	}
	if c.Selector.MaxCandidates < 0 {
		return fmt.Errorf("%w: max_candidates must not be negative, got %d", ErrInvalidConfig, c.Selector.MaxCandidates)
	}

	p := c.Partition
	if p.MinSize <= 0 {
		return fmt.Errorf("%w: min_size must be positive, got %d", ErrInvalidConfig, p.MinSize)
	}
	if p.MinSize > p.MaxSize {
		return fmt.Errorf("%w: min_size %d exceeds max_size %d", ErrInvalidConfig, p.MinSize, p.MaxSize)
	}
	if p.LargeThreshold < 0 {
		return fmt.Errorf("%w: large_threshold must not be negative, got %d", ErrInvalidConfig, p.LargeThreshold)
	}
	for _, s := range p.UserSplit {
		if s <= 0 {
			return fmt.Errorf("%w: user_split sizes must be positive, got %v", ErrInvalidConfig, p.UserSplit)
		}
	}

	switch ResolvePartitionStrategy(p.Strategy) {
	case PartitionEven, PartitionGreedy:
	default:
		return fmt.Errorf("%w: unknown partition strategy %q", ErrInvalidConfig, p.Strategy)
	}
	switch ResolveSegmentStrategy(c.Segment.Strategy) {
	case SegmentBlocks, SegmentMarkers:
	default:
		return fmt.Errorf("%w: unknown segment strategy %q", ErrInvalidConfig, c.Segment.Strategy)
	}
	switch c.Language {
	case "", LanguageAuto, LanguageRussian, LanguageEnglish:
	default:
		return fmt.Errorf("%w: unknown language %q", ErrInvalidConfig, c.Language)
	}
	for _, f := range c.Output.Formats {
		switch f {
		case FormatDocx, FormatText, FormatMarkdown:
		default:
			return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, f)
		}
	}
	return nil
}
