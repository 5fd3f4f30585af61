package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/diary"
)

// Config holds the settings loadable from the YAML config file. Every
// field is optional; the zero value means "use the built-in defaults".
type Config struct {
	// Labels overrides the section label table. Order is the canonical
	// render order.
	Labels []LabelConfig `yaml:"labels,omitempty"`
	// SkipEmpty makes the empty-sentinel skip the default for digests.
	SkipEmpty bool `yaml:"skip_empty,omitempty"`
	// SectionOrder is the bundle section arrangement: "canonical" or
	// "discovery".
	SectionOrder string `yaml:"section_order,omitempty"`
}

// LabelConfig is one entry of the label table.
type LabelConfig struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// Load reads a config file. With an empty path the default location is
// tried; a missing default file yields the zero config, while an explicit
// path that does not exist is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// validate checks the loaded settings for obvious mistakes.
func (c *Config) validate() error {
	switch c.SectionOrder {
	case "", "canonical", "discovery":
	default:
		return fmt.Errorf("section_order must be \"canonical\" or \"discovery\", got %q", c.SectionOrder)
	}
	for i, l := range c.Labels {
		if l.Name == "" || l.Key == "" {
			return fmt.Errorf("labels[%d] needs both name and key", i)
		}
	}
	return nil
}

// DiaryLabels returns the label table to use: the configured override
// when present, the built-in table otherwise.
func (c *Config) DiaryLabels() []diary.Label {
	if len(c.Labels) == 0 {
		return diary.DefaultLabels
	}
	labels := make([]diary.Label, 0, len(c.Labels))
	for _, l := range c.Labels {
		labels = append(labels, diary.Label{Name: l.Name, Key: l.Key})
	}
	return labels
}
