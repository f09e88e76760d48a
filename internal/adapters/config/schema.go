package config

import (
	"go.trai.ch/autoload/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Autoloadfile represents the structure of the autoload.yaml configuration file.
type Autoloadfile struct {
	Version   string     `yaml:"version"`
	Root      string     `yaml:"root"`
	TTL       int64      `yaml:"ttl"`
	Extension string     `yaml:"extension"`
	Paths     []string   `yaml:"paths"`
	Cache     CacheDTO   `yaml:"cache"`
	Logging   LoggingDTO `yaml:"logging"`
}

// CacheDTO selects the persistence tier.
type CacheDTO struct {
	Shared   *SharedDTO   `yaml:"shared"`
	Snapshot *SnapshotDTO `yaml:"snapshot"`
	Disabled bool         `yaml:"disabled"`
}

// SharedDTO configures the shared cache tier.
type SharedDTO struct {
	Prefix string `yaml:"prefix"`
	Dir    string `yaml:"dir"`
}

// SnapshotDTO configures the snapshot tier.
type SnapshotDTO struct {
	Path string `yaml:"path"`
}

// LoggingDTO is the logging mode: a boolean or a log file path.
type LoggingDTO struct {
	Enabled bool
	File    string
}

// UnmarshalYAML accepts true, false or a file path.
func (l *LoggingDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return domain.ErrInvalidLogging
	}

	switch value.Tag {
	case "!!bool":
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return err
		}
		*l = LoggingDTO{Enabled: enabled}
	case "!!str":
		if value.Value == "" {
			*l = LoggingDTO{}
			return nil
		}
		*l = LoggingDTO{Enabled: true, File: value.Value}
	default:
		return domain.ErrInvalidLogging
	}
	return nil
}
