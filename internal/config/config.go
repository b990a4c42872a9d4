package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// FileConfig is the content of a .xcfo.yaml or .xcfo.toml file. Nil fields
// were not set in the file.
type FileConfig struct {
	Renderer             string   `yaml:"renderer" toml:"renderer"`
	Theme                string   `yaml:"theme" toml:"theme"`
	Quiet                *bool    `yaml:"quiet" toml:"quiet"`
	Quieter              *bool    `yaml:"quieter" toml:"quieter"`
	CI                   *bool    `yaml:"ci" toml:"ci"`
	NoColor              *bool    `yaml:"no_color" toml:"no_color"`
	PreserveUnbeautified *bool    `yaml:"preserve_unbeautified" toml:"preserve_unbeautified"`
	Report               []string `yaml:"report" toml:"report"`
	ReportPath           string   `yaml:"report_path" toml:"report_path"`
	JUnitReportFilename  string   `yaml:"junit_report_filename" toml:"junit_report_filename"`
	Debug                *bool    `yaml:"debug" toml:"debug"`
}

// Defaults.
const (
	DefaultTheme         = "default"
	DefaultReportPath    = "build/reports"
	DefaultJUnitFilename = "junit.xml"
)

// configNames are tried in order inside each search directory.
var configNames = []string{".xcfo.yaml", ".xcfo.yml", ".xcfo.toml"}

// FindConfigFile returns the first config file in workDir, then in the
// user config directory ($XDG_CONFIG_HOME/xcfo or ~/.config/xcfo). It
// returns "" when none exists.
func FindConfigFile(workDir string, lookup func(string) (string, bool)) string {
	dirs := []string{workDir}
	if dir := userConfigDir(lookup); dir != "" {
		dirs = append(dirs, filepath.Join(dir, "xcfo"))
	}
	for _, dir := range dirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

func userConfigDir(lookup func(string) (string, bool)) string {
	if v, ok := lookup("XDG_CONFIG_HOME"); ok && v != "" {
		return v
	}
	if home, ok := lookup("HOME"); ok && home != "" {
		return filepath.Join(home, ".config")
	}
	return ""
}

// ParseFile decodes a config file, choosing YAML or TOML by extension.
func ParseFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// LoadConfig reads the config file at path. A missing path yields an empty
// config. An unreadable or malformed file is logged as a warning and also
// yields an empty config.
func LoadConfig(path string, log zerolog.Logger) *FileConfig {
	if path == "" {
		log.Debug().Msg("no config file found, using defaults")
		return &FileConfig{}
	}
	cfg, err := ParseFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("config file not found, using defaults")
		} else {
			log.Warn().Err(err).Msg("ignoring config file, using defaults")
		}
		return &FileConfig{}
	}
	log.Debug().Str("path", path).Msg("loaded config file")
	return cfg
}
