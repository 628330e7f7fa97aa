// Package config loads the optional servicesync.yaml file holding project
// defaults for the sync-services command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-servicesync/pkg/splice"
	"github.com/goliatone/go-servicesync/pkg/workbook"
)

const (
	// DefaultFile is looked up in the working directory when no explicit
	// path is provided.
	DefaultFile = "servicesync.yaml"

	// DefaultTarget is the file holding the generated blocks.
	DefaultTarget = "src/App.jsx"
)

// Sheets names the worksheets read from the spreadsheet.
type Sheets struct {
	Services string `yaml:"services"`
	Triggers string `yaml:"triggers"`
}

// Config carries the defaults that command line flags may override.
type Config struct {
	Target            string `yaml:"target"`
	Bump              string `yaml:"bump"`
	VersionIdentifier string `yaml:"versionIdentifier"`
	Sheets            Sheets `yaml:"sheets"`

	// TemplatesDir holds block template overrides laid out like the
	// embedded bundle (templates/service_triggers.tpl, ...). Empty uses
	// the embedded templates only.
	TemplatesDir string `yaml:"templatesDir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Target:            DefaultTarget,
		Bump:              string(splice.BumpPatch),
		VersionIdentifier: splice.DefaultVersionIdentifier,
		Sheets: Sheets{
			Services: workbook.DefaultServicesSheet,
			Triggers: workbook.DefaultTriggersSheet,
		},
	}
}

// Load reads path over the defaults. A missing file is an error only when
// required is set; empty keys keep their default.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.merge(file)
	return cfg, nil
}

func (c *Config) merge(other Config) {
	set := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
		}
	}
	set(&c.Target, other.Target)
	set(&c.Bump, other.Bump)
	set(&c.VersionIdentifier, other.VersionIdentifier)
	set(&c.Sheets.Services, other.Sheets.Services)
	set(&c.Sheets.Triggers, other.Sheets.Triggers)
	set(&c.TemplatesDir, other.TemplatesDir)
}
