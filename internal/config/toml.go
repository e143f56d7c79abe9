// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dgerard42/diarium/internal/names"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Convert ConvertConfig     `toml:"convert"`
	Targets map[string]string `toml:"targets"`
	Names   NamesConfig       `toml:"names"`
}

// ConvertConfig maps spreadsheet ingestion settings.
type ConvertConfig struct {
	Sheet *int `toml:"sheet"`
}

// NamesConfig maps the name-reconciliation tables. Person entries are an
// array of tables so the file keeps the dictionary's first-match order.
type NamesConfig struct {
	Family   []string          `toml:"family"`
	Residual []string          `toml:"residual"`
	Alias    map[string]string `toml:"alias"`
	Person   []PersonConfig    `toml:"person"`
}

// PersonConfig is one dictionary entry: the canonical full name and the
// contiguous tokens that spell it.
type PersonConfig struct {
	Name   string   `toml:"name"`
	Tokens []string `toml:"tokens"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Tables holds the resolved static lookup tables for one run.
type Tables struct {
	Sheet    int
	Targets  map[string]string
	Family   []string
	Residual []string
	Aliases  map[string]string
	People   []names.Entry
}

// Resolve merges the config file over the compiled-in defaults. Target
// overrides merge per field; the name tables replace wholesale when set.
func Resolve(cfg FileConfig) Tables {
	tables := Tables{
		Sheet:    DefaultSheet,
		Targets:  DefaultTargets(),
		Family:   DefaultFamily(),
		Residual: DefaultResidual(),
		Aliases:  DefaultAliases(),
		People:   DefaultPeople(),
	}
	if cfg.Convert.Sheet != nil {
		tables.Sheet = *cfg.Convert.Sheet
	}
	for fieldName, target := range cfg.Targets {
		tables.Targets[fieldName] = target
	}
	if len(cfg.Names.Family) > 0 {
		tables.Family = cfg.Names.Family
	}
	if len(cfg.Names.Residual) > 0 {
		tables.Residual = cfg.Names.Residual
	}
	if len(cfg.Names.Alias) > 0 {
		tables.Aliases = cfg.Names.Alias
	}
	if len(cfg.Names.Person) > 0 {
		people := make([]names.Entry, 0, len(cfg.Names.Person))
		for _, person := range cfg.Names.Person {
			people = append(people, names.Entry{Name: person.Name, Tokens: person.Tokens})
		}
		tables.People = people
	}
	return tables
}
