package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/msgetl/pkg/msgetl"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type CategoriesConfig struct {
	Column       string `yaml:"column,omitempty"`
	Delimiter    string `yaml:"delimiter,omitempty"`
	SuffixLength int    `yaml:"suffix_length,omitempty"`
}

type FilterConfig struct {
	Column       string `yaml:"column,omitempty"`
	InvalidValue *int64 `yaml:"invalid_value,omitempty"`
}

type ProjectConfig struct {
	Table        string           `yaml:"table"`
	Key          string           `yaml:"key"`
	CSVDelimiter string           `yaml:"csv_delimiter"`
	Categories   CategoriesConfig `yaml:"categories"`
	DropColumns  *[]string        `yaml:"drop_columns"`
	Filter       FilterConfig     `yaml:"filter"`
}

const ConfigFileName = "msgetl.yaml"

func Load(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply overlays every value set in the file onto cfg.
// Unset values keep whatever cfg already holds.
func (p *ProjectConfig) Apply(cfg *msgetl.RunConfig) error {
	if p.Table != "" {
		cfg.TableName = p.Table
	}
	if p.Key != "" {
		cfg.KeyColumn = p.Key
	}
	if p.CSVDelimiter != "" {
		r, err := ParseDelimiter(p.CSVDelimiter)
		if err != nil {
			return fmt.Errorf("csv_delimiter in %s: %w", ConfigFileName, err)
		}
		cfg.CSVDelimiter = r
	}
	if p.Categories.Column != "" {
		cfg.Clean.CategoriesColumn = p.Categories.Column
	}
	if p.Categories.Delimiter != "" {
		cfg.Clean.Delimiter = p.Categories.Delimiter
	}
	if p.Categories.SuffixLength != 0 {
		cfg.Clean.SuffixLength = p.Categories.SuffixLength
	}
	if p.DropColumns != nil {
		cfg.Clean.DropColumns = append([]string(nil), (*p.DropColumns)...)
	}
	if p.Filter.Column != "" {
		cfg.Clean.FilterColumn = p.Filter.Column
	}
	if p.Filter.InvalidValue != nil {
		cfg.Clean.InvalidValue = *p.Filter.InvalidValue
	}
	return nil
}

// ParseDelimiter converts a one-character string to a CSV delimiter.
// The escape `\t` is accepted for tab-separated files.
func ParseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q: %w", s, msgetl.ErrInvalidConfig)
	}
	return r, nil
}
