// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/boxmigrate/pkg/codemod"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes, on top of the defaults
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ✍️ WriteMode decides which files get written back
type WriteMode string

const (
	// WriteModeImport writes a file only when the UI kit import was found.
	// An attribute strip on its own is computed but not persisted.
	WriteModeImport WriteMode = "import"
	// WriteModeAny writes a file whenever any transform changed it.
	WriteModeAny WriteMode = "any"
)

// ShouldWrite applies the mode to a transform result
func (m WriteMode) ShouldWrite(res *codemod.Result) bool {
	if m == WriteModeAny {
		return res.Changed()
	}
	return res.Modified
}

// DefaultConfigFile is looked up in the project directory when no file is given
const DefaultConfigFile = ".boxmigrate.yaml"

// 📚 Config represents the complete configuration
type Config struct {
	Root           string    `json:"root" yaml:"root"`                       // Directory scanned, relative to the project dir
	Extensions     []string  `json:"extensions" yaml:"extensions"`           // File extensions scanned
	IgnorePatterns []string  `json:"ignore_patterns" yaml:"ignore_patterns"` // Glob patterns for files to skip
	Symbol         string    `json:"symbol" yaml:"symbol"`
	Specifier      string    `json:"specifier" yaml:"specifier"`
	TargetModule   string    `json:"target_module" yaml:"target_module"`
	Element        string    `json:"element" yaml:"element"`
	Attribute      string    `json:"attribute" yaml:"attribute"`
	WriteMode      WriteMode `json:"write_mode" yaml:"write_mode"`
	Guidance       []string  `json:"guidance" yaml:"guidance"` // Lines printed after the summary
}

// 🏭 Default returns the Box migration configuration
func Default() *Config {
	opts := codemod.DefaultOptions()
	return &Config{
		Root:           "src",
		Extensions:     []string{".ts", ".tsx", ".js", ".jsx"},
		IgnorePatterns: []string{"**/node_modules/**"},
		Symbol:         opts.Symbol,
		Specifier:      opts.Specifier,
		TargetModule:   opts.TargetModule,
		Element:        opts.Element,
		Attribute:      opts.Attribute,
		WriteMode:      WriteModeImport,
		Guidance: []string{
			"1. Review the changes with `git diff` before committing.",
			"2. Run the type checker and test suite to catch Box usages that were not migrated.",
			"3. Search untouched files for `component=\"div\"` on Box; those files were not written.",
		},
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault is Load, falling back to Default when path does not exist
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, errors.Errorf("validating config: %w", err)
		}
		return cfg, nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		return errors.Errorf("root is required")
	}
	if filepath.IsAbs(cfg.Root) {
		return errors.Errorf("root must be relative to the project directory: %s", cfg.Root)
	}
	if cfg.Symbol == "" {
		return errors.Errorf("symbol is required")
	}
	if cfg.Specifier == "" {
		return errors.Errorf("specifier is required")
	}
	if cfg.TargetModule == "" {
		return errors.Errorf("target_module is required")
	}
	if len(cfg.Extensions) == 0 {
		return errors.Errorf("at least one extension is required")
	}

	// Clean up paths
	cfg.Root = path.Clean(filepath.ToSlash(cfg.Root))
	if cfg.Root == ".." || strings.HasPrefix(cfg.Root, "../") {
		return errors.Errorf("root must be inside the project directory: %s", cfg.Root)
	}
	cfg.TargetModule = path.Clean(filepath.ToSlash(cfg.TargetModule))

	for i, ext := range cfg.Extensions {
		ext = strings.TrimSpace(ext)
		if strings.TrimPrefix(ext, ".") == "" {
			return errors.Errorf("extension %d is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Extensions[i] = ext
	}

	// Set defaults
	switch cfg.WriteMode {
	case "":
		cfg.WriteMode = WriteModeImport
	case WriteModeImport, WriteModeAny:
	default:
		return errors.Errorf("write_mode must be %q or %q, got %q", WriteModeImport, WriteModeAny, cfg.WriteMode)
	}

	return nil
}

// 🔎 Pattern returns the doublestar glob selecting source files under Root
func (cfg *Config) Pattern() string {
	exts := make([]string, 0, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	glob := "**/*." + exts[0]
	if len(exts) > 1 {
		glob = "**/*.{" + strings.Join(exts, ",") + "}"
	}
	if cfg.Root == "." {
		return glob
	}
	return cfg.Root + "/" + glob
}

// 🔧 CodemodOptions returns the transform settings
func (cfg *Config) CodemodOptions() codemod.Options {
	return codemod.Options{
		Symbol:       cfg.Symbol,
		Specifier:    cfg.Specifier,
		TargetModule: cfg.TargetModule,
		Element:      cfg.Element,
		Attribute:    cfg.Attribute,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s from %s -> %s (%s, write_mode=%s)", cfg.Symbol, cfg.Specifier, cfg.TargetModule, cfg.Pattern(), cfg.WriteMode)
}
