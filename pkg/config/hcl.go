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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// defaultsValue exposes the default settings to expressions as `defaults.<field>`
func defaultsValue(cfg *Config) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"root":          cty.StringVal(cfg.Root),
		"symbol":        cty.StringVal(cfg.Symbol),
		"specifier":     cty.StringVal(cfg.Specifier),
		"target_module": cty.StringVal(cfg.TargetModule),
		"element":       cty.StringVal(cfg.Element),
		"attribute":     cty.StringVal(cfg.Attribute),
	})
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	cfg := Default()

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": defaultsValue(cfg),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Root           *string  `hcl:"root,optional"`
		Extensions     []string `hcl:"extensions,optional"`
		IgnorePatterns []string `hcl:"ignore_patterns,optional"`
		Symbol         *string  `hcl:"symbol,optional"`
		Specifier      *string  `hcl:"specifier,optional"`
		TargetModule   *string  `hcl:"target_module,optional"`
		Element        *string  `hcl:"element,optional"`
		Attribute      *string  `hcl:"attribute,optional"`
		WriteMode      *string  `hcl:"write_mode,optional"`
		Guidance       []string `hcl:"guidance,optional"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Overlay on defaults
	overlay(&cfg.Root, hclCfg.Root)
	overlay(&cfg.Symbol, hclCfg.Symbol)
	overlay(&cfg.Specifier, hclCfg.Specifier)
	overlay(&cfg.TargetModule, hclCfg.TargetModule)
	overlay(&cfg.Element, hclCfg.Element)
	overlay(&cfg.Attribute, hclCfg.Attribute)
	if hclCfg.WriteMode != nil {
		cfg.WriteMode = WriteMode(*hclCfg.WriteMode)
	}
	if hclCfg.Extensions != nil {
		cfg.Extensions = hclCfg.Extensions
	}
	if hclCfg.IgnorePatterns != nil {
		cfg.IgnorePatterns = hclCfg.IgnorePatterns
	}
	if hclCfg.Guidance != nil {
		cfg.Guidance = hclCfg.Guidance
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
