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

package codemod

import (
	"path"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔧 Options describes what to move and where
type Options struct {
	Symbol       string // Imported name to relocate, e.g. Box
	Specifier    string // Module the symbol is moved off, e.g. @mui/material
	TargetModule string // Project relative module the symbol is moved to, without extension
	Element      string // JSX element whose opening tags are cleaned
	Attribute    string // Attribute removed from those tags, e.g. component="div"
}

// 🏭 DefaultOptions returns the Box migration settings
func DefaultOptions() Options {
	return Options{
		Symbol:       "Box",
		Specifier:    "@mui/material",
		TargetModule: "src/components/shared/Box",
		Element:      "Box",
		Attribute:    `component="div"`,
	}
}

// 📄 Result is the outcome of transforming one source file
type Result struct {
	Path               string // Project relative path of the file
	Original           string // Content as read
	Content            string // Content after all transforms
	Modified           bool   // Whether the import transform applied
	Injected           bool   // Whether a new import line was prepended
	AttributesStripped int    // Number of attributes removed from JSX tags
}

// 🔍 Changed reports whether any transform altered the content
func (r *Result) Changed() bool {
	return r.Content != r.Original
}

// 🧭 RelativeImportPath returns the import specifier that resolves target from
// the directory containing file. Both paths are project relative. The result is
// slash separated and always starts with ./ or ../
func RelativeImportPath(file, target string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(filepath.FromSlash(file)), filepath.FromSlash(target))
	if err != nil {
		return "", errors.Errorf("resolving %s from %s: %w", target, file, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return rel, nil
	}
	return "./" + rel, nil
}

// 🎯 IsTargetModule reports whether file is the module the symbol is moved to
func IsTargetModule(file, target string) bool {
	file = path.Clean(filepath.ToSlash(file))
	return strings.TrimSuffix(file, path.Ext(file)) == path.Clean(filepath.ToSlash(target))
}

// 🔄 Transform runs the import rewrite, the import injection and the attribute
// strip over content. The strip runs whether or not the import was found.
func Transform(file, content string, opts Options) (*Result, error) {
	res := &Result{
		Path:     file,
		Original: content,
		Content:  content,
	}

	if HasNamedImport(content, opts.Specifier, opts.Symbol) {
		res.Modified = true
		res.Content = RemoveNamedImport(res.Content, opts.Specifier, opts.Symbol)

		rel, err := RelativeImportPath(file, opts.TargetModule)
		if err != nil {
			return nil, errors.Errorf("computing import path: %w", err)
		}
		res.Content, res.Injected = InjectImport(res.Content, rel, opts.Symbol)
	}

	res.Content, res.AttributesStripped = StripAttribute(res.Content, opts.Element, opts.Attribute)

	return res, nil
}
