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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/boxmigrate/pkg/codemod"
	"github.com/walteh/boxmigrate/pkg/config"
	"github.com/walteh/boxmigrate/pkg/log"
	"github.com/walteh/boxmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a single run over the configured source tree
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config is the boxmigrate configuration
	Config *config.Config
	// Files reads, writes and selects source files
	Files status.FileManager
	// Status records what happened to each file
	Status status.StatusReporter
	// Logger prints the user facing output
	Logger *log.Logger
	// DryRun computes everything but writes nothing
	DryRun bool
}

// 🔍 validate checks that all dependencies are set
func (o Options) validate() error {
	if o.Config == nil {
		return errors.Errorf("config is required")
	}
	if o.Files == nil {
		return errors.Errorf("file manager is required")
	}
	if o.Status == nil {
		return errors.Errorf("status reporter is required")
	}
	if o.Logger == nil {
		return errors.Errorf("logger is required")
	}
	return nil
}

// 🏗️ BaseOperation holds what every operation shares
type BaseOperation struct {
	Options
}

// 🏭 NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if err := opts.validate(); err != nil {
		return BaseOperation{}, err
	}
	return BaseOperation{Options: opts}, nil
}

// 🔄 eachFile selects the source files, transforms each one in path order and
// hands the result to fn. The first error stops the walk.
func (op *BaseOperation) eachFile(ctx context.Context, fn func(ctx context.Context, res *codemod.Result) error) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.Config
	opts := cfg.CodemodOptions()

	files, err := op.Files.Glob(ctx, cfg.Pattern(), cfg.IgnorePatterns)
	if err != nil {
		return errors.Errorf("selecting files: %w", err)
	}
	logger.Debug().Str("pattern", cfg.Pattern()).Int("files", len(files)).Msg("selected source files")

	op.Status.StartOperation(ctx, len(files))

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}

		if codemod.IsTargetModule(file, opts.TargetModule) {
			logger.Debug().Str("path", file).Msg("skipping target module")
			op.Status.TrackFile(ctx, file, status.FileInfo{Status: status.StatusSkipped})
			continue
		}

		content, err := op.Files.ReadFile(ctx, file)
		if err != nil {
			op.Status.TrackFile(ctx, file, status.FileInfo{Status: status.StatusUnknown, Error: err})
			return errors.Errorf("processing file %s: %w", file, err)
		}

		res, err := codemod.Transform(file, string(content), opts)
		if err != nil {
			op.Status.TrackFile(ctx, file, status.FileInfo{Status: status.StatusUnknown, Error: err})
			return errors.Errorf("processing file %s: %w", file, err)
		}
		op.Status.TrackFile(ctx, file, status.FileInfo{Status: status.StatusScanned, Checksum: status.Checksum(content)})

		if err := fn(ctx, res); err != nil {
			op.Status.TrackFile(ctx, file, status.FileInfo{Status: status.StatusUnknown, Error: err})
			return errors.Errorf("processing file %s: %w", file, err)
		}

		op.Status.UpdateProgress(ctx, i+1, len(files))
	}

	return nil
}

// fileOperation describes a transform result for the console
func fileOperation(res *codemod.Result, write, dryRun bool) log.FileOperation {
	return log.FileOperation{
		Path:               res.Path,
		ImportFound:        res.Modified,
		Injected:           res.Injected,
		AttributesStripped: res.AttributesStripped,
		Written:            write,
		DryRun:             dryRun,
	}
}
