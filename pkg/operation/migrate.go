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
	"github.com/walteh/boxmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 📦 MigrateOperation rewrites the source tree in place
type MigrateOperation struct {
	BaseOperation
	migrated int
}

// 🏭 NewMigrateOperation creates a new migrate operation
func NewMigrateOperation(opts Options) (*MigrateOperation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating migrate operation: %w", err)
	}
	return &MigrateOperation{BaseOperation: base}, nil
}

// Migrated returns the number of files written, or that would be written on a dry run
func (op *MigrateOperation) Migrated() int {
	return op.migrated
}

// 🏃 Execute runs the migration and prints the summary
func (op *MigrateOperation) Execute(ctx context.Context) error {
	if err := op.eachFile(ctx, op.persist); err != nil {
		return err
	}

	want := status.StatusWritten
	if op.DryRun {
		want = status.StatusPending
	}
	op.migrated = op.Status.Count(ctx, want)

	op.Logger.Summary(ctx, op.migrated, op.DryRun, op.Config.Guidance)
	return nil
}

// 💾 persist writes res back when the write mode allows it
func (op *MigrateOperation) persist(ctx context.Context, res *codemod.Result) error {
	logger := zerolog.Ctx(ctx)

	if !op.Config.WriteMode.ShouldWrite(res) {
		if res.Changed() {
			logger.Debug().
				Str("path", res.Path).
				Int("attributes_stripped", res.AttributesStripped).
				Str("write_mode", string(op.Config.WriteMode)).
				Msg("content changed but write mode does not persist it")
		}
		op.Status.TrackFile(ctx, res.Path, status.FileInfo{Status: status.StatusSkipped, Checksum: status.Checksum([]byte(res.Original))})
		return nil
	}

	if op.DryRun {
		op.Logger.Migrated(ctx, fileOperation(res, true, true))
		op.Logger.Diff(res.Path, RenderDiff(res.Original, res.Content))
		op.Status.TrackFile(ctx, res.Path, status.FileInfo{Status: status.StatusPending, Checksum: status.Checksum([]byte(res.Content))})
		return nil
	}

	if err := op.Files.WriteFile(ctx, res.Path, []byte(res.Content)); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	op.Status.TrackFile(ctx, res.Path, status.FileInfo{Status: status.StatusWritten, Checksum: status.Checksum([]byte(res.Content))})
	op.Logger.Migrated(ctx, fileOperation(res, true, false))

	return nil
}
