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

	"github.com/walteh/boxmigrate/pkg/codemod"
	"github.com/walteh/boxmigrate/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// ErrPending is returned by a scan when files still need migrating and FailOnPending is set
var ErrPending = errors.Base("files pending migration")

// 🔍 ScanOperation reports what a migration would do without touching any file
type ScanOperation struct {
	BaseOperation
	FailOnPending bool
	results       []log.FileOperation
	pending       int
}

// 🏭 NewScanOperation creates a new scan operation
func NewScanOperation(opts Options, failOnPending bool) (*ScanOperation, error) {
	opts.DryRun = true
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating scan operation: %w", err)
	}
	return &ScanOperation{BaseOperation: base, FailOnPending: failOnPending}, nil
}

// Results returns the files a migration would change, in path order
func (op *ScanOperation) Results() []log.FileOperation {
	return op.results
}

// Pending returns the number of files a migration would write
func (op *ScanOperation) Pending() int {
	return op.pending
}

// 🏃 Execute scans the tree and prints a table of affected files
func (op *ScanOperation) Execute(ctx context.Context) error {
	op.results = nil
	op.pending = 0

	op.Logger.Header("status of " + op.Config.String())

	err := op.eachFile(ctx, func(ctx context.Context, res *codemod.Result) error {
		if !res.Changed() {
			return nil
		}
		write := op.Config.WriteMode.ShouldWrite(res)
		if write {
			op.pending++
		}
		op.results = append(op.results, fileOperation(res, write, true))
		return nil
	})
	if err != nil {
		return err
	}

	if len(op.results) == 0 {
		op.Logger.Successf("nothing to migrate under %s", op.Config.Root)
		return nil
	}

	if err := op.Logger.Table(op.results); err != nil {
		return errors.Errorf("rendering table: %w", err)
	}
	op.Logger.Infof("%d of %d affected files would be written (write_mode=%s)", op.pending, len(op.results), op.Config.WriteMode)
	if held := len(op.results) - op.pending; held > 0 {
		op.Logger.Warningf("%d files only change outside the %s import and are not written in write_mode=%s", held, op.Config.Symbol, op.Config.WriteMode)
	}

	if op.FailOnPending && op.pending > 0 {
		op.Logger.Errorf("%d files still import %s from %s", op.pending, op.Config.Symbol, op.Config.Specifier)
		return errors.Errorf("%d files: %w", op.pending, ErrPending)
	}
	return nil
}
