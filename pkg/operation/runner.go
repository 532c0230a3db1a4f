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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations
type OperationRunner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *OperationRunner {
	return &OperationRunner{
		logger: logger,
	}
}

// 🏃 Run executes an operation to completion. Files are processed one at a
// time; cancelling ctx stops the operation before the next file.
func (r *OperationRunner) Run(ctx context.Context, name string, op Operation) error {
	start := time.Now()
	r.logger.Debug().Str("operation", name).Msg("starting operation")

	if err := op.Execute(ctx); err != nil {
		r.logger.Debug().Str("operation", name).Err(err).Dur("elapsed", time.Since(start)).Msg("operation failed")
		return errors.Errorf("running %s operation: %w", name, err)
	}

	r.logger.Debug().Str("operation", name).Dur("elapsed", time.Since(start)).Msg("operation complete")
	return nil
}
