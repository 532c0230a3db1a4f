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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcOperation func(ctx context.Context) error

func (f funcOperation) Execute(ctx context.Context) error { return f(ctx) }

func TestRunner(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	runner := NewRunner(&logger)
	ctx := context.Background()

	called := false
	require.NoError(t, runner.Run(ctx, "noop", funcOperation(func(ctx context.Context) error {
		called = true
		return nil
	})))
	assert.True(t, called)

	err := runner.Run(ctx, "broken", funcOperation(func(ctx context.Context) error {
		return assert.AnError
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "running broken operation")
}
