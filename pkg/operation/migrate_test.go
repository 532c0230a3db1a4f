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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/boxmigrate/pkg/config"
	"github.com/walteh/boxmigrate/pkg/log"
	"github.com/walteh/boxmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 recordingFiles wraps a FileManager and records every write
type recordingFiles struct {
	status.FileManager
	writes    []string
	failRead  string
	failWrite string
}

func (r *recordingFiles) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if path == r.failRead {
		return nil, errors.New("permission denied")
	}
	return r.FileManager.ReadFile(ctx, path)
}

func (r *recordingFiles) WriteFile(ctx context.Context, path string, content []byte) error {
	if path == r.failWrite {
		return errors.New("disk full")
	}
	r.writes = append(r.writes, path)
	return r.FileManager.WriteFile(ctx, path, content)
}

type fixture struct {
	dir     string
	files   *recordingFiles
	status  *status.Manager
	console *bytes.Buffer
	logger  *log.Logger
	cfg     *config.Config
}

func newFixture(t *testing.T, tree map[string]string) *fixture {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	dir := t.TempDir()
	for path, content := range tree {
		abs := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}

	zlog := zerolog.New(zerolog.NewTestWriter(t))
	mgr := status.New(dir, &zlog)
	console := &bytes.Buffer{}
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	return &fixture{
		dir:     dir,
		files:   &recordingFiles{FileManager: mgr},
		status:  mgr,
		console: console,
		logger:  log.New(console, zlog),
		cfg:     cfg,
	}
}

func (f *fixture) ctx(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func (f *fixture) options(dryRun bool) Options {
	return Options{
		Config: f.cfg,
		Files:  f.files,
		Status: f.status,
		Logger: f.logger,
		DryRun: dryRun,
	}
}

// fresh returns options with new status tracking, for a second run over the same tree
func (f *fixture) fresh(t *testing.T) Options {
	zlog := zerolog.New(zerolog.NewTestWriter(t))
	f.status = status.New(f.dir, &zlog)
	f.files = &recordingFiles{FileManager: f.status}
	f.console.Reset()
	return f.options(false)
}

func (f *fixture) read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(f.dir, filepath.FromSlash(path)))
	require.NoError(t, err)
	return string(b)
}

const (
	fooSrc       = "import { Box } from '@mui/material';\n\nexport const Foo = () => <Box component=\"div\" sx={{ p: 1 }} />;\n"
	homeSrc      = "import React from 'react';\nimport { Box, Typography } from '@mui/material';\n\nexport default () => <Box component=\"div\"><Typography>hi</Typography></Box>;\n"
	stripOnlySrc = "export const Bar = () => <Box component=\"div\" />;\n"
	plainSrc     = "export const sum = (a: number, b: number) => a + b;\n"
	targetSrc    = "import { Box as MuiBox, Box } from '@mui/material';\nexport { Box };\n"
)

func tree() map[string]string {
	return map[string]string{
		"src/components/Foo.tsx":        fooSrc,
		"src/pages/Home.jsx":            homeSrc,
		"src/components/Bar.tsx":        stripOnlySrc,
		"src/util.ts":                   plainSrc,
		"src/components/shared/Box.tsx": targetSrc,
		"src/node_modules/lib/index.js": fooSrc,
		"src/styles.css":                "body {}\n",
	}
}

func TestMigrate(t *testing.T) {
	f := newFixture(t, tree())
	ctx := f.ctx(t)

	op, err := NewMigrateOperation(f.options(false))
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	// Only the files with the UI kit import are written
	assert.Equal(t, []string{"src/components/Foo.tsx", "src/pages/Home.jsx"}, f.files.writes)
	assert.Equal(t, 2, op.Migrated(), "migrated count should equal writes")
	assert.Equal(t, len(f.files.writes), f.status.Count(ctx, status.StatusWritten))

	assert.Equal(t,
		"import { Box } from './shared/Box';\n\nexport const Foo = () => <Box sx={{ p: 1 }} />;\n",
		f.read(t, "src/components/Foo.tsx"))

	home := f.read(t, "src/pages/Home.jsx")
	assert.True(t, strings.HasPrefix(home, "import { Box } from '../components/shared/Box';\n"))
	assert.Contains(t, home, "import { Typography } from '@mui/material';")
	assert.NotContains(t, home, "Box,")
	assert.Contains(t, home, "<Box><Typography>")

	// Strip-only, plain, target module and ignored files are untouched
	assert.Equal(t, stripOnlySrc, f.read(t, "src/components/Bar.tsx"))
	assert.Equal(t, plainSrc, f.read(t, "src/util.ts"))
	assert.Equal(t, targetSrc, f.read(t, "src/components/shared/Box.tsx"))
	assert.Equal(t, fooSrc, f.read(t, "src/node_modules/lib/index.js"))

	info, err := f.status.GetFileInfo(ctx, "src/components/Bar.tsx")
	require.NoError(t, err)
	assert.Equal(t, status.StatusSkipped, info.Status)

	assert.Equal(t,
		"Migrated: src/components/Foo.tsx\n"+
			"Migrated: src/pages/Home.jsx\n"+
			"\nMigration complete! Migrated 2 files.\n"+
			strings.Join(f.cfg.Guidance, "\n")+"\n",
		f.console.String())
}

func TestMigrateIdempotent(t *testing.T) {
	f := newFixture(t, tree())
	ctx := f.ctx(t)

	op, err := NewMigrateOperation(f.options(false))
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))
	first := map[string]string{}
	for path := range tree() {
		first[path] = f.read(t, path)
	}

	op, err = NewMigrateOperation(f.fresh(t))
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	assert.Empty(t, f.files.writes, "second run should write nothing")
	assert.Equal(t, 0, op.Migrated())
	assert.Contains(t, f.console.String(), "Migration complete! Migrated 0 files.")
	for path, want := range first {
		assert.Equal(t, want, f.read(t, path), "content of %s should be stable", path)
	}
}

func TestMigrateWriteModeAny(t *testing.T) {
	f := newFixture(t, tree())
	f.cfg.WriteMode = config.WriteModeAny
	ctx := f.ctx(t)

	op, err := NewMigrateOperation(f.options(false))
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	assert.Equal(t, []string{"src/components/Bar.tsx", "src/components/Foo.tsx", "src/pages/Home.jsx"}, f.files.writes)
	assert.Equal(t, 3, op.Migrated())
	assert.Equal(t, "export const Bar = () => <Box />;\n", f.read(t, "src/components/Bar.tsx"))
	assert.Equal(t, plainSrc, f.read(t, "src/util.ts"))
}

func TestMigrateDryRun(t *testing.T) {
	f := newFixture(t, tree())
	ctx := f.ctx(t)

	before, err := os.Stat(filepath.Join(f.dir, "src", "components", "Foo.tsx"))
	require.NoError(t, err)

	op, err := NewMigrateOperation(f.options(true))
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	assert.Empty(t, f.files.writes, "dry run should not write")
	assert.Equal(t, 2, op.Migrated())
	assert.Equal(t, 2, f.status.Count(ctx, status.StatusPending))
	assert.Equal(t, fooSrc, f.read(t, "src/components/Foo.tsx"))

	after, err := os.Stat(filepath.Join(f.dir, "src", "components", "Foo.tsx"))
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())

	out := f.console.String()
	assert.Contains(t, out, "Would migrate: src/components/Foo.tsx")
	assert.Contains(t, out, "--- src/components/Foo.tsx")
	assert.Contains(t, out, "-import { Box } from '@mui/material';")
	assert.Contains(t, out, "+import { Box } from './shared/Box';")
	assert.Contains(t, out, "Dry run complete! Would migrate 2 files.")
}

func TestMigrateNoFiles(t *testing.T) {
	f := newFixture(t, map[string]string{"src/README.md": "# hi\n"})
	ctx := f.ctx(t)

	op, err := NewMigrateOperation(f.options(false))
	require.NoError(t, err)
	require.NoError(t, op.Execute(ctx))

	assert.Equal(t, 0, op.Migrated())
	assert.True(t, strings.HasPrefix(f.console.String(), "\nMigration complete! Migrated 0 files.\n"))
}

func TestMigrateFailFast(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(f *fixture)
		errContains string
		wantWrites  []string
	}{
		{
			name:        "read_error",
			setup:       func(f *fixture) { f.files.failRead = "src/components/Foo.tsx" },
			errContains: "processing file src/components/Foo.tsx",
		},
		{
			name:        "write_error_stops_run",
			setup:       func(f *fixture) { f.files.failWrite = "src/components/Foo.tsx" },
			errContains: "writing file",
		},
		{
			name:        "later_write_error_keeps_earlier_writes",
			setup:       func(f *fixture) { f.files.failWrite = "src/pages/Home.jsx" },
			errContains: "disk full",
			wantWrites:  []string{"src/components/Foo.tsx"},
		},
		{
			name:        "bad_pattern",
			setup:       func(f *fixture) { f.cfg.IgnorePatterns = []string{"{"} },
			errContains: "selecting files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tree())
			tt.setup(f)

			op, err := NewMigrateOperation(f.options(false))
			require.NoError(t, err)

			err = op.Execute(f.ctx(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			assert.Equal(t, tt.wantWrites, f.files.writes)
			assert.NotContains(t, f.console.String(), "Migration complete!")
		})
	}
}

func TestMigrateCancelled(t *testing.T) {
	f := newFixture(t, tree())
	ctx, cancel := context.WithCancel(f.ctx(t))
	cancel()

	op, err := NewMigrateOperation(f.options(false))
	require.NoError(t, err)

	err = op.Execute(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.files.writes)
}

func TestNewMigrateOperationRequiresDependencies(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		name   string
		mutate func(o *Options)
		want   string
	}{
		{name: "config", mutate: func(o *Options) { o.Config = nil }, want: "config is required"},
		{name: "files", mutate: func(o *Options) { o.Files = nil }, want: "file manager is required"},
		{name: "status", mutate: func(o *Options) { o.Status = nil }, want: "status reporter is required"},
		{name: "logger", mutate: func(o *Options) { o.Logger = nil }, want: "logger is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := f.options(false)
			tt.mutate(&opts)
			_, err := NewMigrateOperation(opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
