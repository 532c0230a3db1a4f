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

package log

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎯 FileOperation describes what the migration did, or would do, to one file
type FileOperation struct {
	Path               string // File path as shown to the user
	ImportFound        bool   // Whether the UI kit import was found
	Injected           bool   // Whether the local import was prepended
	AttributesStripped int    // Number of JSX attributes removed
	Written            bool   // Whether the file is (or would be) written
	DryRun             bool   // Whether nothing is persisted
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 Migrated prints the per file line: "Migrated: <path>", or
// "Would migrate: <path>" on a dry run
func (l *Logger) Migrated(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	label := "Migrated"
	if op.DryRun {
		label = "Would migrate"
	}
	fmt.Fprintf(l.console, "%s: %s\n", label, op.Path)

	l.zlog.Info().
		Str("file", op.Path).
		Bool("import_found", op.ImportFound).
		Bool("injected", op.Injected).
		Int("attributes_stripped", op.AttributesStripped).
		Bool("dry_run", op.DryRun).
		Msg("file migrated")
}

// 📝 Summary prints the final count followed by the guidance lines
func (l *Logger) Summary(ctx context.Context, count int, dryRun bool, guidance []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if dryRun {
		fmt.Fprintf(l.console, "\nDry run complete! Would migrate %d files.\n", count)
	} else {
		fmt.Fprintf(l.console, "\nMigration complete! Migrated %d files.\n", count)
	}
	for _, line := range guidance {
		fmt.Fprintln(l.console, line)
	}

	l.zlog.Info().Int("files", count).Bool("dry_run", dryRun).Msg("migration complete")
}

// 📝 Diff prints a rendered diff for path
func (l *Logger) Diff(path string, diff string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s\n", color.New(color.Bold).Sprint("---"), color.New(color.FgCyan).Sprint(path))
	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(l.console, color.New(color.FgGreen).Sprint(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(l.console, color.New(color.FgRed).Sprint(line))
		default:
			fmt.Fprintln(l.console, line)
		}
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// 📊 Table prints a table of pending file operations
func (l *Logger) Table(ops []FileOperation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := pterm.TableData{{"File", "Import", "Inject", "Attributes", "Write"}}
	for _, op := range ops {
		data = append(data, []string{
			op.Path,
			yesNo(op.ImportFound),
			yesNo(op.Injected),
			strconv.Itoa(op.AttributesStripped),
			yesNo(op.Written),
		})
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(l.console, out)
	return nil
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("boxmigrate")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
