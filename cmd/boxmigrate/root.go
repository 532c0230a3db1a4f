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

package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/boxmigrate/cmd/boxmigrate/opts"
	"github.com/walteh/boxmigrate/pkg/config"
	"github.com/walteh/boxmigrate/pkg/log"
	"github.com/walteh/boxmigrate/pkg/operation"
	"github.com/walteh/boxmigrate/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	projectDir string
	root       string
	writeMode  string
	debug      bool
)

// initRootOpts fills opts with initialized dependencies
func initRootOpts(ctx context.Context, cmd *cobra.Command, o *opts.RootOpts) error {
	logger := zerolog.Ctx(ctx)

	// Load config; a missing default file means defaults
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(ctx, configFile)
	} else {
		cfg, err = config.LoadOrDefault(ctx, filepath.Join(projectDir, configFile))
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// Apply flag overrides
	if root != "" {
		cfg.Root = root
	}
	if writeMode != "" {
		cfg.WriteMode = config.WriteMode(writeMode)
	}
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating config: %w", err)
	}
	logger.Debug().Str("config", cfg.String()).Msg("configuration loaded")

	o.Config = cfg
	o.Files = status.New(projectDir, logger)
	o.Logger = log.New(cmd.OutOrStdout(), *logger)
	o.Runner = operation.NewRunner(logger)

	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile, "config file path (.yaml, .yml, .hcl or .json); the default is looked up in the project directory")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", ".", "project directory all paths are relative to")
	cmd.PersistentFlags().StringVar(&root, "root", "", "source directory to scan, overrides the config")
	cmd.PersistentFlags().StringVar(&writeMode, "write-mode", "", "when to write files back: import or any, overrides the config")
	cmd.PersistentFlags().BoolVar(&o.DryRun, "dry-run", false, "show what would change without writing")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and returns a context carrying the logger
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}
