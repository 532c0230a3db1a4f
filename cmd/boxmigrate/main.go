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
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/boxmigrate/cmd/boxmigrate/commands"
	"github.com/walteh/boxmigrate/cmd/boxmigrate/opts"
	"github.com/walteh/boxmigrate/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&opts.RootOpts{}).ExecuteContext(ctx); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree around rootOpts
func newRootCmd(rootOpts *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "boxmigrate",
		Short: "Move Box imports off @mui/material onto the shared Box component",
		Long: `boxmigrate rewrites a React source tree so that Box is imported from the
project's shared component instead of @mui/material, and removes the
redundant component="div" attribute from <Box> tags.

Running boxmigrate with no command is the same as "boxmigrate migrate".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context())
			cmd.SetContext(ctx)
			return initRootOpts(ctx, cmd, rootOpts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunMigrate(cmd.Context(), rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd, rootOpts)

	// Add commands
	rootCmd.AddCommand(
		commands.NewMigrateCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
		commands.NewVersionCmd(FormatVersion),
	)

	return rootCmd
}

// reportError prints a failed run to w
func reportError(w io.Writer, err error) {
	log.New(w, zerolog.Nop()).Errorf("boxmigrate failed: %v", err)
}
