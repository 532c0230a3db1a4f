package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/boxmigrate/cmd/boxmigrate/opts"
	"github.com/walteh/boxmigrate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RunMigrate rewrites the configured source tree
func RunMigrate(ctx context.Context, opts *opts.RootOpts) error {
	op, err := operation.NewMigrateOperation(opts.OperationOptions())
	if err != nil {
		return errors.Errorf("creating operation: %w", err)
	}

	if err := opts.Runner.Run(ctx, "migrate", op); err != nil {
		return err
	}

	return nil
}

// NewMigrateCmd creates a new migrate command
func NewMigrateCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite Box imports and strip component=\"div\" (default command)",
		Long: `Migrate scans the source root for .ts, .tsx, .js and .jsx files and, for
every file importing Box from @mui/material:
1. Removes Box from the @mui/material import (dropping the line if it was alone)
2. Prepends an import of Box from the shared component, relative to the file
3. Removes component="div" from every <Box> opening tag

Files are rewritten in place. Use --dry-run to preview the changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunMigrate(cmd.Context(), opts)
		},
	}

	return cmd
}
