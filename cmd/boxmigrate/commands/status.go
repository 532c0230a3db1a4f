package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/boxmigrate/cmd/boxmigrate/opts"
	"github.com/walteh/boxmigrate/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	var failOnPending bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which files a migration would change",
		Long: `Status scans the source tree without writing anything and prints a table of
the files a migration would touch. With --fail-on-pending it exits non-zero
while any file still needs to be written, which makes it usable as a CI check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := operation.NewScanOperation(opts.OperationOptions(), failOnPending)
			if err != nil {
				return errors.Errorf("creating operation: %w", err)
			}
			return opts.Runner.Run(cmd.Context(), "status", op)
		},
	}

	cmd.Flags().BoolVar(&failOnPending, "fail-on-pending", false, "exit non-zero when files still need migrating")

	return cmd
}
