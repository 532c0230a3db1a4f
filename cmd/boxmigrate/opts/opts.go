package opts

import (
	"github.com/walteh/boxmigrate/pkg/config"
	"github.com/walteh/boxmigrate/pkg/log"
	"github.com/walteh/boxmigrate/pkg/operation"
	"github.com/walteh/boxmigrate/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config *config.Config
	Files  *status.Manager
	Logger *log.Logger
	Runner *operation.OperationRunner
	DryRun bool
}

// OperationOptions returns the options every operation is built from
func (o *RootOpts) OperationOptions() operation.Options {
	return operation.Options{
		Config: o.Config,
		Files:  o.Files,
		Status: o.Files,
		Logger: o.Logger,
		DryRun: o.DryRun,
	}
}
