// Package cli implements the prefixgender commands on top of the converter.
package cli

import (
	"context"
	"fmt"

	"github.com/NikitaCOEUR/prefixgender/internal/converter"
	"github.com/NikitaCOEUR/prefixgender/internal/report"
)

// Run executes a list or convert command. Anything else prints usage
// without touching the store.
func Run(ctx context.Context, p GlobalParams, cmd converter.Command) error {
	if cmd.Name != converter.CommandList && cmd.Name != converter.CommandConvert {
		Usage(p)
		return nil
	}

	c, err := initializeComponents(p)
	if err != nil {
		return err
	}
	defer c.close()

	ctrl, err := c.controller(p)
	if err != nil {
		return err
	}

	c.log.Debug().Str("command", cmd.Name).Str("prefix", cmd.Prefix).Str("gender", cmd.Gender).
		Bool("force", cmd.Force).Bool("verbose", cmd.Verbose).Msg("running command")
	return ctrl.Run(ctx, cmd)
}

// Usage prints the command help
func Usage(p GlobalParams) {
	_, _ = fmt.Fprint(p.out(), report.Usage)
}
