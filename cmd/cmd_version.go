package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/common/errs"
	"github.com/gaze-network/presale-ledger/modules/presale"
	"github.com/spf13/cobra"
)

var versions = map[string]string{
	"":        presale.Version,
	"presale": presale.Version,
}

type versionCmdOptions struct {
	Component string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show presale ledger version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Component, "component", "", `Show version of a specific component. E.g. "presale"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, cmd *cobra.Command, _ []string) error {
	version, ok := versions[opts.Component]
	if !ok {
		return errors.Wrapf(errs.Unsupported, "unknown component %q", opts.Component)
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
