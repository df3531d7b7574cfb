package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "rollover",
		Short: base.Wrap80("Daily task journaling with interactive roll-forward."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRoll(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
