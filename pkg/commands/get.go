package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/rollover/pkg/commands/options"
	"tableflip.dev/rollover/pkg/runner/get"
	"tableflip.dev/rollover/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	lo := &options.ListOptions{}

	stub := ""

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Show a day's entry",
		Example: `
rollover get
rollover get 2026-08-23
rollover get --list
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("at most one date")
			}
			if len(args) == 1 {
				stub = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := jo.Config()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := get.Get{
				Stub:        stub,
				List:        lo.List,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddListArgs(cmd, lo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
