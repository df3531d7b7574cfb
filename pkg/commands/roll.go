package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/rollover/pkg/commands/options"
	"tableflip.dev/rollover/pkg/review"
	"tableflip.dev/rollover/pkg/runner/roll"
	"tableflip.dev/rollover/pkg/store"
)

func addRoll(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Start today's entry from the most recent one",
		Long: `Creates today's journal entry by rolling the most recent entry forward.
Tasks whose time bucket still covers the old entry's date carry over untouched.
Everything else is reviewed one task at a time: mark it completed, drop it, or
defer it to another bucket. The new entry is written once, after the whole
review is done.`,
		Example: `
rollover roll
rollover roll --journal ~/todos
`,
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
			r, err := review.NewResolver(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			s := roll.Roll{
				Persistence: p,
				Reviewer:    r,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddJournalArgs(cmd, jo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
