package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/rollover/pkg/commands/options"
	"tableflip.dev/rollover/pkg/runner/add"
	"tableflip.dev/rollover/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	jo := &options.JournalOptions{}
	bo := &options.BucketOptions{}

	message := ""

	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Add a task to today's entry",
		Example: `
rollover add buy milk
rollover add --bucket week file taxes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			b, err := bo.Bucket()
			if err != nil {
				return err
			}
			cfg, err := jo.Config()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := add.Add{
				Bucket:      b,
				Message:     message,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddBucketArgs(cmd, bo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
