// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rollover/pkg/store"
)

// JournalOptions selects the journal directory for a command.
type JournalOptions struct {
	Path string
}

// AddJournalArgs wires the journal directory flag on the provided command.
func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().StringVarP(&o.Path, "journal", "j", "",
		"Journal directory; overrides config and ROLLOVER_PATH.")
}

// Config resolves the persistence config, preferring the flag when set.
func (o *JournalOptions) Config() (store.Config, error) {
	if o.Path != "" {
		return store.PathConfig(o.Path)
	}
	return store.LoadConfig()
}
