package options

import (
	"github.com/spf13/cobra"
)

// ListOptions
type ListOptions struct {
	List bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.List, "list", false,
		"List all journal dates with task counts.")
}
