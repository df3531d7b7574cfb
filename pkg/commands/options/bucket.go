package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/rollover/pkg/bucket"
)

// BucketOptions selects a destination bucket for a command.
type BucketOptions struct {
	Name string
}

// AddBucketArgs wires the bucket selection flag on the provided command.
func AddBucketArgs(cmd *cobra.Command, o *BucketOptions) {
	cmd.Flags().StringVarP(&o.Name, "bucket", "b", "today",
		"Destination bucket: today, anytime, week, month, quarter or year.")
}

// Bucket resolves the flag value into a period bucket.
func (o *BucketOptions) Bucket() (bucket.Bucket, error) {
	return bucket.ForAlias(o.Name)
}
