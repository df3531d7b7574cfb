package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/rollover/pkg/bucket"
	"tableflip.dev/rollover/pkg/journal"
	"tableflip.dev/rollover/pkg/printers"
	"tableflip.dev/rollover/pkg/store"
)

// Add appends a task to a bucket section of today's entry, creating the entry
// skeleton first when today has not been started yet.
type Add struct {
	Bucket  bucket.Bucket
	Message string

	Now func() time.Time

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.Message == "" {
		return errors.New("can not add an empty task")
	}
	if n.Bucket.Terminal() {
		return errors.New("can not add directly to a terminal bucket")
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	stub := journal.Stub(now())

	result := &journal.Result{}
	if n.Persistence.Has(stub) {
		content, err := n.Persistence.Read(stub)
		if err != nil {
			return err
		}
		result = journal.Parse(content)
	}
	result.Add(n.Bucket, n.Message)

	if err := n.Persistence.Write(stub, journal.Render(stub, result)); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Bucket(n.Bucket, result.Tasks(n.Bucket))
	return nil
}
