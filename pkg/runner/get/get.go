package get

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tableflip.dev/rollover/pkg/bucket"
	"tableflip.dev/rollover/pkg/journal"
	"tableflip.dev/rollover/pkg/printers"
	"tableflip.dev/rollover/pkg/store"
	"tableflip.dev/rollover/pkg/task"
)

// Get prints a day's entry, or with List set, a summary table of every
// journal date.
type Get struct {
	// Stub selects the day to show; empty means today.
	Stub string
	List bool

	Now func() time.Time

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	if n.List {
		return n.list(ctx)
	}

	stub := n.Stub
	if stub == "" {
		now := time.Now
		if n.Now != nil {
			now = n.Now
		}
		stub = journal.Stub(now())
	}
	if _, err := journal.ParseStub(stub); err != nil {
		return err
	}

	if !n.Persistence.Has(stub) {
		return fmt.Errorf("no journal entry for %s", stub)
	}
	content, err := n.Persistence.Read(stub)
	if err != nil {
		return err
	}
	result := journal.Parse(content)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("TODO FOR " + stub)
	pp.Day(result.Tasks)
	return nil
}

func (n *Get) list(ctx context.Context) error {
	dates, err := n.Persistence.Dates(ctx)
	if err != nil {
		return err
	}

	rows := make([][3]string, 0, len(dates))
	for _, stub := range dates {
		content, err := n.Persistence.Read(stub)
		if err != nil {
			return err
		}
		open, completed := counts(journal.Parse(content))
		rows = append(rows, [3]string{stub, strconv.Itoa(open), strconv.Itoa(completed)})
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Summary(rows)
	return nil
}

func counts(r *journal.Result) (open, completed int) {
	for _, b := range bucket.Periods() {
		for _, t := range r.Tasks(b) {
			if task.IsCompleted(t) {
				completed++
			} else {
				open++
			}
		}
	}
	completed += len(r.Tasks(bucket.Completed))
	return open, completed
}
