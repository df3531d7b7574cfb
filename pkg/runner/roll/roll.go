// Package roll carries unfinished tasks from the most recent journal entry
// into a fresh entry for today.
package roll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tableflip.dev/rollover/pkg/bucket"
	"tableflip.dev/rollover/pkg/journal"
	"tableflip.dev/rollover/pkg/printers"
	"tableflip.dev/rollover/pkg/store"
)

// Reviewer decides the destination bucket for a task whose period expired.
type Reviewer interface {
	Resolve(task string, from bucket.Bucket) (bucket.Bucket, error)
}

// Roll is the roll-forward runner.
type Roll struct {
	Persistence store.Persistence
	Reviewer    Reviewer

	// Now supplies "today"; defaults to time.Now.
	Now func() time.Time

	// Out receives progress messages; nil silences them.
	Out io.Writer
}

// Do rolls the most recent journal entry forward into today's entry.
//
// Today's entry already existing is a clean no-op, so the command is safe to
// run twice in a day. With no prior entries at all it writes the empty
// skeleton. Otherwise each time-period section of the prior entry is either
// carried forward untouched (the period still covers the prior date) or put
// through review task by task. The new file is written exactly once, at the
// end: a run aborted mid-review leaves nothing behind.
func (n *Roll) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not roll, no persistence")
	}
	if n.Reviewer == nil {
		return errors.New("can not roll, no reviewer")
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	today := now()
	stub := journal.Stub(today)

	if n.Persistence.Has(stub) {
		n.printf("%s already exists, nothing to do\n", stub)
		return nil
	}

	dates, err := n.Persistence.Dates(ctx)
	if err != nil {
		return err
	}

	result := &journal.Result{}

	if len(dates) == 0 {
		n.printf("starting a fresh journal for %s\n", stub)
		return n.write(stub, result)
	}

	// Lexical order on YYYY-MM-DD is chronological order; the most recent
	// entry is the last one.
	prior := dates[len(dates)-1]
	priorDate, err := journal.ParseStub(prior)
	if err != nil {
		return err
	}

	content, err := n.Persistence.Read(prior)
	if err != nil {
		return err
	}

	n.printf("rolling %s forward to %s\n", prior, stub)

	for _, b := range bucket.Periods() {
		toReview := !b.Matches(priorDate, today)
		for _, t := range journal.Section(content, b) {
			if !toReview {
				// The period still covers the prior date; no time has
				// passed as far as this bucket is concerned.
				result.Add(b, t)
				continue
			}
			to, err := n.Reviewer.Resolve(t, b)
			if err != nil {
				return err
			}
			result.Add(to, t)
		}
	}

	return n.write(stub, result)
}

func (n *Roll) write(stub string, result *journal.Result) error {
	if err := n.Persistence.Write(stub, journal.Render(stub, result)); err != nil {
		return err
	}
	if n.Out != nil {
		pp := printers.PrettyPrint{}
		pp.NewLine()
		pp.Title("TODO FOR " + stub)
		pp.Day(result.Tasks)
	}
	return nil
}

func (n *Roll) printf(format string, args ...interface{}) {
	if n.Out != nil {
		fmt.Fprintf(n.Out, format, args...)
	}
}
