// Package review decides the destination bucket for tasks whose period has
// expired, prompting the user once per unresolved task.
package review

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/rollover/pkg/bucket"
	"tableflip.dev/rollover/pkg/task"
)

// helpToken reprints the action list without resolving anything.
const helpToken = "help"

// Action binds one input token to a destination bucket. The same table renders
// the help text and dispatches the input, so the two cannot drift.
type Action struct {
	Token       string
	Description string
	Target      bucket.Bucket
}

// Actions is the review vocabulary in display order. The empty token is what
// a bare <enter> produces.
func Actions() []Action {
	return []Action{
		{Token: "", Description: "completed", Target: bucket.Completed},
		{Token: "d", Description: "dropped / abandoned / delegated", Target: bucket.Dropped},
		{Token: "t", Description: "defer to today", Target: bucket.Today},
		{Token: "a", Description: "defer to anytime", Target: bucket.Anytime},
		{Token: "w", Description: "defer to this week", Target: bucket.ThisWeek},
		{Token: "m", Description: "defer to this month", Target: bucket.ThisMonth},
		{Token: "q", Description: "defer to this quarter", Target: bucket.ThisQuarter},
		{Token: "y", Description: "defer to this year", Target: bucket.ThisYear},
	}
}

// Resolver runs the blocking prompt loop against the given streams.
type Resolver struct {
	in      *bufio.Scanner
	out     io.Writer
	actions []Action
	byToken map[string]bucket.Bucket
}

// NewResolver builds a resolver over the given streams, validating the action
// vocabulary. Duplicate tokens (and a token shadowing "help") are a
// construction error, not something discovered mid-prompt.
func NewResolver(in io.Reader, out io.Writer) (*Resolver, error) {
	actions := Actions()
	byToken, err := validate(actions)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		in:      bufio.NewScanner(in),
		out:     out,
		actions: actions,
		byToken: byToken,
	}, nil
}

func validate(actions []Action) (map[string]bucket.Bucket, error) {
	byToken := make(map[string]bucket.Bucket, len(actions))
	for _, a := range actions {
		if a.Token == helpToken {
			return nil, fmt.Errorf("review: action token %q shadows the help command", a.Token)
		}
		if _, ok := byToken[a.Token]; ok {
			return nil, fmt.Errorf("review: duplicate action token %q", a.Token)
		}
		byToken[a.Token] = a.Target
	}
	return byToken, nil
}

// Resolve returns the destination bucket for a task read out of the given
// period bucket. Tasks already marked complete resolve without a prompt.
// Otherwise it asks, and keeps asking until the answer is a known token.
func (r *Resolver) Resolve(t string, from bucket.Bucket) (bucket.Bucket, error) {
	if task.IsCompleted(t) {
		return bucket.Completed, nil
	}

	r.ask(t, from)
	for {
		line, err := r.read()
		if err != nil {
			return 0, err
		}
		if line == helpToken {
			r.ask(t, from)
			continue
		}
		if to, ok := r.byToken[line]; ok {
			return to, nil
		}
		fmt.Fprintln(r.out, "I didn't understand that, please try again")
		fmt.Fprintln(r.out, t)
	}
}

func (r *Resolver) ask(t string, from bucket.Bucket) {
	fmt.Fprintf(r.out, "Did you complete this %s?\n", from.Phrase())
	for _, a := range r.actions {
		token := a.Token
		if token == "" {
			token = "<enter>"
		}
		fmt.Fprintf(r.out, "    %s = %s\n", token, a.Description)
	}
	fmt.Fprintln(r.out, "    help = show these instructions again")
	fmt.Fprintln(r.out, color.New(color.Bold).Sprint(t))
}

func (r *Resolver) read() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", fmt.Errorf("review: read input: %w", err)
		}
		return "", fmt.Errorf("review: input closed before the task was resolved")
	}
	return r.in.Text(), nil
}
