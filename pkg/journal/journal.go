// Package journal defines the day-file grammar: one plain-text file per
// calendar day, one section per bucket in canonical order.
package journal

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/rollover/pkg/bucket"
)

const (
	// LayoutISO names day files and titles them.
	LayoutISO = "2006-01-02"

	// Extension is a naming convention only; the content is plain text.
	Extension = ".md"
)

// Stub is the date portion of a day file's name, e.g. "2026-08-24".
func Stub(t time.Time) string {
	return t.Format(LayoutISO)
}

// Filename is the day file's name for the given date.
func Filename(t time.Time) string {
	return Stub(t) + Extension
}

// ParseStub parses a filename stub back into a date. The match is strict:
// anything that does not round-trip through the layout is rejected, since
// filenames are the only date index the journal has.
func ParseStub(stub string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, stub)
	if err != nil {
		return time.Time{}, fmt.Errorf("journal: %q is not a %s date: %w", stub, LayoutISO, err)
	}
	if t.Format(LayoutISO) != stub {
		return time.Time{}, fmt.Errorf("journal: %q is not a %s date", stub, LayoutISO)
	}
	return t, nil
}

// Result accumulates the tasks of a day keyed by bucket, preserving insertion
// order within each bucket. The zero value is ready to use.
type Result struct {
	tasks map[bucket.Bucket][]string
}

// Add appends a task line to the bucket's list.
func (r *Result) Add(b bucket.Bucket, task string) {
	if r.tasks == nil {
		r.tasks = make(map[bucket.Bucket][]string)
	}
	r.tasks[b] = append(r.tasks[b], task)
}

// Tasks returns the bucket's task lines in insertion order.
func (r *Result) Tasks(b bucket.Bucket) []string {
	return r.tasks[b]
}

// Len is the total number of tasks across all buckets.
func (r *Result) Len() int {
	n := 0
	for _, tasks := range r.tasks {
		n += len(tasks)
	}
	return n
}

// Section extracts the ordered task lines under the bucket's heading. The
// section starts at the line exactly matching the heading and ends at the
// first blank line; a missing section is just empty. Only the first
// occurrence of a heading is read.
func Section(content string, b bucket.Bucket) []string {
	heading := "# " + b.Heading()
	tasks := []string{}
	reading := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if reading {
			if trimmed == "" {
				break
			}
			tasks = append(tasks, trimmed)
			continue
		}
		if trimmed == heading {
			reading = true
		}
	}
	return tasks
}

// Parse reads every bucket section of a day file into a Result.
func Parse(content string) *Result {
	r := &Result{}
	for _, b := range bucket.All() {
		for _, t := range Section(content, b) {
			r.Add(b, t)
		}
	}
	return r
}
