package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/rollover/pkg/bucket"
	"tableflip.dev/rollover/pkg/task"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Day prints every bucket section of a day in canonical order.
func (pp *PrettyPrint) Day(tasks func(bucket.Bucket) []string) {
	for _, b := range bucket.All() {
		pp.Bucket(b, tasks(b))
	}
}

// Bucket prints one section heading and its tasks. Empty sections show a
// faint placeholder the way empty collections do in a journal review.
func (pp *PrettyPrint) Bucket(b bucket.Bucket, tasks []string) {
	h := color.New(color.Bold)
	_, _ = h.Println(b.Heading())

	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint)
	gone := color.New(color.Faint, color.CrossedOut)

	for _, line := range tasks {
		switch {
		case b == bucket.Dropped:
			_, _ = gone.Printf("  %s\n", line)
		case b == bucket.Completed || task.IsCompleted(line):
			_, _ = done.Printf("  %s\n", line)
		default:
			_, _ = t.Printf("  %s\n", line)
		}
	}
	_, _ = t.Println("")
}

// Summary renders one row per journal date with open and completed counts.
func (pp *PrettyPrint) Summary(rows [][3]string) {
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("DATE", "OPEN", "COMPLETED")
	for _, row := range rows {
		table.AddRow(row[0], row[1], row[2])
	}
	fmt.Println(table)
}
