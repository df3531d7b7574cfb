package journal

import (
	"strings"

	"tableflip.dev/rollover/pkg/bucket"
	"tableflip.dev/rollover/pkg/task"
)

// Render serializes a day. The title line names the date stub, then every
// bucket section appears in canonical order, empty ones included, each
// terminated by a blank line. Tasks landing in Completed are re-emitted with
// the canonical completion marker whatever marker they carried before; all
// other sections keep their lines verbatim.
func Render(stub string, r *Result) string {
	var sb strings.Builder
	sb.WriteString("# TODO FOR " + stub + "\n\n")

	for _, b := range bucket.All() {
		sb.WriteString("# " + b.Heading() + "\n")
		for _, t := range r.Tasks(b) {
			if b == bucket.Completed {
				t = task.Complete(t)
			}
			sb.WriteString(t + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
