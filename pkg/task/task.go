// Package task encodes the marker conventions of a journal task line.
package task

import "strings"

// CompletedMarkers are the prefixes that mark a task line as done. The first
// entry is the canonical spelling used when a completed task is re-emitted.
func CompletedMarkers() []string {
	return []string{"[x]", "[X]"}
}

// IncompleteMarkers are the prefixes a task line may carry without being done.
func IncompleteMarkers() []string {
	return []string{"[ ]", "[]", "->", "-", "*"}
}

// IsCompleted reports whether the task line carries a completion marker.
func IsCompleted(task string) bool {
	for _, m := range CompletedMarkers() {
		if strings.HasPrefix(task, m) {
			return true
		}
	}
	return false
}

// Bare strips a single leading marker, completion or incompletion, and the
// whitespace after it. Lines with no marker come back unchanged apart from
// trimming.
func Bare(task string) string {
	task = strings.TrimSpace(task)
	for _, m := range append(CompletedMarkers(), IncompleteMarkers()...) {
		if strings.HasPrefix(task, m) {
			return strings.TrimSpace(strings.TrimPrefix(task, m))
		}
	}
	return task
}

// Complete renders the task with the canonical completion marker, stripping
// whatever marker it carried first so the marker never doubles up.
func Complete(task string) string {
	return CompletedMarkers()[0] + " " + Bare(task)
}
