package review

import (
	"strings"
	"testing"

	"tableflip.dev/rollover/pkg/bucket"
)

func newTestResolver(t *testing.T, input string) (*Resolver, *strings.Builder) {
	t.Helper()
	out := &strings.Builder{}
	r, err := NewResolver(strings.NewReader(input), out)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r, out
}

func TestResolveCompletedSkipsPrompt(t *testing.T) {
	// no input available at all; a marked task must not try to read
	r, out := newTestResolver(t, "")
	for _, b := range bucket.Periods() {
		got, err := r.Resolve("[x] buy milk", b)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if got != bucket.Completed {
			t.Fatalf("Resolve from %s = %s, want COMPLETED", b, got)
		}
	}
	if out.Len() != 0 {
		t.Fatalf("expected no prompt output, got %q", out.String())
	}
}

func TestResolveTokens(t *testing.T) {
	tests := []struct {
		input string
		want  bucket.Bucket
	}{
		{"\n", bucket.Completed},
		{"d\n", bucket.Dropped},
		{"t\n", bucket.Today},
		{"a\n", bucket.Anytime},
		{"w\n", bucket.ThisWeek},
		{"m\n", bucket.ThisMonth},
		{"q\n", bucket.ThisQuarter},
		{"y\n", bucket.ThisYear},
	}
	for _, tt := range tests {
		r, _ := newTestResolver(t, tt.input)
		got, err := r.Resolve("file taxes", bucket.ThisWeek)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("Resolve(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestResolveRepromptsOnGarbage(t *testing.T) {
	r, out := newTestResolver(t, "z\nnope\nw\n")
	got, err := r.Resolve("file taxes", bucket.ThisMonth)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != bucket.ThisWeek {
		t.Fatalf("Resolve = %s, want THIS WEEK", got)
	}
	if !strings.Contains(out.String(), "I didn't understand that") {
		t.Fatalf("expected a retry message, got %q", out.String())
	}
}

func TestResolveHelpReprintsInstructions(t *testing.T) {
	r, out := newTestResolver(t, "help\nd\n")
	got, err := r.Resolve("file taxes", bucket.ThisYear)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != bucket.Dropped {
		t.Fatalf("Resolve = %s, want DROPPED", got)
	}
	if n := strings.Count(out.String(), "Did you complete this last year?"); n != 2 {
		t.Fatalf("expected the question twice, got %d times in %q", n, out.String())
	}
}

func TestResolvePromptUsesPhrase(t *testing.T) {
	r, out := newTestResolver(t, "\n")
	if _, err := r.Resolve("file taxes", bucket.Today); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !strings.Contains(out.String(), "Did you complete this yesterday?") {
		t.Fatalf("expected yesterday phrasing, got %q", out.String())
	}
}

// Help text and dispatch must come from the same table: every action token
// shows up in the rendered instructions.
func TestHelpTextListsEveryAction(t *testing.T) {
	r, out := newTestResolver(t, "\n")
	if _, err := r.Resolve("file taxes", bucket.Anytime); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	text := out.String()
	for _, a := range Actions() {
		token := a.Token
		if token == "" {
			token = "<enter>"
		}
		if !strings.Contains(text, token+" = "+a.Description) {
			t.Fatalf("help text missing action %q: %q", token, text)
		}
	}
}

func TestResolveInputClosed(t *testing.T) {
	r, _ := newTestResolver(t, "")
	if _, err := r.Resolve("file taxes", bucket.ThisWeek); err == nil {
		t.Fatal("expected an error when input closes before resolution")
	}
}

func TestValidateRejectsDuplicateTokens(t *testing.T) {
	dup := []Action{
		{Token: "t", Target: bucket.Today},
		{Token: "t", Target: bucket.ThisWeek},
	}
	if _, err := validate(dup); err == nil {
		t.Fatal("expected duplicate token to fail validation")
	}
}

func TestValidateRejectsHelpToken(t *testing.T) {
	bad := []Action{{Token: "help", Target: bucket.Today}}
	if _, err := validate(bad); err == nil {
		t.Fatal("expected help token to fail validation")
	}
}

func TestActionsAreValid(t *testing.T) {
	if _, err := validate(Actions()); err != nil {
		t.Fatalf("default vocabulary should validate: %v", err)
	}
}
