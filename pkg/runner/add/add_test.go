package add

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"tableflip.dev/rollover/pkg/bucket"
	"tableflip.dev/rollover/pkg/journal"
)

type memoryPersistence struct {
	files map[string]string
}

func (m *memoryPersistence) Has(stub string) bool {
	_, ok := m.files[stub]
	return ok
}

func (m *memoryPersistence) Read(stub string) (string, error) {
	content, ok := m.files[stub]
	if !ok {
		return "", errors.New("not found: " + stub)
	}
	return content, nil
}

func (m *memoryPersistence) Write(stub string, content string) error {
	m.files[stub] = content
	return nil
}

func (m *memoryPersistence) Dates(_ context.Context) ([]string, error) {
	stubs := make([]string, 0, len(m.files))
	for stub := range m.files {
		stubs = append(stubs, stub)
	}
	sort.Strings(stubs)
	return stubs, nil
}

func fixedNow(stub string) func() time.Time {
	t, err := journal.ParseStub(stub)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestAddBootstrapsToday(t *testing.T) {
	p := &memoryPersistence{files: map[string]string{}}
	s := Add{
		Bucket:      bucket.Today,
		Message:     "- call mum",
		Persistence: p,
		Now:         fixedNow("2026-08-24"),
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	content, ok := p.files["2026-08-24"]
	if !ok {
		t.Fatal("expected today's file to be created")
	}
	got := journal.Section(content, bucket.Today)
	if len(got) != 1 || got[0] != "- call mum" {
		t.Fatalf("TODAY = %v", got)
	}
}

func TestAddAppendsInOrder(t *testing.T) {
	p := &memoryPersistence{files: map[string]string{}}
	for _, msg := range []string{"- one", "- two", "- three"} {
		s := Add{
			Bucket:      bucket.ThisWeek,
			Message:     msg,
			Persistence: p,
			Now:         fixedNow("2026-08-24"),
		}
		if err := s.Do(context.Background()); err != nil {
			t.Fatalf("Do(%q): %v", msg, err)
		}
	}
	got := journal.Section(p.files["2026-08-24"], bucket.ThisWeek)
	if len(got) != 3 || got[0] != "- one" || got[1] != "- two" || got[2] != "- three" {
		t.Fatalf("THIS WEEK = %v", got)
	}
}

func TestAddRejectsTerminalBuckets(t *testing.T) {
	p := &memoryPersistence{files: map[string]string{}}
	for _, b := range []bucket.Bucket{bucket.Completed, bucket.Dropped} {
		s := Add{Bucket: b, Message: "- nope", Persistence: p, Now: fixedNow("2026-08-24")}
		if err := s.Do(context.Background()); err == nil {
			t.Fatalf("adding to %s should fail", b)
		}
	}
	if len(p.files) != 0 {
		t.Fatal("nothing should be written")
	}
}

func TestAddRejectsEmptyMessage(t *testing.T) {
	p := &memoryPersistence{files: map[string]string{}}
	s := Add{Bucket: bucket.Today, Message: "", Persistence: p, Now: fixedNow("2026-08-24")}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("empty task should fail")
	}
}
