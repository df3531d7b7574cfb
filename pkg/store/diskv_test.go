package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func TestWriteReadHas(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Has("2026-08-24") {
		t.Fatal("fresh store should not have today")
	}
	if err := p.Write("2026-08-24", "# TODO FOR 2026-08-24\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !p.Has("2026-08-24") {
		t.Fatal("expected Has after Write")
	}
	got, err := p.Read("2026-08-24")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "# TODO FOR 2026-08-24\n" {
		t.Fatalf("Read = %q", got)
	}

	// the day file sits flat in the journal directory under its dated name
	if _, err := os.Stat(filepath.Join(dir, "2026-08-24.md")); err != nil {
		t.Fatalf("expected flat day file: %v", err)
	}
}

func TestDatesSortedAscending(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, stub := range []string{"2026-08-23", "2026-01-02", "2026-08-01"} {
		if err := p.Write(stub, "x\n"); err != nil {
			t.Fatalf("Write(%s): %v", stub, err)
		}
	}
	dates, err := p.Dates(context.Background())
	if err != nil {
		t.Fatalf("Dates: %v", err)
	}
	want := []string{"2026-01-02", "2026-08-01", "2026-08-23"}
	if len(dates) != len(want) {
		t.Fatalf("Dates = %v, want %v", dates, want)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("Dates[%d] = %q, want %q", i, dates[i], want[i])
		}
	}
}

func TestDatesRejectsStrayFiles(t *testing.T) {
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := p.Write("2026-08-23", "x\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := p.Dates(context.Background()); err == nil {
		t.Fatal("a file that is not a dated entry should fail discovery")
	}
}
