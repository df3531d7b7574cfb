package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/rollover/pkg/journal"
)

// Persistence is the journal's storage contract. Keys are date stubs
// (YYYY-MM-DD); each key maps to one flat day file in the journal directory.
type Persistence interface {
	Has(stub string) bool
	Read(stub string) (string, error)
	Write(stub string, content string) error
	Dates(ctx context.Context) ([]string, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: stubToPathTransform,
		InverseTransform:  pathToStubTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Has(stub string) bool {
	return p.d.Has(stub)
}

func (p *persistence) Read(stub string) (string, error) {
	val, err := p.d.Read(stub)
	if err != nil {
		return "", fmt.Errorf("store: read %s: %w", stub, err)
	}
	return string(val), nil
}

func (p *persistence) Write(stub string, content string) error {
	if err := p.d.Write(stub, []byte(content)); err != nil {
		return fmt.Errorf("store: write %s: %w", stub, err)
	}
	return nil
}

// Dates lists every journal date in ascending order. Filenames are the only
// date index there is, so a file that does not parse as a date is an error,
// never a silent skip: rolling forward from the wrong file is worse than
// stopping.
func (p *persistence) Dates(ctx context.Context) ([]string, error) {
	stubs := make([]string, 0)
	for stub := range p.d.Keys(ctx.Done()) {
		if _, err := journal.ParseStub(stub); err != nil {
			return nil, fmt.Errorf("store: journal directory holds a file that is not a dated entry: %w", err)
		}
		stubs = append(stubs, stub)
	}
	sort.Strings(stubs)
	return stubs, nil
}

// stubToPathTransform keeps day files flat in the journal directory:
// key "2026-08-24" lives at <basePath>/2026-08-24.md.
func stubToPathTransform(stub string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: stub + journal.Extension,
	}
}

func pathToStubTransform(pathKey *diskv.PathKey) string {
	stub := strings.TrimSuffix(pathKey.FileName, journal.Extension)
	if len(pathKey.Path) == 0 {
		return stub
	}
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), stub)
}
