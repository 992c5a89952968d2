package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/configforge/configforge/pkg/models"
)

// aggregateDocument is the optional whole-service schema document. It is
// excluded from section discovery; its displayOrder list is exposed verbatim.
const aggregateDocument = "service.schema.json"

const cacheSize = 128

// Repository loads per-section schema documents from a directory. Documents
// are read-only at runtime; parsed sections are cached after first load.
// Reads are idempotent, so one repository can be shared across sessions.
type Repository struct {
	dir    string
	logger *slog.Logger
	cache  *lru.Cache[string, *models.SectionSchema]

	mu           sync.Mutex
	discovered   bool
	names        []string
	displayOrder []string
}

// NewRepository creates a repository over the given schema directory.
func NewRepository(dir string, logger *slog.Logger) (*Repository, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("schema directory %q: %w", dir, err)
	}

	cache, err := lru.New[string, *models.SectionSchema](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Repository{
		dir:    dir,
		logger: logger.With("module", "schemas"),
		cache:  cache,
	}, nil
}

// Section loads one section's schema document. Unknown names return
// ErrSchemaNotFound; documents that exist but are not valid JSON return a
// ParseError naming the section.
func (r *Repository) Section(name string) (*models.SectionSchema, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("section %q: %w", name, ErrSchemaNotFound)
	}

	if section, ok := r.cache.Get(name); ok {
		return section, nil
	}

	data, err := os.ReadFile(filepath.Join(r.dir, name+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("section %q: %w", name, ErrSchemaNotFound)
		}

		return nil, fmt.Errorf("reading schema for section %q: %w", name, err)
	}

	section, err := parseSection(name, data)
	if err != nil {
		return nil, err
	}

	r.cache.Add(name, section)

	return section, nil
}

// List returns every loadable section name in discovery order (sorted
// directory listing). Malformed documents are skipped and logged.
func (r *Repository) List() ([]string, error) {
	if err := r.discover(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.names...), nil
}

// DisplayOrder returns the hand-authored presentation order from the
// aggregate document, if any. It is exposed verbatim and never reconciled
// with the computed section order; gating always follows Order.
func (r *Repository) DisplayOrder() []string {
	if err := r.discover(); err != nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.displayOrder...)
}

// IsRequired reports whether a section's document carries a top-level
// boolean `required: true` flag.
func (r *Repository) IsRequired(name string) bool {
	section, err := r.Section(name)
	if err != nil {
		return false
	}

	return section.Required
}

// Invalidate drops the section cache and the discovery memo so the next
// read hits the disk again.
func (r *Repository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Purge()
	r.discovered = false
	r.names = nil
	r.displayOrder = nil
}

func (r *Repository) discover() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.discovered {
		return nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("listing schema directory %q: %w", r.dir, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		if entry.Name() == aggregateDocument {
			r.displayOrder = r.readDisplayOrder(filepath.Join(r.dir, entry.Name()))

			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")

		if _, err := r.sectionLocked(name); err != nil {
			r.logger.Warn("Skipping malformed section schema", "section", name, "error", err)

			continue
		}

		names = append(names, name)
	}

	r.names = names
	r.discovered = true

	return nil
}

// sectionLocked loads a section while r.mu is held. It bypasses Section to
// avoid re-entering the mutex; the LRU cache is safe on its own.
func (r *Repository) sectionLocked(name string) (*models.SectionSchema, error) {
	if section, ok := r.cache.Get(name); ok {
		return section, nil
	}

	data, err := os.ReadFile(filepath.Join(r.dir, name+".json"))
	if err != nil {
		return nil, err
	}

	section, err := parseSection(name, data)
	if err != nil {
		return nil, err
	}

	r.cache.Add(name, section)

	return section, nil
}

func (r *Repository) readDisplayOrder(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var doc struct {
		DisplayOrder []string `json:"displayOrder"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.Warn("Ignoring malformed aggregate schema document", "path", path, "error", err)

		return nil
	}

	return doc.DisplayOrder
}
