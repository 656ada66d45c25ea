package memstore

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"goFrame/internal/frame"
	"goFrame/internal/storage"
)

type memCatalog struct {
	mu     sync.RWMutex
	tables map[string]*frame.Table
}

// New creates a new in-memory catalog.
func New() storage.Catalog {
	return &memCatalog{
		tables: make(map[string]*frame.Table),
	}
}

// CreateTable registers t under name.
func (c *memCatalog) CreateTable(name string, t *frame.Table) error {
	if t == nil {
		return errors.Errorf("table %s is nil", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tables[name]; exists {
		return errors.Errorf("table %s already exists", name)
	}
	c.tables[name] = t
	return nil
}

// ReplaceTable stores t under name, whether or not it exists.
func (c *memCatalog) ReplaceTable(name string, t *frame.Table) error {
	if t == nil {
		return errors.Errorf("table %s is nil", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tables[name] = t
	return nil
}

// Table returns the stored table. Tables are immutable once stored, so the
// same pointer is handed to every reader.
func (c *memCatalog) Table(name string) (*frame.Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[name]
	if !ok {
		return nil, errors.Errorf("table %s does not exist", name)
	}
	return t, nil
}

func (c *memCatalog) DropTable(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tables[name]; !ok {
		return errors.Errorf("table %s does not exist", name)
	}
	delete(c.tables, name)
	return nil
}

func (c *memCatalog) ListTables() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
