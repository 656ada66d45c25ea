package filestore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"goFrame/internal/frame"
	"goFrame/internal/storage"
)

const tableExt = ".yml"

var _ storage.Catalog = (*FileStore)(nil)

// FileStore keeps one table document per file in a directory:
//
//	<dir>/<name>.yml
//
// Writes go to a temporary file first and are renamed into place, so a
// reader never sees a half-written table.
type FileStore struct {
	dir string
	mu  sync.RWMutex
}

// New creates a FileStore rooted at dir, creating the directory if needed.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "filestore: create dir")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) tablePath(name string) string {
	return filepath.Join(s.dir, name+tableExt)
}

// CreateTable writes a new table file. It fails if the table exists.
func (s *FileStore) CreateTable(name string, t *frame.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.tablePath(name)); err == nil {
		return errors.Errorf("filestore: table %q already exists", name)
	} else if !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "filestore: check existing table")
	}
	return s.write(name, t)
}

// ReplaceTable writes t, overwriting any existing file.
func (s *FileStore) ReplaceTable(name string, t *frame.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(name, t)
}

func (s *FileStore) write(name string, t *frame.Table) error {
	if t == nil {
		return errors.Errorf("filestore: table %q is nil", name)
	}
	f, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "filestore: create temp file")
	}
	tmp := f.Name()

	if err := Encode(f, t); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "filestore: close temp file")
	}
	if err := os.Rename(tmp, s.tablePath(name)); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "filestore: rename table file")
	}
	return nil
}

// Table reads a table file.
func (s *FileStore) Table(name string) (*frame.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := LoadFile(s.tablePath(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, errors.Errorf("filestore: table %q does not exist", name)
	}
	return t, err
}

// DropTable removes a table file.
func (s *FileStore) DropTable(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.tablePath(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Errorf("filestore: table %q does not exist", name)
		}
		return errors.Wrap(err, "filestore: drop table")
	}
	return nil
}

// ListTables returns all table names found in the directory.
func (s *FileStore) ListTables() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(err, "filestore: list tables")
	}

	var tables []string
	for _, ent := range entries {
		name := ent.Name()
		if !ent.IsDir() && strings.HasSuffix(name, tableExt) {
			tables = append(tables, strings.TrimSuffix(name, tableExt))
		}
	}
	sort.Strings(tables)
	return tables, nil
}

// LoadFile decodes the table document at path.
func LoadFile(path string) (*frame.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "filestore: open")
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return t, nil
}

// LoadAll decodes several files concurrently. Results keep the order of
// paths; the first failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]*frame.Table, error) {
	tables := make([]*frame.Table, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t, err := LoadFile(path)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// TableName derives a table name from a file path: "data/users.yml" -> "users".
func TableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
