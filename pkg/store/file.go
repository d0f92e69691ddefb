package store

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/gridsynth/pkg/errors"
)

// FileStore keeps archives as individual JSON files in a directory.
// The archive name maps directly to the file name, so names are validated
// against path traversal before any filesystem access.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store in the given directory.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Save writes doc to <dir>/<name>.json. The file path doubles as the id.
func (s *FileStore) Save(ctx context.Context, name string, doc []byte) (string, error) {
	if err := errors.ValidateArchiveName(name); err != nil {
		return "", err
	}
	path := s.path(name)
	if err := os.WriteFile(path, doc, 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", path)
	}
	return path, nil
}

// Load reads the document stored under name.
func (s *FileStore) Load(ctx context.Context, name string) ([]byte, error) {
	if err := errors.ValidateArchiveName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "read %s", s.path(name))
	}
	return data, nil
}

// List returns all stored archives sorted by name.
func (s *FileStore) List(ctx context.Context) ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "read %s", s.dir)
	}

	var out []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(de.Name(), ".json")
		out = append(out, Entry{
			ID:        filepath.Join(s.dir, de.Name()),
			Name:      name,
			Size:      int(info.Size()),
			UpdatedAt: info.ModTime(),
		})
	}

	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// Delete removes the document stored under name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateArchiveName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Close does nothing for file store.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
