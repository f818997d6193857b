package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PathEnv overrides the content file location.
const PathEnv = "FOLIO_CONTENT"

// Store loads content from an optional override file.
// Layout: a single YAML document; an empty path means the embedded default.
type Store struct {
	path string
}

// NewStore creates a store reading path, or the file named by FOLIO_CONTENT when
// it is set. A leading ~ is expanded to the user's home.
func NewStore(path string) (*Store, error) {
	if env := os.Getenv(PathEnv); env != "" {
		path = env
	}
	if path == "" {
		return &Store{}, nil
	}
	if len(path) > 1 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[2:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("content path %q: %w", path, err)
	}
	return &Store{path: abs}, nil
}

// Path returns the override file, or "" when the store serves the default.
func (s *Store) Path() string {
	return s.path
}

// Load reads the override file. A missing file yields the embedded default;
// an unreadable or invalid one is an error.
func (s *Store) Load() (*Content, error) {
	if s.path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return c, nil
}
