package keymap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// FilePermissions is the mode used when the mapping file is created
const FilePermissions = 0644

// LoadError is returned when an existing mapping file cannot be read
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError is returned when the mapping file cannot be written
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save config %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// ErrNotText is wrapped by LoadError when the file is not valid UTF-8
var ErrNotText = errors.New("file content is not valid UTF-8 text")

// LoadFile reads and parses the mapping file at path.
// A missing file returns ok=false and no error.
func LoadFile(path string) (m *Mapping, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &LoadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		return nil, false, &LoadError{Path: path, Err: ErrNotText}
	}

	return Parse(strings.TrimSpace(string(data))), true, nil
}

// SaveFile overwrites the file at path with the serialized mapping
func SaveFile(path string, m *Mapping) error {
	if err := os.WriteFile(path, []byte(Serialize(m)), FilePermissions); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// Store persists a mapping to a single file
type Store struct {
	Path string
}

// NewStore creates a store for the file at path
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the mapping file, see LoadFile
func (s *Store) Load() (*Mapping, bool, error) {
	return LoadFile(s.Path)
}

// Save writes the mapping file, see SaveFile
func (s *Store) Save(m *Mapping) error {
	return SaveFile(s.Path, m)
}
