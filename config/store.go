package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default scope file locations.
const (
	// LocalConfigName is the local scope filename, relative to the git root.
	LocalConfigName = ".gas.yaml"

	// GlobalConfigDir is the directory under ~/.config/ for global config.
	GlobalConfigDir = "gas"

	// GlobalConfigFile is the global scope filename.
	GlobalConfigFile = "config.yml"
)

// Sections is the raw persisted shape of a scope file: section name to
// field name to raw value.
type Sections map[string]map[string]any

// Store reads and writes per-scope configuration files. It keeps no
// in-memory state beyond the resolved paths.
type Store struct {
	paths map[Scope]string
}

// NewStore creates a store with the default scope locations. localDir
// is the directory holding the local scope file, normally the git root
// (use "." outside a repository). The global path is empty if the user
// home directory cannot be determined, in which case the global scope
// resolves as an empty mapping and cannot be written.
func NewStore(localDir string) *Store {
	paths := map[Scope]string{
		ScopeLocal: filepath.Join(localDir, LocalConfigName),
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths[ScopeGlobal] = filepath.Join(home, ".config", GlobalConfigDir, GlobalConfigFile)
	}
	return &Store{paths: paths}
}

// NewStoreWithPaths creates a store with explicit global and local paths.
// This is useful for testing or when paths are known ahead of time.
func NewStoreWithPaths(globalPath, localPath string) *Store {
	return &Store{paths: map[Scope]string{
		ScopeGlobal: globalPath,
		ScopeLocal:  localPath,
	}}
}

// Path returns the filesystem path for a scope, or empty if the scope
// has no configured location.
func (s *Store) Path(scope Scope) string {
	return s.paths[scope]
}

// Load returns the scope's raw section mapping. A missing file (or a
// scope with no configured path) yields an empty mapping, never an
// error. An unreadable or malformed file yields a StorageError.
func (s *Store) Load(scope Scope) (Sections, error) {
	path := s.paths[scope]
	if path == "" {
		return Sections{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Sections{}, nil
		}
		return nil, &StorageError{Op: "load", Scope: scope, Path: path, Err: err}
	}

	var sections Sections
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, &StorageError{Op: "load", Scope: scope, Path: path, Err: err}
	}
	if sections == nil {
		sections = Sections{}
	}
	return sections, nil
}

// Save writes the mapping in full to the scope's file, creating any
// missing parent directories and overwriting prior content.
func (s *Store) Save(scope Scope, sections Sections) error {
	path := s.paths[scope]
	if path == "" {
		return &StorageError{Op: "save", Scope: scope, Path: "", Err: os.ErrNotExist}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return &StorageError{Op: "save", Scope: scope, Path: path, Err: err}
	}

	data, err := yaml.Marshal(sections)
	if err != nil {
		return &StorageError{Op: "save", Scope: scope, Path: path, Err: err}
	}

	// Local config is shared through the repository and should be
	// readable; global config is user-private.
	perm := os.FileMode(0o644)
	if scope == ScopeGlobal {
		perm = 0o600
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return &StorageError{Op: "save", Scope: scope, Path: path, Err: err}
	}
	return nil
}
