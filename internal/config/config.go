package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// MappingFileName is the mapping file, stored directly in the home directory
	MappingFileName = ".fa2en_config"
	// DataDirName holds everything else the editor keeps
	DataDirName = ".fa2en"

	// EnvMappingFile overrides the mapping file path
	EnvMappingFile = "FA2EN_CONFIG"
)

// Config holds every path the editor reads or writes
type Config struct {
	// HomeDir is the invoking user's home directory
	HomeDir string

	// MappingFile is the one-line key mapping file (~/.fa2en_config)
	MappingFile string

	// DataDir is the editor's own directory (~/.fa2en)
	DataDir string

	// HistoryDB is the SQLite database of saved snapshots
	HistoryDB string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// LogFile is used when debug logging is enabled
	LogFile string
}

// Load resolves paths relative to the user's home directory.
// FA2EN_CONFIG replaces the mapping file path when set.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	cfg := ForHome(homeDir)
	if override := os.Getenv(EnvMappingFile); override != "" {
		path, err := ExpandPath(override)
		if err != nil {
			return nil, err
		}
		cfg.MappingFile = path
	}

	return cfg, nil
}

// ForHome builds the default layout under homeDir
func ForHome(homeDir string) *Config {
	dataDir := filepath.Join(homeDir, DataDirName)
	return &Config{
		HomeDir:      homeDir,
		MappingFile:  filepath.Join(homeDir, MappingFileName),
		DataDir:      dataDir,
		HistoryDB:    filepath.Join(dataDir, "history.db"),
		KeybindsFile: filepath.Join(dataDir, "keybinds.yaml"),
		LogFile:      filepath.Join(dataDir, "fa2en.log"),
	}
}

// EnsureDataDir creates the data directory if it doesn't exist
func (c *Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.DataDir, err)
	}
	return nil
}

// ExpandPath expands a leading ~/ to the home directory
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path[1:], "/")), nil
	}
	return path, nil
}
