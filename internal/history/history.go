package history

import (
	"fmt"
	"time"

	"github.com/studiowebux/fa2en/internal/keymap"
)

// Sources recorded with each snapshot
const (
	SourceTUI     = "tui"
	SourceCLI     = "cli"
	SourceRestore = "restore"
)

// Snapshot is one saved version of the mapping file
type Snapshot struct {
	ID      int64
	SavedAt time.Time
	Path    string
	Content string
	Entries int
	Source  string
}

// Mapping parses the snapshot content
func (s Snapshot) Mapping() *keymap.Mapping {
	return keymap.Parse(s.Content)
}

// Summary is a one-line description for listings
func (s Snapshot) Summary() string {
	return fmt.Sprintf("#%d  %s  %-7s  %d entries",
		s.ID, s.SavedAt.Local().Format("2006-01-02 15:04:05"), s.Source, s.Entries)
}

// Hook returns a keymap.SaveHook recording every successful save of path
func (m *Manager) Hook(path, source string) keymap.SaveHook {
	return func(mapping *keymap.Mapping) error {
		_, err := m.Record(path, source, mapping)
		return err
	}
}
