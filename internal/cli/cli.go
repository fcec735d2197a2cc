package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/studiowebux/fa2en/internal/history"
	"github.com/studiowebux/fa2en/internal/keymap"
)

// ErrNoHistory is returned by history commands when the database is unavailable
var ErrNoHistory = errors.New("save history is not available")

// Show prints the mapping as a numbered two-column table
func Show(w io.Writer, m *keymap.Mapping) error {
	if m.Len() == 0 {
		_, err := fmt.Fprintln(w, "No entries.")
		return err
	}

	rows := make([][]string, 0, m.Len())
	for i, e := range m.Entries() {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), e.From, e.To})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Persian", "English").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// Export writes the mapping in the given format (raw, yaml or json)
func Export(w io.Writer, m *keymap.Mapping, format string) error {
	data, err := keymap.Encode(m, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// FormatForPath picks the import format from a file extension
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return keymap.FormatYAML
	default:
		return keymap.FormatRaw
	}
}

// Import replaces the live mapping with the content of path and saves it.
// An empty format is inferred from the file extension.
func Import(editor *keymap.Editor, path, format string) (*keymap.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if format == "" {
		format = FormatForPath(path)
	}
	m, err := keymap.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if m.Len() == 0 {
		return nil, fmt.Errorf("%s contains no mapping entries", path)
	}

	if err := editor.Replace(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateEntry rejects text the file format cannot represent
func ValidateEntry(from, to string) error {
	if strings.Contains(from, keymap.EntrySeparator) || strings.Contains(from, keymap.PairSeparator) {
		return fmt.Errorf("persian side %q must not contain %q or %q", from, keymap.EntrySeparator, keymap.PairSeparator)
	}
	if strings.Contains(to, keymap.EntrySeparator) {
		return fmt.Errorf("english side %q must not contain %q", to, keymap.EntrySeparator)
	}
	return nil
}

// Set updates or appends one entry and saves
func Set(editor *keymap.Editor, from, to string) error {
	if err := ValidateEntry(from, to); err != nil {
		return err
	}
	m := editor.Mapping()
	m.Set(from, to)
	return editor.Replace(m)
}

// Reset writes the default mapping through the editor's reset and save commands
func Reset(editor *keymap.Editor) (*keymap.Mapping, error) {
	grid := editor.Reset()
	if err := editor.Save(grid); err != nil {
		return nil, err
	}
	return editor.Mapping(), nil
}

// Diff prints the changes from base to target, one per line
func Diff(w io.Writer, base, target *keymap.Mapping) error {
	changes := keymap.Diff(base, target)
	if len(changes) == 0 {
		_, err := fmt.Fprintln(w, "No differences.")
		return err
	}

	for _, c := range changes {
		var line string
		switch c.Kind {
		case "added":
			line = fmt.Sprintf("+ %s:%s", c.From, c.New)
		case "removed":
			line = fmt.Sprintf("- %s:%s", c.From, c.Old)
		default:
			line = fmt.Sprintf("~ %s:%s -> %s", c.From, c.Old, c.New)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// History prints the most recent snapshots
func History(w io.Writer, mgr *history.Manager, limit int) error {
	if mgr == nil {
		return ErrNoHistory
	}

	snapshots, err := mgr.List(limit)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		_, err := fmt.Fprintln(w, "No saved snapshots.")
		return err
	}

	for _, s := range snapshots {
		if _, err := fmt.Fprintln(w, s.Summary()); err != nil {
			return err
		}
	}
	return nil
}

// Restore writes snapshot id back to the mapping file
func Restore(editor *keymap.Editor, mgr *history.Manager, id int64) (history.Snapshot, error) {
	if mgr == nil {
		return history.Snapshot{}, ErrNoHistory
	}

	snap, err := mgr.Get(id)
	if err != nil {
		return history.Snapshot{}, err
	}
	if err := editor.Replace(snap.Mapping()); err != nil {
		return history.Snapshot{}, err
	}
	return snap, nil
}
