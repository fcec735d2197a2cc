package keymap

import (
	"log/slog"
)

// Command turns the current mapping and a grid snapshot into a new mapping.
// Commands never touch the filesystem.
type Command func(current *Mapping, grid Grid) *Mapping

// ResetCommand discards current state and parses defaultText
func ResetCommand(defaultText string) Command {
	return func(_ *Mapping, _ Grid) *Mapping {
		return Parse(defaultText)
	}
}

// SaveCommand replaces current state with whatever the grid holds
func SaveCommand() Command {
	return func(_ *Mapping, grid Grid) *Mapping {
		return grid.Mapping()
	}
}

// SaveHook is called after the mapping file has been written
type SaveHook func(m *Mapping) error

// Editor owns the live mapping and its file
type Editor struct {
	store       *Store
	defaultText string
	mapping     *Mapping
	saved       *Mapping // last mapping read from or written to the file
	hooks       []SaveHook
	logger      *slog.Logger
}

// Option configures an Editor
type Option func(*Editor)

// WithDefault overrides the built-in default layout
func WithDefault(text string) Option {
	return func(e *Editor) { e.defaultText = text }
}

// WithSaveHook registers a hook run after each successful save
func WithSaveHook(hook SaveHook) Option {
	return func(e *Editor) { e.hooks = append(e.hooks, hook) }
}

// WithLogger sets the editor logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// NewEditor loads the initial mapping from store, falling back to the default
// when the file is missing, unreadable or empty. A load error is returned with
// a usable, default-initialised editor so callers can report it and continue.
func NewEditor(store *Store, opts ...Option) (*Editor, error) {
	e := &Editor{
		store:       store,
		defaultText: Default,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}

	loaded, ok, err := store.Load()
	if err != nil {
		e.logger.Warn("mapping load failed, using default", "path", store.Path, "error", err)
	}
	if ok && loaded.Len() > 0 {
		e.mapping = loaded
		e.logger.Debug("mapping loaded", "path", store.Path, "entries", loaded.Len())
	} else {
		e.mapping = Parse(e.defaultText)
		e.logger.Debug("mapping initialised from default", "entries", e.mapping.Len())
	}
	e.saved = e.mapping.Clone()

	return e, err
}

// Mapping returns a copy of the live mapping
func (e *Editor) Mapping() *Mapping {
	return e.mapping.Clone()
}

// Unsaved reports whether grid differs from the mapping last loaded or saved
func (e *Editor) Unsaved(grid Grid) bool {
	return !grid.Mapping().Equal(e.saved)
}

// Grid renders the live mapping as a grid
func (e *Editor) Grid() Grid {
	return GridFromMapping(e.mapping)
}

// Path returns the mapping file path
func (e *Editor) Path() string {
	return e.store.Path
}

// DefaultMapping parses the configured default layout
func (e *Editor) DefaultMapping() *Mapping {
	return Parse(e.defaultText)
}

// Apply runs cmd against the live state and stores the result
func (e *Editor) Apply(cmd Command, grid Grid) *Mapping {
	e.mapping = cmd(e.mapping, grid)
	return e.Mapping()
}

// Reset replaces the live mapping with the default and returns the new grid
func (e *Editor) Reset() Grid {
	e.Apply(ResetCommand(e.defaultText), Grid{})
	e.logger.Info("mapping reset to default", "entries", e.mapping.Len())
	return e.Grid()
}

// Save reads grid into the live mapping and writes it to the file.
// The live mapping is updated even when the write fails.
func (e *Editor) Save(grid Grid) error {
	m := e.Apply(SaveCommand(), grid)
	return e.persist(m)
}

// Replace sets the live mapping directly and writes it to the file
func (e *Editor) Replace(m *Mapping) error {
	e.mapping = m.Clone()
	return e.persist(e.Mapping())
}

func (e *Editor) persist(m *Mapping) error {
	if err := e.store.Save(m); err != nil {
		e.logger.Error("mapping save failed", "path", e.store.Path, "error", err)
		return err
	}
	e.saved = m.Clone()
	e.logger.Info("mapping saved", "path", e.store.Path, "entries", m.Len())

	for _, hook := range e.hooks {
		if err := hook(m); err != nil {
			e.logger.Warn("save hook failed", "error", err)
		}
	}
	return nil
}
