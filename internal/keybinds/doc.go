/*
Package keybinds maps terminal keys to editor actions.

# Contexts

  - global: available everywhere (ctrl+c)
  - grid: the mapping grid and the Save / Reset buttons
  - cell_edit: typing into a single grid cell
  - notice: error and success notices
  - help: the help viewer

A key is looked up in the active context first, then in global.

# Configuration File Format

Overrides live in ~/.fa2en/keybinds.yaml. Each section maps an action to a
comma-separated key list. Configuring an action replaces all of its default
keys in that section:

	version: "1"
	grid:
	  save: "s,ctrl+s"
	  reset: "ctrl+r"
	  navigate_down: "down,j,n"
	cell_edit:
	  text_next: "tab"

# Multi-Key Sequences

Two-character keys such as "gg" are sequences. The first key is held as
pending until the second arrives.

# Validation

The validator reports keys given to several actions in one section, unknown
actions, required actions left without a key, rebinding of ctrl+c, and
context keys that shadow a global key.

# Example Usage

	registry, err := keybinds.LoadOrDefault(cfg.KeybindsFile)
	if err != nil {
		return err
	}

	if action, ok := registry.Match(keybinds.ContextGrid, msg.String()); ok {
		// handle action
	}
*/
package keybinds
