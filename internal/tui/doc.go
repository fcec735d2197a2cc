/*
Package tui implements the terminal editor for the keyboard mapping.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: grid, focus, notice and cell editing state
  - Update: processes key and window messages
  - View: renders the grid, the Save / Reset buttons and modals

# Key Components

  - model.go: Core state and initialization
  - keys.go: Keybind routing and the save / reset actions
  - cell_editor.go: Editing a single grid cell
  - render.go: Grid, buttons and status bar
  - modals.go: Notices and the help viewer

# Grid and Mapping

The grid is edited freely and only becomes the mapping on save. Rows with an
absent cell are skipped when the grid is read back. Reset replaces both the
grid and the live mapping with the default layout without writing the file.
Load and save failures are shown as blocking notices and never end the
program.
*/
package tui
