package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	ContextGlobal   Context = "global"    // Available everywhere
	ContextGrid     Context = "grid"      // Mapping grid and its buttons
	ContextCellEdit Context = "cell_edit" // Editing a single grid cell
	ContextNotice   Context = "notice"    // Error/success notices
	ContextHelp     Context = "help"      // Help viewer
)

const (
	ActionQuit      Action = "quit"
	ActionQuitForce Action = "quit_force"

	// Navigation
	ActionNavigateUp     Action = "navigate_up"
	ActionNavigateDown   Action = "navigate_down"
	ActionNavigateLeft   Action = "navigate_left"
	ActionNavigateRight  Action = "navigate_right"
	ActionPageUp         Action = "page_up"
	ActionPageDown       Action = "page_down"
	ActionGoToTop        Action = "go_to_top"
	ActionGoToBottom     Action = "go_to_bottom"
	ActionSwitchFocus    Action = "switch_focus"     // grid -> Save -> Reset -> grid
	ActionSwitchFocusRev Action = "switch_focus_rev" // reverse of switch_focus

	// Grid
	ActionActivate    Action = "activate"     // edit focused cell or press focused button
	ActionEditCell    Action = "edit_cell"    // edit focused cell
	ActionClearCell   Action = "clear_cell"   // make focused cell absent
	ActionAddRow      Action = "add_row"      // append an empty row
	ActionDeleteRow   Action = "delete_row"   // remove focused row from the grid
	ActionSave        Action = "save"         // Save Mapping
	ActionReset       Action = "reset"        // Reset to Default
	ActionCopyMapping Action = "copy_mapping" // copy serialized grid to clipboard
	ActionOpenHelp    Action = "open_help"

	// Cell editing
	ActionTextSubmit Action = "text_submit"
	ActionTextNext   Action = "text_next" // submit and move to the other column
	ActionTextCancel Action = "text_cancel"
	ActionTextPaste  Action = "text_paste"

	// Notices and help
	ActionCloseModal Action = "close_modal"
)

// KnownActions lists every action the editor understands
var KnownActions = map[Action]bool{
	ActionQuit:           true,
	ActionQuitForce:      true,
	ActionNavigateUp:     true,
	ActionNavigateDown:   true,
	ActionNavigateLeft:   true,
	ActionNavigateRight:  true,
	ActionPageUp:         true,
	ActionPageDown:       true,
	ActionGoToTop:        true,
	ActionGoToBottom:     true,
	ActionSwitchFocus:    true,
	ActionSwitchFocusRev: true,
	ActionActivate:       true,
	ActionEditCell:       true,
	ActionClearCell:      true,
	ActionAddRow:         true,
	ActionDeleteRow:      true,
	ActionSave:           true,
	ActionReset:          true,
	ActionCopyMapping:    true,
	ActionOpenHelp:       true,
	ActionTextSubmit:     true,
	ActionTextNext:       true,
	ActionTextCancel:     true,
	ActionTextPaste:      true,
	ActionCloseModal:     true,
}

// AllContexts lists the contexts in display order
var AllContexts = []Context{
	ContextGlobal,
	ContextGrid,
	ContextCellEdit,
	ContextNotice,
	ContextHelp,
}

// Description returns a short help text for an action
func (a Action) Description() string {
	switch a {
	case ActionQuit:
		return "Quit"
	case ActionQuitForce:
		return "Force quit"
	case ActionNavigateUp:
		return "Move up"
	case ActionNavigateDown:
		return "Move down"
	case ActionNavigateLeft:
		return "Persian column"
	case ActionNavigateRight:
		return "English column"
	case ActionPageUp:
		return "Page up"
	case ActionPageDown:
		return "Page down"
	case ActionGoToTop:
		return "First row"
	case ActionGoToBottom:
		return "Last row"
	case ActionSwitchFocus:
		return "Next control"
	case ActionSwitchFocusRev:
		return "Previous control"
	case ActionActivate:
		return "Edit cell / press button"
	case ActionEditCell:
		return "Edit cell"
	case ActionClearCell:
		return "Clear cell"
	case ActionAddRow:
		return "Add row"
	case ActionDeleteRow:
		return "Delete row"
	case ActionSave:
		return "Save Mapping"
	case ActionReset:
		return "Reset to Default"
	case ActionCopyMapping:
		return "Copy mapping string"
	case ActionOpenHelp:
		return "Help"
	case ActionTextSubmit:
		return "Apply edit"
	case ActionTextNext:
		return "Apply and edit other column"
	case ActionTextCancel:
		return "Cancel edit"
	case ActionTextPaste:
		return "Paste"
	case ActionCloseModal:
		return "Close"
	}
	return string(a)
}
