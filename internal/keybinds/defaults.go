package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerGridBindings(r)
	registerCellEditBindings(r)
	registerNoticeBindings(r)
	registerHelpBindings(r)

	return r
}

func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

func registerGridBindings(r *Registry) {
	r.Register(ContextGrid, "q", ActionQuit)

	r.RegisterMultiple(ContextGrid, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextGrid, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextGrid, []string{"left", "h"}, ActionNavigateLeft)
	r.RegisterMultiple(ContextGrid, []string{"right", "l"}, ActionNavigateRight)
	r.Register(ContextGrid, "pgup", ActionPageUp)
	r.Register(ContextGrid, "pgdown", ActionPageDown)
	r.RegisterMultiple(ContextGrid, []string{"gg", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextGrid, []string{"G", "end"}, ActionGoToBottom)
	r.Register(ContextGrid, "tab", ActionSwitchFocus)
	r.Register(ContextGrid, "shift+tab", ActionSwitchFocusRev)

	r.Register(ContextGrid, "enter", ActionActivate)
	r.Register(ContextGrid, "e", ActionEditCell)
	r.Register(ContextGrid, "x", ActionClearCell)
	r.Register(ContextGrid, "a", ActionAddRow)
	r.Register(ContextGrid, "d", ActionDeleteRow)
	r.RegisterMultiple(ContextGrid, []string{"s", "ctrl+s"}, ActionSave)
	r.Register(ContextGrid, "R", ActionReset)
	r.Register(ContextGrid, "y", ActionCopyMapping)
	r.Register(ContextGrid, "?", ActionOpenHelp)
}

func registerCellEditBindings(r *Registry) {
	r.Register(ContextCellEdit, "enter", ActionTextSubmit)
	r.Register(ContextCellEdit, "tab", ActionTextNext)
	r.Register(ContextCellEdit, "esc", ActionTextCancel)
	r.RegisterMultiple(ContextCellEdit, []string{"ctrl+v", "shift+insert", "super+v"}, ActionTextPaste)
}

func registerNoticeBindings(r *Registry) {
	r.RegisterMultiple(ContextNotice, []string{"esc", "enter", "q"}, ActionCloseModal)
}

func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionNavigateDown)
	r.RegisterMultiple(ContextHelp, []string{"gg", "home"}, ActionGoToTop)
	r.RegisterMultiple(ContextHelp, []string{"G", "end"}, ActionGoToBottom)
}
