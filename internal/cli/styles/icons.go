// Package styles provides reusable lipgloss-based CLI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconStack    = "\uf5fd" // layer group
	IconRestore  = "\uf0e2" // undo
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconTrash    = "\uf1f8" // trash
	IconPencil   = "\uf040" // pencil
	IconBell     = "\uf0f3" // bell
	IconDatabase = "\uf1c0" // database
	IconVersion  = "\uf02b" // tag
	IconGo       = "\ue627" // go gopher
)
