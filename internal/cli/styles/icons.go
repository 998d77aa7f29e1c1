package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconFile     = "\uf15b" // file

	// UI
	IconCursor = "\uf054" // chevron-right

	// Layout
	IconWindow   = "\uf2d2" // window
	IconFloating = "\uf24d" // clone/stack
	IconTab      = "\uf0ce" // table
	IconSplit    = "\uf0db" // columns
	IconTree     = "\uf1bb" // tree
	IconPin      = "\uf08d" // thumb-tack
	IconStar     = "\uf005" // star (central widget)
	IconClock    = "\uf017" // clock
)
