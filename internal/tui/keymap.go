package tui

// Key binding constants used in handleKey.
const (
	KeyCtrlC     = "ctrl+c"
	KeyEsc       = "esc"
	KeyEnter     = "enter"
	KeyTab       = "tab"
	KeyBackspace = "backspace"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyCycleType = "ctrl+t"

	KeyBack          = "q"
	KeyAssign        = "a"
	KeyRemoveAssign  = "r"
	KeyNewComment    = "n"
	KeyEditComment   = "e"
	KeyDeleteComment = "d"
	KeyConfirmYes    = "y"
	KeyConfirmNo     = "n"
)
