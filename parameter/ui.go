package parameter

// Layout
const (
	// HUDRows is reserved at the bottom of the screen for status and key hints
	HUDRows = 2
)

// Form
const (
	// FormWidth is the inner width of the parameter dialog
	FormWidth = 44
	// ChanceStep/ChanceStepLarge are slider increments in percent
	ChanceStep      = 1
	ChanceStepLarge = 10
	// FieldMaxLen bounds the digits accepted by count fields
	FieldMaxLen = 6
)

// Status text
const (
	StatusPaused = "[PAUSED]"
	StatusKeys   = "←/→:orbit  ↑/↓:zoom  space:pause  q:quit"
)
