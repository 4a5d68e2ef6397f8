package ui

// AppMode represents the top-level screen.
type AppMode int

const (
	ModeHome AppMode = iota
	ModeHistory
)

func (m AppMode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	case ModeHistory:
		return "History"
	default:
		return "Unknown"
	}
}
