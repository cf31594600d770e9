package terminal

// Command action requested by a key press.
type Command int

const (
	// CommandNone key without meaning.
	CommandNone Command = iota
	// CommandQuit stop the dashboard.
	CommandQuit
	// CommandRefresh refresh now.
	CommandRefresh
	// CommandInterrupt Ctrl-C, delivered as a byte in raw mode.
	CommandInterrupt
)

const ctrlC = 0x03

// ParseKey maps a key press to a command, case-insensitive.
func ParseKey(b byte) Command {
	switch b {
	case 'q', 'Q':
		return CommandQuit
	case 'r', 'R':
		return CommandRefresh
	case ctrlC:
		return CommandInterrupt
	default:
		return CommandNone
	}
}

// String returns the string representation.
func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandRefresh:
		return "refresh"
	case CommandInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}
