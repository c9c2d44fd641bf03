package diag

// ANSI escapes for the human-readable delegate. The compiler colors only
// when asked to (--color); it never sniffs the terminal.
const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31;1m"
	colorYellow = "\x1b[33;1m"
)
