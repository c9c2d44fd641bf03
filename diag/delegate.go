// Package diag carries compiler diagnostics to whoever invoked the compiler.
//
// The compilation phases do not print; they hand every message to a Delegate
// chosen from the command line options. Tooling that embeds the compiler can
// substitute its own Delegate to collect messages instead.
package diag

import "fmt"

// Severity classifies a compiler message.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Position locates a message in a source document. The zero value marks a
// message without source attribution, e.g. a missing package.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Message is a single diagnostic issued during compilation.
type Message struct {
	Severity Severity
	Position Position
	Text     string
}

// Delegate is notified about compilation events.
type Delegate interface {
	// Begin is called once, before the first phase runs.
	Begin()
	// Report delivers one diagnostic message. Messages arrive in the order
	// the phases emit them.
	Report(m Message)
	// Finish is called once after compilation ends, whether or not it
	// succeeded.
	Finish()
}
