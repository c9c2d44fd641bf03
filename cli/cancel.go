package cli

// CancelReason states why Options construction stopped before any
// compilation work began.
type CancelReason int

const (
	// HelpRequested means the user asked for the help menu.
	HelpRequested CancelReason = iota
	// ParseError means the command line could not be parsed, e.g. an
	// unknown flag or a flag missing its value.
	ParseError
	// ValidationError means the command line parsed but was not a valid
	// invocation, e.g. the input file was missing.
	ValidationError
)

// Cancellation is returned by Parse when the invocation requires no
// compilation. Parse has already printed everything the user should see;
// callers inspect Reason to choose an exit status.
type Cancellation struct {
	Reason  CancelReason
	Message string
}

func (c *Cancellation) Error() string {
	if len(c.Message) > 0 {
		return c.Message
	}
	return "compilation cancelled"
}
