package diag

import (
	"fmt"
	"io"
)

// NewHRF returns a delegate that renders messages in a human-readable
// format, one line per message.
func NewHRF(w io.Writer, forceColor bool) Delegate {
	return &hrfDelegate{w: w, color: forceColor}
}

type hrfDelegate struct {
	w     io.Writer
	color bool
}

func (d *hrfDelegate) Begin() {}

func (d *hrfDelegate) Report(m Message) {
	prefix := string(m.Severity) + ":"
	if d.color {
		c := colorRed
		if m.Severity == Warning {
			c = colorYellow
		}
		prefix = c + prefix + colorReset
	}

	if m.Position == (Position{}) {
		fmt.Fprintf(d.w, "%s %s\n", prefix, m.Text)
		return
	}
	fmt.Fprintf(d.w, "%s %s: %s\n", prefix, m.Position, m.Text)
}

func (d *hrfDelegate) Finish() {}
