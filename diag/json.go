package diag

import (
	"encoding/json"
	"io"
)

// NewJSON returns a delegate that streams all messages as a single JSON
// array. Editors and build tools drive the compiler with --json and read
// this from standard output.
func NewJSON(w io.Writer) Delegate {
	return &jsonDelegate{w: w}
}

type jsonDelegate struct {
	w     io.Writer
	wrote bool
}

type jsonMessage struct {
	Type    string `json:"type"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Message string `json:"message"`
}

func (d *jsonDelegate) Begin() {
	io.WriteString(d.w, "[")
}

func (d *jsonDelegate) Report(m Message) {
	data, err := json.Marshal(jsonMessage{
		Type:    string(m.Severity),
		File:    m.Position.File,
		Line:    m.Position.Line,
		Column:  m.Position.Column,
		Message: m.Text,
	})
	if err != nil {
		return
	}

	if d.wrote {
		io.WriteString(d.w, ",")
	}
	d.wrote = true
	d.w.Write(data)
}

func (d *jsonDelegate) Finish() {
	io.WriteString(d.w, "]\n")
}
