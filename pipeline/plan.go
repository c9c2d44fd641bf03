// Package pipeline turns resolved options into the concrete work of one
// compiler run: the ordered stage plan and the toolchain commands the
// packaging stages hand to an executor. Nothing in this package runs a
// stage or touches the file system; it only computes.
package pipeline

import (
	"github.com/golang/glog"

	"github.com/Redrield/emojicode/cli"
)

// Stage is one step of a compilation. Stages carry everything the phase
// that performs them needs; they never consult the options again.
type Stage interface {
	stage()
}

// Parse reads the main document and every document it includes.
type Parse struct{}

// Format rewrites the source in canonical form.
type Format struct{}

// Analyse performs semantic analysis on the parsed package.
type Analyse struct {
	Standalone bool
}

// PrintInterface writes the package interface.
type PrintInterface struct {
	Path string
}

// Generate lowers the analysed package to machine-level IR.
type Generate struct {
	Optimize bool
	Target   string
}

// EmitIR writes the textual IR.
type EmitIR struct {
	Path string
}

// EmitObject writes the object file.
type EmitObject struct {
	Path string
}

// Link links the object file into an executable.
type Link struct {
	ObjectPath string
	OutPath    string
	Linker     string
}

// Archive packs the object file into a static library.
type Archive struct {
	ObjectPath string
	OutPath    string
	Archiver   string
}

// Report writes the JSON documentation report.
type Report struct {
	Path string
}

func (Parse) stage()          {}
func (Format) stage()         {}
func (Analyse) stage()        {}
func (PrintInterface) stage() {}
func (Generate) stage()       {}
func (EmitIR) stage()         {}
func (EmitObject) stage()     {}
func (Link) stage()           {}
func (Archive) stage()        {}
func (Report) stage()         {}

// Plan assembles the stage sequence for one compiler run. Emitting IR and
// emitting an object file are alternatives; packing appends the link stage
// for a standalone program and the archive stage for a library.
func Plan(opts *cli.Options) []Stage {
	stages := []Stage{Parse{}}
	if opts.Prettyprint() {
		stages = append(stages, Format{})
	}
	stages = append(stages, Analyse{Standalone: opts.Standalone()})
	if path := opts.InterfaceFile(); len(path) > 0 {
		stages = append(stages, PrintInterface{Path: path})
	}
	stages = append(stages, Generate{Optimize: opts.Optimize(), Target: opts.Target()})
	if path := opts.LLVMIRPath(); len(path) > 0 {
		stages = append(stages, EmitIR{Path: path})
	} else {
		stages = append(stages, EmitObject{Path: opts.ObjectPath()})
	}
	if opts.Pack() {
		if opts.Standalone() {
			stages = append(stages, Link{
				ObjectPath: opts.ObjectPath(),
				OutPath:    opts.OutPath(),
				Linker:     opts.Linker(),
			})
		} else {
			stages = append(stages, Archive{
				ObjectPath: opts.ObjectPath(),
				OutPath:    opts.OutPath(),
				Archiver:   opts.Ar(),
			})
		}
	}
	if opts.ShouldReport() {
		stages = append(stages, Report{Path: opts.ReportPath()})
	}
	glog.V(1).Infof("planned %d stages for %s", len(stages), opts.MainFile())
	return stages
}
