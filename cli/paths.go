package cli

import (
	"strings"

	"github.com/Redrield/emojicode/dist"
)

// Derived paths are plain text manipulation on the main file path. They must
// come out exactly as the user wrote the input, so path/filepath is off
// limits here: filepath.Dir turns "b.emojic" into "." and filepath.Join
// cleans separators, both of which would change the artifact locations.

// parentDir returns the directory part of path, without a trailing
// separator. A bare file name has an empty parent.
func parentDir(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	for i > 0 && path[i-1] == '/' {
		i--
	}
	if i == 0 {
		return "/"
	}
	return path[:i]
}

// stem returns the final component of path with its final extension
// removed. A name whose only dot leads it, like ".emojic", has no extension
// to remove.
func stem(path string) string {
	base := path[strings.LastIndexByte(path, '/')+1:]
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// joinDir prepends dir to name. No separator is inserted when dir is empty,
// keeping derived paths relative to where the main file was named.
func joinDir(dir, name string) string {
	if len(dir) == 0 {
		return name
	}
	return dir + "/" + name
}

// LibraryFileName returns the file name of the static library for a package,
// e.g. "libfiles.a" for the files package.
func LibraryFileName(packageName string) string {
	return "lib" + packageName + ".a"
}

// configureOutPath fills in every artifact path not given explicitly on the
// command line. Called exactly once, after all flags are known.
func (o *Options) configureOutPath() {
	dir := parentDir(o.mainFile)

	if o.pack && len(o.outPath) == 0 {
		if o.Standalone() {
			o.outPath = o.mainFile
			// Strip the extension if there is one
			if s := stem(o.mainFile); len(s) > 0 {
				o.outPath = joinDir(dir, s)
			}
		} else {
			o.outPath = joinDir(dir, LibraryFileName(o.mainPackageName))
		}
	}

	if !o.Standalone() && len(o.interfaceFile) == 0 {
		o.interfaceFile = joinDir(dir, dist.Default().InterfaceFile)
	}

	if o.report {
		o.reportPath = joinDir(dir, dist.Default().ReportFile)
	}
}

// ObjectPath returns the path the object file is written to. An explicit
// --out path names the object file itself when the compiler stops before
// packaging; otherwise the object file sits next to the main file.
func (o *Options) ObjectPath() string {
	if !o.pack && len(o.outPath) > 0 {
		return o.outPath
	}
	return joinDir(parentDir(o.mainFile), stem(o.mainFile)+".o")
}

// LLVMIRPath returns the path the textual IR is written to, or "" when IR
// emission was not requested.
func (o *Options) LLVMIRPath() string {
	if !o.emitLLVM {
		return ""
	}
	return joinDir(parentDir(o.mainFile), stem(o.mainFile)+".ll")
}
