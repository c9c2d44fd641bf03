// emojicodec resolves a compiler invocation into the configuration and
// stage plan the compilation phases run from.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"

	"github.com/Redrield/emojicode/cli"
	"github.com/Redrield/emojicode/pipeline"
)

// Exit statuses follow sysexits where the invocation itself was the
// problem; compilation failures keep the plain status 1.
const (
	statusOK      = 0
	statusUsage   = 64
	statusCrashed = 70
)

func main() {
	initLogging()
	status := run(os.Args[1:])
	glog.Flush()
	os.Exit(status)
}

func run(args []string) (status int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("💣 The compiler crashed due to an internal problem: %v\n", r)
			fmt.Println("Please report this message and the code that you were trying to compile as an issue on GitHub.")
			status = statusCrashed
		}
	}()

	opts, err := cli.Parse(args, cli.SystemEnviron(), os.Stdout, os.Stderr)
	if err != nil {
		var cancel *cli.Cancellation
		if errors.As(err, &cancel) && cancel.Reason == cli.HelpRequested {
			return statusOK
		}
		return statusUsage
	}

	// The phases themselves live in the compiler backend; from here on they
	// receive the options read-only and perform the planned stages in order.
	for i, stage := range pipeline.Plan(opts) {
		glog.V(1).Infof("stage %d: %#v", i+1, stage)
	}
	return statusOK
}

// initLogging readies glog. The compiler's flag surface is fixed, so
// verbosity is an environment knob: EMOJICODE_LOG=2 enables V(2) traces on
// standard error.
func initLogging() {
	flag.CommandLine.Parse(nil)
	flag.Lookup("logtostderr").Value.Set("true")
	if value, ok := os.LookupEnv("EMOJICODE_LOG"); ok {
		if level, err := strconv.Atoi(value); err == nil && level > 0 {
			flag.Lookup("v").Value.Set(strconv.Itoa(level))
		}
	}
}
