package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/questboard/api-contract-tests/framework"

	"github.com/fatih/color"
)

var passPrefix = color.New(color.FgGreen).Sprint("✅ PASS")
var failPrefix = color.New(color.FgRed).Sprint("❌ FAIL")

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, message string,
	debugOutput framework.CapturedOutput) {
	if failed {
		fmt.Printf("%s %s\n", failPrefix, id)
	} else if message != "" {
		fmt.Printf("%s %s: %s\n", passPrefix, id, message)
	} else {
		fmt.Printf("%s %s\n", passPrefix, id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("  SKIPPED: %s\n", id)
	} else {
		fmt.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}
