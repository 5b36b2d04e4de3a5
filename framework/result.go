package framework

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var passGlyph = color.New(color.FgGreen).Sprint("✅")
var failGlyph = color.New(color.FgRed).Sprint("❌")

// Results is the accumulated outcome of a test run. Tests holds one entry per
// check that was executed, in execution order; Failures holds the subset that
// failed, in the same order.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult describes the outcome of a single check. It is created once, when
// the check finishes, and never modified afterward.
type TestResult struct {
	TestID    TestID
	Errors    []error
	Message   string
	Timestamp time.Time
	Data      ldvalue.Value
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) PassedCount() int {
	return len(r.Tests) - len(r.Failures)
}

func (r TestResult) Failed() bool {
	return len(r.Errors) != 0
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults prints the final tally, then replays the result log in order,
// writing one entry per check with its status glyph, name, message, and
// response snapshot if one was recorded. Read-only: it can be called any
// number of times with the same Results.
func PrintResults(results Results) {
	fmt.Printf("📊 Test results: %d/%d checks passed\n", results.PassedCount(), len(results.Tests))
	if results.OK() {
		color.Green("🎉 All regression checks PASSED")
	} else {
		color.Red("⚠️  %d check(s) FAILED", len(results.Failures))
	}

	fmt.Println()
	fmt.Println("📋 Detailed check summary:")
	fmt.Println(strings.Repeat("-", 40))
	for _, res := range results.Tests {
		glyph := passGlyph
		if res.Failed() {
			glyph = failGlyph
		}
		fmt.Printf("%s %s\n", glyph, res.TestID)
		if res.Message != "" {
			fmt.Printf("   %s\n", res.Message)
		}
		for _, err := range res.Errors {
			fmt.Printf("   %s\n", err)
		}
		if !res.Data.IsNull() {
			fmt.Printf("   Data: %s\n", res.Data.JSONString())
		}
		fmt.Println()
	}
}
