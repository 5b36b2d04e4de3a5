package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents a single executing check. It implements the Errorf and
// FailNow methods that the assert and require packages expect, so testify
// assertions can be made against it directly.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	message     string
	data        ldvalue.Value
	errors      []error
}

// Run executes a group of checks and returns the accumulated results. The
// action receives a root Context whose Run method starts each individual
// check; only named checks append result entries.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	func() {
		defer func() {
			// A FailNow panic from a check is recovered inside that check's
			// own run; anything reaching here is a bug in the suite driver.
			if r := recover(); r != nil {
				if _, ok := r.(*Context); !ok {
					panic(r)
				}
			}
		}()
		action(c)
	}()
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("check failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		message := c.message
		if c.failed && message == "" && len(c.errors) > 0 {
			message = c.errors[0].Error()
		}
		result := TestResult{
			TestID:    c.id,
			Errors:    c.errors,
			Message:   message,
			Timestamp: time.Now(),
			Data:      c.data,
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run executes one named check. Exactly one TestResult is appended for it, no
// matter how the check ends, unless the filter excludes it entirely (in which
// case the check does not count as executed).
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	c.env.testLogger.TestFinished(id, c1.failed, c1.message, c1.debugLogger.Output())
}

// Errorf records a check failure. It does not cause an immediate exit; the
// methods in the assert package call this.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

// FailNow stops the check immediately. The methods in the require package
// call this after Errorf.
func (c *Context) FailNow() {
	panic(c)
}

// Pass records the human-readable message for a successful outcome. The most
// recent call wins; checks normally call it once, at the end.
func (c *Context) Pass(format string, args ...interface{}) {
	c.message = fmt.Sprintf(format, args...)
}

// RecordData attaches a compact snapshot of relevant response fields to the
// check's result.
func (c *Context) RecordData(data ldvalue.Value) {
	c.data = data
}

// Debug logs some debug output for the check. The output is passed to the
// test logger when the check finishes.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
