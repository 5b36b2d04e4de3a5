package apitests

import (
	"net/url"

	"github.com/questboard/api-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// T represents a check in the API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, and with some extra
// features such as debug logging that are convenient for our use case. Those
// features are provided by our lower-level framework package.
//
// It also provides functionality that is specific to exercising the API under
// test: every T shares the harness's APIClient, and has methods for issuing
// requests through it with common assertions built in, to reduce the amount
// of boilerplate logic in checks.
//
// To make test assertions, you can use the assert and require packages,
// passing the *T as if it were a *testing.T.
type T struct {
	context  *framework.Context
	client   *APIClient
	identity Identity
}

func newTestScope(context *framework.Context, client *APIClient, identity Identity) *T {
	return &T{
		context:  context,
		client:   client,
		identity: identity,
	}
}

// Errorf is called by assertions to log a check failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a check should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a named check. The specified function receives a new T sharing the
// same API session.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.client, t.identity))
	})
}

// Debug logs some debug output for the check. The output will be passed to
// the test logger at the end of the check.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Pass records the success message that will appear on this check's result.
func (t *T) Pass(format string, args ...interface{}) {
	t.context.Pass(format, args...)
}

// RecordData attaches a snapshot of relevant response fields to this check's
// result.
func (t *T) RecordData(data ldvalue.Value) {
	t.context.RecordData(data)
}

// RequireToken fails the check immediately, without issuing any request, if
// the authentication check has not stored a token yet.
func (t *T) RequireToken() {
	if !t.client.HasToken() {
		t.Errorf("No auth token available")
		t.FailNow()
	}
}

// Get issues a GET request, failing the check immediately on a transport
// error (connection failure, timeout, DNS failure).
func (t *T) Get(path string, params url.Values) *APIResponse {
	describe := path
	if len(params) != 0 {
		describe += "?" + params.Encode()
	}
	t.Debug("GET %s", describe)
	resp, err := t.client.Get(path, params)
	if err != nil {
		t.Errorf("Request failed: %s", err)
		t.FailNow()
	}
	t.Debug("GET %s -> %d (%d bytes)", describe, resp.Status, len(resp.Body))
	return resp
}

// GetJSON issues a GET request and requires a 200 status and a well-formed
// JSON body, failing the check immediately otherwise.
func (t *T) GetJSON(path string, params url.Values) ldvalue.Value {
	resp := t.Get(path, params)
	t.RequireStatusOK(resp, "GET "+path)
	value, err := resp.JSONValue()
	if err != nil {
		t.Errorf("GET %s: %s", path, err)
		t.FailNow()
	}
	return value
}

// RequireStatusOK fails the check immediately unless the response status is
// 200, reporting the status and an excerpt of the body.
func (t *T) RequireStatusOK(resp *APIResponse, describe string) {
	if resp.Status != 200 {
		t.Errorf("%s: status code %d: %s", describe, resp.Status, resp.BodyExcerpt())
		t.FailNow()
	}
}
