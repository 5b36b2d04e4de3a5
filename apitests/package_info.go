// Package apitests contains the API regression checks themselves and their
// supporting API.
//
// Test harness infrastructure that is not specific to this API, such as the
// result log and the ability to run named checks with captured debug output,
// is in the lower-level framework package.
package apitests
