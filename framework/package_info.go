// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of endpoint checks.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Every check that runs appends exactly one result entry,
// regardless of how it ends.
//
// 2. Failures never propagate past the check boundary: assertion failures, unexpected
// panics, and early exits via FailNow are all converted into errors on the check's
// result, and the run continues with the next check.
//
// The domain-specific code that knows what is being tested is responsible for providing
// the HTTP client, the checks themselves, and a domain-specific test API on top of the
// test context.
package framework
