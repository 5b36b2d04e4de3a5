package framework

// TestLogger receives status notifications as checks run. Implementations
// decide how much of this to surface; the command-line tool uses a console
// implementation, and a null implementation is substituted when none is given.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, message string, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                                {}
func (n nullTestLogger) TestError(TestID, error)                           {}
func (n nullTestLogger) TestFinished(TestID, bool, string, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                        {}
