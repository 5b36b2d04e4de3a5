package apitests

import (
	"net/url"
	"strconv"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const taskListLimit = 5

// DoTasksCheck exercises the task listing endpoint three ways: bare, with a
// limit, and with skip plus limit. The limit call must return no more items
// than it asked for.
func DoTasksCheck(t *T) {
	t.RequireToken()

	data := t.GetJSON("/api/tasks", nil)
	require.Equal(t, ldvalue.ArrayType, data.Type(),
		"expected a JSON array of tasks, got: %s", data.JSONString())
	total := data.Count()
	t.Debug("basic listing returned %d tasks", total)

	limited := t.GetJSON("/api/tasks", url.Values{"limit": {strconv.Itoa(taskListLimit)}})
	require.Equal(t, ldvalue.ArrayType, limited.Type(),
		"expected a JSON array of tasks, got: %s", limited.JSONString())
	if limited.Count() > taskListLimit {
		t.Errorf("Limit not respected: asked for %d tasks, got %d", taskListLimit, limited.Count())
		t.FailNow()
	}
	t.Debug("limited listing returned %d tasks", limited.Count())

	// A zero skip must be accepted; there is no assertion on the content
	// beyond status and shape, since the dataset is not under our control.
	t.GetJSON("/api/tasks", url.Values{"skip": {"0"}, "limit": {"10"}})

	t.Pass("Returns 200 with %d tasks; limit and skip parameters accepted", total)
	t.RecordData(ldvalue.ObjectBuild().Set("task_count", ldvalue.Int(total)).Build())
}
