package apitests

import (
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const analyticsWindowDays = 7

var dashboardRequiredFields = []string{
	"total_tasks",
	"current_level",
	"discipline_score",
	"weekly_data",
}

// DoAnalyticsDashboardCheck calls the dashboard endpoint with its default
// window, requiring the fixed set of aggregate fields, then with an explicit
// days parameter, requiring that window_days echoes the requested value.
func DoAnalyticsDashboardCheck(t *T) {
	t.RequireToken()

	data := t.GetJSON("/api/analytics/dashboard", nil)
	var missing []string
	for _, field := range dashboardRequiredFields {
		if _, ok := data.TryGetByKey(field); !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		t.Errorf("Missing fields: %s", strings.Join(missing, ", "))
		t.FailNow()
	}
	t.Debug("default window_days: %s", data.GetByKey("window_days").JSONString())

	windowed := t.GetJSON("/api/analytics/dashboard",
		url.Values{"days": {strconv.Itoa(analyticsWindowDays)}})
	if got := windowed.GetByKey("window_days"); got.IntValue() != analyticsWindowDays {
		t.Errorf("Days parameter not respected: window_days = %s", got.JSONString())
		t.FailNow()
	}

	t.Pass("Returns 200 with expected fields; days parameter honored")
	t.RecordData(ldvalue.ObjectBuild().
		Set("window_days", data.GetByKey("window_days")).
		Build())
}
