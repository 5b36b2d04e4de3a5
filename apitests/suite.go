package apitests

import (
	"github.com/questboard/api-contract-tests/framework"
)

// RunTestSuite executes the full battery of checks in their required order.
// The order matters only in one way: the authentication check stores the
// bearer token that the later checks require.
func RunTestSuite(
	client *APIClient,
	identity Identity,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, client, identity)

		t.Run("GET /api/healthz", DoHealthCheck)
		t.Run("Auth Login", DoAuthLoginCheck)
		t.Run("GET /api/tasks", DoTasksCheck)
		t.Run("GET /api/analytics/dashboard", DoAnalyticsDashboardCheck)
		t.Run("GET /api/quests/daily", DoDailyQuestsCheck)
	})
}
