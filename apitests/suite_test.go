package apitests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/questboard/api-contract-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockToken = "fake-token-123"

var expectedCheckOrder = []string{
	"GET /api/healthz",
	"Auth Login",
	"GET /api/tasks",
	"GET /api/analytics/dashboard",
	"GET /api/quests/daily",
}

// conformantRoutes returns handlers for an API that satisfies every check.
// Tests override individual paths to simulate specific nonconformances.
func conformantRoutes() map[string]http.Handler {
	return map[string]http.Handler{
		"/api/healthz": httphelpers.HandlerWithJSONResponse(
			map[string]interface{}{"status": "ok"}, nil),
		"/api/auth/signup": httphelpers.HandlerWithResponse(400, nil,
			[]byte(`{"detail":"user already exists"}`)),
		"/api/auth/login": httphelpers.HandlerWithJSONResponse(
			map[string]interface{}{
				"access_token": mockToken,
				"user":         map[string]interface{}{"id": "user-1", "username": "testuser"},
			}, nil),
		"/api/tasks":               tasksHandler(8, true),
		"/api/analytics/dashboard": dashboardHandler(true),
		"/api/quests/daily": httphelpers.HandlerWithJSONResponse(
			map[string]interface{}{
				"quests": []interface{}{
					map[string]interface{}{"id": "q1"},
					map[string]interface{}{"id": "q2"},
					map[string]interface{}{"id": "q3"},
				},
				"date": "2026-08-31",
			}, nil),
	}
}

func apiHandler(overrides map[string]http.Handler) http.Handler {
	routes := conformantRoutes()
	for path, handler := range overrides {
		routes[path] = handler
	}
	mux := http.NewServeMux()
	for path, handler := range routes {
		mux.Handle(path, handler)
	}
	return mux
}

func tasksHandler(total int, honorLimit bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count := total
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" && honorLimit {
			if limit, err := strconv.Atoi(limitStr); err == nil && limit < count {
				count = limit
			}
		}
		tasks := make([]map[string]interface{}, 0, count)
		for i := 0; i < count; i++ {
			tasks = append(tasks, map[string]interface{}{"id": i, "title": "task"})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tasks)
	})
}

func dashboardHandler(echoDays bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		windowDays := 30
		if daysStr := r.URL.Query().Get("days"); daysStr != "" && echoDays {
			if days, err := strconv.Atoi(daysStr); err == nil {
				windowDays = days
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"total_tasks":      42,
			"current_level":    3,
			"discipline_score": 87.5,
			"weekly_data":      []interface{}{},
			"window_days":      windowDays,
		})
	})
}

func runSuiteAgainst(t *testing.T, handler http.Handler) framework.Results {
	server := httptest.NewServer(handler)
	defer server.Close()
	client := NewAPIClient(server.URL, time.Second*5)
	return RunTestSuite(client, DefaultIdentity(), nil, nil)
}

func failureFor(t *testing.T, results framework.Results, name string) framework.TestResult {
	for _, f := range results.Failures {
		if f.TestID.String() == name {
			return f
		}
	}
	require.Failf(t, "expected failure not found", "no failure recorded for %q", name)
	return framework.TestResult{}
}

func TestSuiteAgainstConformantService(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(apiHandler(nil))
	server := httptest.NewServer(handler)
	defer server.Close()

	client := NewAPIClient(server.URL, time.Second*5)
	results := RunTestSuite(client, DefaultIdentity(), nil, nil)

	require.True(t, results.OK())
	require.Len(t, results.Tests, 5)
	assert.Equal(t, 5, results.PassedCount())

	var names []string
	for _, res := range results.Tests {
		names = append(names, res.TestID.String())
		assert.False(t, res.Failed())
		assert.NotEmpty(t, res.Message)
		assert.False(t, res.Timestamp.IsZero())
	}
	assert.Equal(t, expectedCheckOrder, names)

	// The token must appear on every request after login and on none before.
	for len(requests) > 0 {
		info := <-requests
		path := info.Request.URL.Path
		auth := info.Request.Header.Get("Authorization")
		if path == "/api/healthz" || strings.HasPrefix(path, "/api/auth/") {
			assert.Empty(t, auth, "unexpected Authorization header on %s", path)
		} else {
			assert.Equal(t, "Bearer "+mockToken, auth, "missing Authorization header on %s", path)
		}
	}
}

func TestSuiteWithFailingHealthCheckStillRunsEverythingElse(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/healthz": httphelpers.HandlerWithStatus(503),
	}))

	require.Len(t, results.Tests, 5)
	assert.Equal(t, 4, results.PassedCount())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "GET /api/healthz", results.Failures[0].TestID.String())
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "503")
}

func TestHealthCheckFailsOnWrongStatusValue(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/healthz": httphelpers.HandlerWithJSONResponse(
			map[string]interface{}{"status": "degraded"}, nil),
	}))

	failure := failureFor(t, results, "GET /api/healthz")
	assert.Contains(t, failure.Errors[0].Error(), "Wrong response format")
}

func TestAuthCheckToleratesSignupFailureWhenLoginSucceeds(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/auth/signup": httphelpers.HandlerWithResponse(500, nil,
			[]byte(`{"detail":"internal error"}`)),
	}))

	assert.True(t, results.OK())
	assert.Equal(t, "Login successful, token received", results.Tests[1].Message)
}

func TestAuthCheckFailsWhenLoginResponseLacksTokenOrUser(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/auth/login": httphelpers.HandlerWithJSONResponse(
			map[string]interface{}{"access_token": mockToken}, nil),
	}))

	failure := failureFor(t, results, "Auth Login")
	assert.Contains(t, failure.Errors[0].Error(), "Missing token or user")
}

func TestTokenRequiringChecksFailWithoutRequestsWhenLoginFails(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(apiHandler(map[string]http.Handler{
		"/api/auth/login": httphelpers.HandlerWithResponse(500, nil,
			[]byte(`{"detail":"login broken"}`)),
	}))
	server := httptest.NewServer(handler)
	defer server.Close()

	client := NewAPIClient(server.URL, time.Second*5)
	results := RunTestSuite(client, DefaultIdentity(), nil, nil)

	require.Len(t, results.Tests, 5)
	assert.Equal(t, 1, results.PassedCount())
	for _, name := range expectedCheckOrder[2:] {
		failure := failureFor(t, results, name)
		assert.Equal(t, "No auth token available", failure.Errors[0].Error())
	}

	// Only the health and auth endpoints should have been touched.
	for len(requests) > 0 {
		info := <-requests
		path := info.Request.URL.Path
		assert.True(t, path == "/api/healthz" || strings.HasPrefix(path, "/api/auth/"),
			"unexpected request to %s after failed login", path)
	}
}

func TestTasksCheckFailsWhenLimitIsNotHonored(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/tasks": tasksHandler(8, false),
	}))

	failure := failureFor(t, results, "GET /api/tasks")
	assert.Contains(t, failure.Errors[0].Error(), "Limit not respected")
	assert.Equal(t, 4, results.PassedCount())
}

func TestDashboardCheckFailsWhenWindowIsNotEchoed(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/analytics/dashboard": dashboardHandler(false),
	}))

	failure := failureFor(t, results, "GET /api/analytics/dashboard")
	assert.Contains(t, failure.Errors[0].Error(), "Days parameter not respected")
}

func TestDashboardCheckFailsOnMissingAggregateFields(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/analytics/dashboard": httphelpers.HandlerWithJSONResponse(
			map[string]interface{}{"total_tasks": 42, "window_days": 30}, nil),
	}))

	failure := failureFor(t, results, "GET /api/analytics/dashboard")
	assert.Contains(t, failure.Errors[0].Error(), "Missing fields")
	assert.Contains(t, failure.Errors[0].Error(), "current_level")
}

func TestQuestsCheckFailsOnMissingFields(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/quests/daily": httphelpers.HandlerWithJSONResponse(
			map[string]interface{}{"quests": []interface{}{}}, nil),
	}))

	failure := failureFor(t, results, "GET /api/quests/daily")
	assert.Contains(t, failure.Errors[0].Error(), "Missing expected fields")
}

func TestSuiteFailsChecksOnMalformedJSON(t *testing.T) {
	results := runSuiteAgainst(t, apiHandler(map[string]http.Handler{
		"/api/healthz": httphelpers.HandlerWithResponse(200, nil, []byte("{not json")),
	}))

	failure := failureFor(t, results, "GET /api/healthz")
	assert.Contains(t, failure.Errors[0].Error(), "malformed JSON")
}

func TestSuiteRespectsFilters(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^GET /api/healthz$"))

	results := runSuiteAgainstFiltered(t, apiHandler(nil), filters.AsFilter)

	require.Len(t, results.Tests, 1)
	assert.Equal(t, "GET /api/healthz", results.Tests[0].TestID.String())
}

func runSuiteAgainstFiltered(t *testing.T, handler http.Handler, filter framework.Filter) framework.Results {
	server := httptest.NewServer(handler)
	defer server.Close()
	client := NewAPIClient(server.URL, time.Second*5)
	return RunTestSuite(client, DefaultIdentity(), filter, nil)
}
