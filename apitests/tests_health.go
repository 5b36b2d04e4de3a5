package apitests

// DoHealthCheck verifies that the service is live: the health endpoint must
// return 200 with a body whose status field is exactly "ok".
func DoHealthCheck(t *T) {
	data := t.GetJSON("/api/healthz", nil)
	if data.GetByKey("status").StringValue() != "ok" {
		t.Errorf("Wrong response format: %s", data.JSONString())
		t.FailNow()
	}
	t.Pass("Returns 200 with {status: ok}")
	t.RecordData(data)
}
