package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoDailyQuestsCheck verifies that the daily quest endpoint still serves a
// quest collection and the date it was generated for.
func DoDailyQuestsCheck(t *T) {
	t.RequireToken()

	data := t.GetJSON("/api/quests/daily", nil)
	quests, hasQuests := data.TryGetByKey("quests")
	date, hasDate := data.TryGetByKey("date")
	if !hasQuests || !hasDate {
		t.Errorf("Missing expected fields in response: %s", data.JSONString())
		t.FailNow()
	}

	t.Pass("Returns 200 with %d quests", quests.Count())
	t.RecordData(ldvalue.ObjectBuild().
		Set("date", date).
		Set("quest_count", ldvalue.Int(quests.Count())).
		Build())
}
