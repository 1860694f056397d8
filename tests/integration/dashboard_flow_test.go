package integration

import (
	"net/http"
	"testing"
)

// A fresh account starts with no goal and empty collections everywhere.
func TestDashboardFlow_NewUserEmptyState(t *testing.T) {
	app := setupApp(t)

	accessToken, _, _ := app.registerUser(t, "fresh@test.com", "password123")

	// No goal yet: explicit 404 with a stable code, not an empty object.
	rec := app.request("GET", "/api/v1/goal", "", accessToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unset goal, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "GOAL_NOT_FOUND" {
		t.Errorf("expected GOAL_NOT_FOUND, got %v", errObj["code"])
	}

	// Set the goal.
	rec = app.request("PUT", "/api/v1/goal", `{"target_net_worth":1000000}`, accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("set goal failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/goal", "", accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after setting goal, got %d", rec.Code)
	}
	result = parseJSON(t, rec)
	goal := result["goal"].(map[string]interface{})
	if goal["target_net_worth"].(float64) != 1000000 {
		t.Errorf("expected target 1000000, got %v", goal["target_net_worth"])
	}

	// Every collection endpoint returns an empty page, never an error.
	for _, path := range []string{
		"/api/v1/habits",
		"/api/v1/actions",
		"/api/v1/transactions",
		"/api/v1/milestones",
		"/api/v1/skills",
		"/api/v1/skills/logs",
		"/api/v1/posts",
		"/api/v1/pod/members",
	} {
		rec = app.request("GET", path, "", accessToken)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d: %s", path, rec.Code, rec.Body.String())
		}
		result = parseJSON(t, rec)
		data, ok := result["data"].([]interface{})
		if !ok {
			t.Fatalf("expected data array for %s, got: %v", path, result)
		}
		if len(data) != 0 {
			t.Errorf("expected empty list for %s, got %d items", path, len(data))
		}
	}

	// Summary of zero transactions is all zeros.
	rec = app.request("GET", "/api/v1/transactions/summary", "", accessToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	summary := result["summary"].(map[string]interface{})
	if summary["net_profit"].(float64) != 0 {
		t.Errorf("expected zero net profit, got %v", summary["net_profit"])
	}
}

// Data is scoped per user: one user's records never appear in another's lists.
func TestDashboardFlow_UserIsolation(t *testing.T) {
	app := setupApp(t)

	aliceToken, _, _ := app.registerUser(t, "alice@test.com", "password123")
	bobToken, _, _ := app.registerUser(t, "bob@test.com", "password123")

	rec := app.request("POST", "/api/v1/habits", `{"name":"Read 20 pages"}`, aliceToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create habit failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	habit := result["habit"].(map[string]interface{})
	habitID := habit["id"].(string)

	// Bob sees an empty habit list.
	rec = app.request("GET", "/api/v1/habits", "", bobToken)
	result = parseJSON(t, rec)
	if data := result["data"].([]interface{}); len(data) != 0 {
		t.Errorf("expected bob to see no habits, got %d", len(data))
	}

	// Bob cannot check in against alice's habit.
	rec = app.request("POST", "/api/v1/habits/"+habitID+"/check", "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for cross-user check-in, got %d", rec.Code)
	}
}
