package courtapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestCaseAssignmentsScopedRouteSupported(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcription_users/42" {
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": int64(7), "case_id": int64(42), "user_id": int64(3), "user_name": "Dana Cho"},
		})
	}))

	result, err := client.CaseAssignments(context.Background(), 42)
	if err != nil {
		t.Fatalf("CaseAssignments returned error: %v", err)
	}
	if !result.Supported {
		t.Fatal("expected scoped route to be reported as supported")
	}
	if len(result.Assignments) != 1 || result.Assignments[0].UserName != "Dana Cho" {
		t.Fatalf("unexpected assignments: %+v", result.Assignments)
	}
}

func TestCaseAssignmentsNotFoundSignalsFallback(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	result, err := client.CaseAssignments(context.Background(), 42)
	if err != nil {
		t.Fatalf("404 must not be an error, got %v", err)
	}
	if result.Supported {
		t.Fatal("expected Supported=false for 404")
	}
	if len(result.Assignments) != 0 {
		t.Fatalf("expected no assignments, got %+v", result.Assignments)
	}
}

func TestCaseAssignmentsOtherStatusIsError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	if _, err := client.CaseAssignments(context.Background(), 42); err == nil {
		t.Fatal("expected non-404 failure to surface as error")
	}
}

func TestAddAssignmentPostsPair(t *testing.T) {
	var body map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/add_transcription_user" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte(`{"id": 9}`))
	}))

	if err := client.AddAssignment(context.Background(), 42, 3); err != nil {
		t.Fatalf("AddAssignment returned error: %v", err)
	}
	if body["case_id"] != float64(42) || body["user_id"] != float64(3) {
		t.Fatalf("unexpected payload: %v", body)
	}
}

func TestAddAssignmentRejectsInvalidIDsLocally(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	if err := client.AddAssignment(context.Background(), 0, 3); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Fatal("invalid ids must not reach the network")
	}
}

func TestRemoveAssignmentDeletesByID(t *testing.T) {
	var path string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.Method + " " + r.URL.Path
		_, _ = w.Write([]byte(`{"status": "deleted"}`))
	}))

	if err := client.RemoveAssignment(context.Background(), 7); err != nil {
		t.Fatalf("RemoveAssignment returned error: %v", err)
	}
	if path != "DELETE /transcription_users/7" {
		t.Fatalf("unexpected request: %q", path)
	}
}
