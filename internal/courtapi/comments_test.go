package courtapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestCaseCommentsDecodesThread(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcript_comments/42" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":             int64(1),
				"case_id":        int64(42),
				"commenter_id":   int64(3),
				"commenter_name": "Dana Cho",
				"comment_type":   "note",
				"comment_text":   "Check timestamp 00:12:03",
			},
		})
	}))

	comments, err := client.CaseComments(context.Background(), 42)
	if err != nil {
		t.Fatalf("CaseComments returned error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
	if comments[0].CommentType != CommentNote || comments[0].CommentText != "Check timestamp 00:12:03" {
		t.Fatalf("unexpected comment: %+v", comments[0])
	}
}

func TestAddCommentPostsResolvedCommenter(t *testing.T) {
	var body map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/add_transcription_comment" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte(`{"id": 2}`))
	}))

	err := client.AddComment(context.Background(), 42, 3, CommentQuestion, "Who is speaking at 00:04?")
	if err != nil {
		t.Fatalf("AddComment returned error: %v", err)
	}
	if body["case_id"] != float64(42) || body["commenter"] != float64(3) {
		t.Fatalf("unexpected identifiers in payload: %v", body)
	}
	if body["comment_type"] != "question" || body["comment_text"] != "Who is speaking at 00:04?" {
		t.Fatalf("unexpected comment fields: %v", body)
	}
}

func TestAddCommentRejectsUnknownType(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	if err := client.AddComment(context.Background(), 42, 3, CommentType("rant"), "text"); err == nil {
		t.Fatal("expected validation error for unknown type")
	}
	if called {
		t.Fatal("invalid type must not reach the network")
	}
}

func TestUpdateCommentPutsTypeAndText(t *testing.T) {
	var method, path string
	var body map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte(`{"status": "updated"}`))
	}))

	if err := client.UpdateComment(context.Background(), 9, CommentError, "Misattributed speaker"); err != nil {
		t.Fatalf("UpdateComment returned error: %v", err)
	}
	if method != http.MethodPut || path != "/transcript_comments/9" {
		t.Fatalf("unexpected request %s %s", method, path)
	}
	if body["comment_type"] != "error" || body["comment_text"] != "Misattributed speaker" {
		t.Fatalf("unexpected payload: %v", body)
	}
	if _, present := body["case_id"]; present {
		t.Fatal("update payload must not carry case_id")
	}
}

func TestDeleteCommentDeletesByID(t *testing.T) {
	var path string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.Method + " " + r.URL.Path
		_, _ = w.Write([]byte(`{"status": "deleted"}`))
	}))

	if err := client.DeleteComment(context.Background(), 9); err != nil {
		t.Fatalf("DeleteComment returned error: %v", err)
	}
	if path != "DELETE /transcript_comments/9" {
		t.Fatalf("unexpected request: %q", path)
	}
}
