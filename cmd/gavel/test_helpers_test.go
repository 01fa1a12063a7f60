package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gavel/internal/courtapi"
)

type cliTestEnv struct {
	server     *httptest.Server
	configPath string
	baseDir    string

	recordings  []courtapi.Recording
	courts      []courtapi.Court
	courtrooms  []courtapi.Courtroom
	users       []courtapi.User
	assignments []courtapi.Assignment
	comments    []courtapi.Comment
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{
		baseDir: base,
		recordings: []courtapi.Recording{
			{ID: 1, CaseNumber: "2024-CR-0042", Title: "State v. Harmon", Date: "2024-03-11", CourtID: 10, CourtroomID: 21, JudgeName: "Hon. R. Alvarez", Transcript: "Court is now in session."},
			{ID: 2, CaseNumber: "2024-CV-0108", Title: "Petersen v. Lindqvist", Date: "2024-04-02", CourtID: 11, CourtroomID: 22},
		},
		courts:     []courtapi.Court{{ID: 10, Name: "District Court"}, {ID: 11, Name: "Civil Court"}},
		courtrooms: []courtapi.Courtroom{{ID: 21, Name: "Courtroom 3", CourtID: 10}, {ID: 22, Name: "Courtroom 1", CourtID: 11}},
		users: []courtapi.User{
			{ID: 1, Email: "ada.lin@court.example", Name: "Ada Lin", Role: courtapi.RoleAdmin},
			{ID: 3, Email: "tester@court.example", Name: "Terry Vale", Role: courtapi.RoleTranscriber},
		},
		assignments: []courtapi.Assignment{
			{ID: 7, CaseID: 1, UserID: 3, UserName: "Terry Vale", UserEmail: "tester@court.example"},
		},
		comments: []courtapi.Comment{
			{ID: 21, CaseID: 1, CommenterID: 3, CommenterName: "Terry Vale", CommentType: courtapi.CommentNote, CommentText: "Check timestamp 00:12:03"},
		},
	}
	env.server = httptest.NewServer(env.handler())
	t.Cleanup(env.server.Close)

	env.configPath = filepath.Join(base, "gavel.toml")
	content := fmt.Sprintf(`[backend]
base_url = %q

[session]
email = "tester@court.example"

[paths]
log_dir = %q

[cache]
enabled = false

[logging]
level = "error"
`, env.server.URL, filepath.Join(base, "logs"))
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

func (e *cliTestEnv) handler() http.Handler {
	// Go 1.22 ServeMux method/wildcard patterns are unavailable on the
	// toolchain in use; route on method + path manually instead.
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pathID := func(prefix string) (string, bool) {
			if !strings.HasPrefix(r.URL.Path, prefix) {
				return "", false
			}
			id := strings.TrimPrefix(r.URL.Path, prefix)
			return id, id != "" && !strings.Contains(id, "/")
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/recordings":
			_ = json.NewEncoder(w).Encode(e.recordings)
		case r.Method == http.MethodGet && r.URL.Path == "/courts":
			_ = json.NewEncoder(w).Encode(e.courts)
		case r.Method == http.MethodGet && r.URL.Path == "/courtrooms":
			_ = json.NewEncoder(w).Encode(e.courtrooms)
		case r.Method == http.MethodGet && r.URL.Path == "/users":
			_ = json.NewEncoder(w).Encode(e.users)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/transcription_users/"):
			id, ok := pathID("/transcription_users/")
			if !ok {
				http.NotFound(w, r)
				return
			}
			var scoped []courtapi.Assignment
			for _, a := range e.assignments {
				if fmt.Sprint(a.CaseID) == id {
					scoped = append(scoped, a)
				}
			}
			_ = json.NewEncoder(w).Encode(scoped)
		case r.Method == http.MethodPost && r.URL.Path == "/add_transcription_user":
			var body struct {
				CaseID int64 `json:"case_id"`
				UserID int64 `json:"user_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			e.assignments = append(e.assignments, courtapi.Assignment{
				ID: int64(100 + len(e.assignments)), CaseID: body.CaseID, UserID: body.UserID,
			})
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/transcription_users/"):
			id, ok := pathID("/transcription_users/")
			if !ok {
				http.NotFound(w, r)
				return
			}
			kept := e.assignments[:0]
			for _, a := range e.assignments {
				if fmt.Sprint(a.ID) != id {
					kept = append(kept, a)
				}
			}
			e.assignments = kept
			_, _ = w.Write([]byte(`{"status":"deleted"}`))
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/transcript_comments/"):
			id, ok := pathID("/transcript_comments/")
			if !ok {
				http.NotFound(w, r)
				return
			}
			var scoped []courtapi.Comment
			for _, c := range e.comments {
				if fmt.Sprint(c.CaseID) == id {
					scoped = append(scoped, c)
				}
			}
			_ = json.NewEncoder(w).Encode(scoped)
		case r.Method == http.MethodPost && r.URL.Path == "/add_transcription_comment":
			var body struct {
				CaseID      int64  `json:"case_id"`
				Commenter   int64  `json:"commenter"`
				CommentType string `json:"comment_type"`
				CommentText string `json:"comment_text"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			e.comments = append(e.comments, courtapi.Comment{
				ID: int64(200 + len(e.comments)), CaseID: body.CaseID, CommenterID: body.Commenter,
				CommentType: courtapi.CommentType(body.CommentType), CommentText: body.CommentText,
			})
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/transcript_comments/"):
			id, ok := pathID("/transcript_comments/")
			if !ok {
				http.NotFound(w, r)
				return
			}
			var body struct {
				CommentType string `json:"comment_type"`
				CommentText string `json:"comment_text"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			for i, c := range e.comments {
				if fmt.Sprint(c.ID) == id {
					e.comments[i].CommentType = courtapi.CommentType(body.CommentType)
					e.comments[i].CommentText = body.CommentText
				}
			}
			_, _ = w.Write([]byte(`{"status":"updated"}`))
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/transcript_comments/"):
			id, ok := pathID("/transcript_comments/")
			if !ok {
				http.NotFound(w, r)
				return
			}
			kept := e.comments[:0]
			for _, c := range e.comments {
				if fmt.Sprint(c.ID) != id {
					kept = append(kept, c)
				}
			}
			e.comments = kept
			_, _ = w.Write([]byte(`{"status":"deleted"}`))
		default:
			http.NotFound(w, r)
		}
	})
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
