package catalog

import (
	"strings"
	"testing"

	"gavel/internal/courtapi"
)

func TestExportFilename(t *testing.T) {
	rec := courtapi.Recording{ID: 1, CaseNumber: "2024-CR-0042", Date: "2024-03-11"}
	if got := ExportFilename(rec); got != "transcript-2024-CR-0042-2024-03-11.txt" {
		t.Fatalf("unexpected filename %q", got)
	}

	rec = courtapi.Recording{ID: 9}
	if got := ExportFilename(rec); got != "transcript-recording-9-undated.txt" {
		t.Fatalf("unexpected fallback filename %q", got)
	}

	rec = courtapi.Recording{ID: 2, CaseNumber: "24/CR 042", Date: "2024-03-11"}
	if got := ExportFilename(rec); strings.ContainsAny(got, "/ ") {
		t.Fatalf("filename must not contain separators or spaces: %q", got)
	}
}

func TestExportTranscriptLayout(t *testing.T) {
	rec := courtapi.Recording{
		CaseNumber: "2024-CR-0042",
		Title:      "State v. Harmon",
		Date:       "2024-03-11",
		Court:      "District Court",
		JudgeName:  "Hon. R. Alvarez",
		Transcript: "Court is now in session.",
	}
	got := ExportTranscript(rec)

	for _, want := range []string{
		"CASE NUMBER: 2024-CR-0042",
		"TITLE: State v. Harmon",
		"COURTROOM: -",
		"JUDGE: Hon. R. Alvarez",
		"WORD COUNT: 5",
		"TRANSCRIPT:\nCourt is now in session.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected export to contain %q, got:\n%s", want, got)
		}
	}
}

func TestExportTranscriptWithoutBody(t *testing.T) {
	got := ExportTranscript(courtapi.Recording{CaseNumber: "2024-CR-0042"})
	if !strings.Contains(got, "(no transcript available)") {
		t.Fatalf("expected placeholder body, got:\n%s", got)
	}
	if !strings.Contains(got, "WORD COUNT: 0") {
		t.Fatalf("expected zero word count, got:\n%s", got)
	}
}
