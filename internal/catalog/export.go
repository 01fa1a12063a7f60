package catalog

import (
	"fmt"
	"strings"

	"gavel/internal/courtapi"
)

// ExportFilename names the transcript file for a recording.
func ExportFilename(rec courtapi.Recording) string {
	caseNumber := strings.TrimSpace(rec.CaseNumber)
	if caseNumber == "" {
		caseNumber = fmt.Sprintf("recording-%d", rec.ID)
	}
	date := strings.TrimSpace(rec.Date)
	if date == "" {
		date = "undated"
	}
	return fmt.Sprintf("transcript-%s-%s.txt", sanitizeFilePart(caseNumber), sanitizeFilePart(date))
}

// ExportTranscript renders a recording's transcript as a plain-text
// document with a case header block.
func ExportTranscript(rec courtapi.Recording) string {
	var b strings.Builder
	writeHeaderLine(&b, "CASE NUMBER", rec.CaseNumber)
	writeHeaderLine(&b, "TITLE", rec.Title)
	writeHeaderLine(&b, "DATE", rec.Date)
	writeHeaderLine(&b, "COURT", rec.Court)
	writeHeaderLine(&b, "COURTROOM", rec.Courtroom)
	writeHeaderLine(&b, "JUDGE", rec.JudgeName)
	writeHeaderLine(&b, "NOTES", rec.Notes)
	fmt.Fprintf(&b, "WORD COUNT: %d\n", len(strings.Fields(rec.Transcript)))
	b.WriteString("\nTRANSCRIPT:\n")
	transcript := strings.TrimSpace(rec.Transcript)
	if transcript == "" {
		transcript = "(no transcript available)"
	}
	b.WriteString(transcript)
	b.WriteString("\n")
	return b.String()
}

func writeHeaderLine(b *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}

func sanitizeFilePart(s string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		case r == ' ' || r == '/':
			return '-'
		}
		return -1
	}, s)
	return strings.Trim(mapped, "-")
}
