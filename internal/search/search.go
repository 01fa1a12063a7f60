// Package search filters the recording catalog by a free-text term.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"gavel/internal/courtapi"
)

// Filter returns the recordings whose searchable fields contain term,
// compared case-insensitively. An empty or whitespace-only term returns
// the input unchanged.
func Filter(recordings []courtapi.Recording, term string) []courtapi.Recording {
	needle := strings.TrimSpace(term)
	if needle == "" {
		return recordings
	}

	folder := cases.Fold()
	needle = folder.String(needle)

	matched := make([]courtapi.Recording, 0, len(recordings))
	for _, rec := range recordings {
		if matches(folder, rec, needle) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// Matches reports whether a single recording contains term in any
// searchable field, compared case-insensitively.
func Matches(rec courtapi.Recording, term string) bool {
	needle := strings.TrimSpace(term)
	if needle == "" {
		return true
	}
	folder := cases.Fold()
	return matches(folder, rec, folder.String(needle))
}

// ContainsFold reports whether s contains substr under Unicode case
// folding.
func ContainsFold(s, substr string) bool {
	folder := cases.Fold()
	return strings.Contains(folder.String(s), folder.String(substr))
}

func matches(folder cases.Caser, rec courtapi.Recording, needle string) bool {
	for _, field := range searchableFields(rec) {
		if strings.Contains(folder.String(field), needle) {
			return true
		}
	}
	return false
}

func searchableFields(rec courtapi.Recording) []string {
	return []string{
		rec.CaseNumber,
		rec.Title,
		rec.JudgeName,
		rec.Court,
		rec.Courtroom,
		rec.Notes,
		rec.Transcript,
	}
}
