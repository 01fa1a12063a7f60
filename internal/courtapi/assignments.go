package courtapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// ScopedAssignments is the outcome of a case-scoped assignment lookup.
// Supported is false when the backend does not serve the scoped route
// (it answered 404); that outcome is a designed fallback signal, not a
// failure, and callers are expected to fetch the full collection instead.
type ScopedAssignments struct {
	Assignments []Assignment
	Supported   bool
}

// CaseAssignments fetches the assignments for one case via the scoped route.
func (c *Client) CaseAssignments(ctx context.Context, caseID int64) (ScopedAssignments, error) {
	var assignments []Assignment
	err := c.getJSON(ctx, "list case assignments", "transcription_users/"+strconv.FormatInt(caseID, 10), &assignments)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ScopedAssignments{}, nil
		}
		return ScopedAssignments{}, err
	}
	return ScopedAssignments{Assignments: assignments, Supported: true}, nil
}

// AllAssignments fetches the full assignment collection across every case.
func (c *Client) AllAssignments(ctx context.Context) ([]Assignment, error) {
	var assignments []Assignment
	if err := c.getJSON(ctx, "list assignments", "transcription_users", &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// AddAssignment binds a user to a case for transcription work.
func (c *Client) AddAssignment(ctx context.Context, caseID, userID int64) error {
	if caseID <= 0 || userID <= 0 {
		return fmt.Errorf("%w: add assignment: case and user ids must be positive", ErrValidation)
	}
	body := map[string]any{
		"case_id": caseID,
		"user_id": userID,
	}
	return c.sendJSON(ctx, "add assignment", "POST", "add_transcription_user", body, nil)
}

// RemoveAssignment deletes an assignment by its identifier.
func (c *Client) RemoveAssignment(ctx context.Context, assignmentID int64) error {
	if assignmentID <= 0 {
		return fmt.Errorf("%w: remove assignment: id must be positive", ErrValidation)
	}
	return c.deleteResource(ctx, "remove assignment", "transcription_users/"+strconv.FormatInt(assignmentID, 10))
}
