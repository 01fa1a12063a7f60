package main

import (
	"strings"
	"testing"
)

func TestAssignmentsListShowsAssignedUsers(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "assignments", "list", "1")
	if err != nil {
		t.Fatalf("assignments list: %v", err)
	}
	requireContains(t, out, "Terry Vale")
}

func TestAssignmentsAvailableExcludesAssigned(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "assignments", "available", "1")
	if err != nil {
		t.Fatalf("assignments available: %v", err)
	}
	requireContains(t, out, "Ada Lin")
	if strings.Contains(out, "Terry Vale") {
		t.Fatalf("assigned user must not be listed as available, got %q", out)
	}
}

func TestAssignmentsAddAssignsUser(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "assignments", "add", "1", "1")
	if err != nil {
		t.Fatalf("assignments add: %v", err)
	}
	requireContains(t, out, "Assigned user 1 to case 1 (2 assigned)")
	if len(env.assignments) != 2 {
		t.Fatalf("expected 2 assignments on the server, got %d", len(env.assignments))
	}
}

func TestAssignmentsAddRejectsAlreadyAssignedUser(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "assignments", "add", "1", "3")
	if err == nil || !strings.Contains(err.Error(), "not available to assign") {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(env.assignments) != 1 {
		t.Fatalf("duplicate assignment must not reach the backend, got %+v", env.assignments)
	}
}

func TestAssignmentsRemoveRequiresConfirmation(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "assignments", "remove", "1", "7")
	if err != nil {
		t.Fatalf("assignments remove without input: %v", err)
	}
	requireContains(t, out, "Aborted")
	if len(env.assignments) != 1 {
		t.Fatal("declined removal must leave the assignment in place")
	}

	out, _, err = runCLI(t, env, "assignments", "remove", "1", "7", "--yes")
	if err != nil {
		t.Fatalf("assignments remove --yes: %v", err)
	}
	requireContains(t, out, "Removed assignment 7")
	if len(env.assignments) != 0 {
		t.Fatalf("expected assignment removed, got %+v", env.assignments)
	}
}

func TestAssignmentsRemoveUnknownAssignment(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "assignments", "remove", "1", "999", "--yes")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
