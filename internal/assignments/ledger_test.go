package assignments

import (
	"context"
	"errors"
	"testing"

	"gavel/internal/courtapi"
	"gavel/internal/logging"
)

type fakeBackend struct {
	scopedSupported bool
	assignments     []courtapi.Assignment
	users           []courtapi.User

	scopedCalls int
	allCalls    int
	addErr      error
	removeErr   error
	listErr     error

	added   [][2]int64
	removed []int64
}

func (b *fakeBackend) CaseAssignments(ctx context.Context, caseID int64) (courtapi.ScopedAssignments, error) {
	b.scopedCalls++
	if !b.scopedSupported {
		return courtapi.ScopedAssignments{}, nil
	}
	var scoped []courtapi.Assignment
	for _, a := range b.assignments {
		if a.CaseID == caseID {
			scoped = append(scoped, a)
		}
	}
	return courtapi.ScopedAssignments{Assignments: scoped, Supported: true}, nil
}

func (b *fakeBackend) AllAssignments(ctx context.Context) ([]courtapi.Assignment, error) {
	b.allCalls++
	return b.assignments, nil
}

func (b *fakeBackend) AddAssignment(ctx context.Context, caseID, userID int64) error {
	if b.addErr != nil {
		return b.addErr
	}
	b.added = append(b.added, [2]int64{caseID, userID})
	b.assignments = append(b.assignments, courtapi.Assignment{
		ID: int64(100 + len(b.assignments)), CaseID: caseID, UserID: userID,
	})
	return nil
}

func (b *fakeBackend) RemoveAssignment(ctx context.Context, assignmentID int64) error {
	if b.removeErr != nil {
		return b.removeErr
	}
	b.removed = append(b.removed, assignmentID)
	kept := b.assignments[:0]
	for _, a := range b.assignments {
		if a.ID != assignmentID {
			kept = append(kept, a)
		}
	}
	b.assignments = kept
	return nil
}

func (b *fakeBackend) ListUsers(ctx context.Context) ([]courtapi.User, error) {
	if b.listErr != nil {
		return nil, b.listErr
	}
	return b.users, nil
}

func newFakeBackend(scopedSupported bool) *fakeBackend {
	return &fakeBackend{
		scopedSupported: scopedSupported,
		assignments: []courtapi.Assignment{
			{ID: 7, CaseID: 42, UserID: 3, UserName: "Dana Cho"},
			{ID: 8, CaseID: 99, UserID: 1, UserName: "Ada Lin"},
		},
		users: []courtapi.User{
			{ID: 1, Email: "ada.lin@court.example", Name: "Ada Lin", Role: courtapi.RoleAdmin},
			{ID: 3, Email: "dana.cho@court.example", Name: "Dana Cho", Role: courtapi.RoleTranscriber},
			{ID: 5, Email: "sam.ortiz@court.example", Name: "Sam Ortiz", Role: courtapi.RoleTranscriber},
		},
	}
}

func TestLoadUsesScopedRouteWhenSupported(t *testing.T) {
	backend := newFakeBackend(true)
	ledger := NewLedger(backend, 42, logging.NewNop())

	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if backend.allCalls != 0 {
		t.Fatal("supported scoped route must not trigger a full fetch")
	}
	got := ledger.Assignments()
	if len(got) != 1 || got[0].UserName != "Dana Cho" {
		t.Fatalf("unexpected assignments: %+v", got)
	}
}

func TestLoadFallsBackToFullCollection(t *testing.T) {
	backend := newFakeBackend(false)
	ledger := NewLedger(backend, 42, logging.NewNop())

	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if backend.allCalls != 1 {
		t.Fatalf("expected 1 full fetch, got %d", backend.allCalls)
	}
	got := ledger.Assignments()
	if len(got) != 1 || got[0].CaseID != 42 {
		t.Fatalf("fallback must narrow to the case, got %+v", got)
	}
}

func TestAvailableUsersExcludesAssigned(t *testing.T) {
	backend := newFakeBackend(true)
	ledger := NewLedger(backend, 42, logging.NewNop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	available := ledger.AvailableUsers()
	if len(available) != 2 {
		t.Fatalf("expected 2 available users, got %+v", available)
	}
	for _, u := range available {
		if u.ID == 3 {
			t.Fatal("assigned user must not be available")
		}
	}
}

func TestFilterUsersMatchesNameEmailAndRole(t *testing.T) {
	backend := newFakeBackend(true)
	ledger := NewLedger(backend, 42, logging.NewNop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	tests := []struct {
		term    string
		wantIDs []int64
	}{
		{"", []int64{1, 5}},
		{"ADA", []int64{1}},
		{"ortiz@", []int64{5}},
		{"admin", []int64{1}},
		{"nobody", nil},
	}
	for _, tt := range tests {
		got := ledger.FilterUsers(tt.term)
		if len(got) != len(tt.wantIDs) {
			t.Errorf("term %q: expected %d users, got %+v", tt.term, len(tt.wantIDs), got)
			continue
		}
		for i, u := range got {
			if u.ID != tt.wantIDs[i] {
				t.Errorf("term %q: expected user %d at position %d, got %d", tt.term, tt.wantIDs[i], i, u.ID)
			}
		}
	}
}

func TestAddReloadsFromBackend(t *testing.T) {
	backend := newFakeBackend(true)
	ledger := NewLedger(backend, 42, logging.NewNop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := ledger.Add(context.Background(), 5); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if len(backend.added) != 1 || backend.added[0] != [2]int64{42, 5} {
		t.Fatalf("unexpected add calls: %+v", backend.added)
	}
	if len(ledger.Assignments()) != 2 {
		t.Fatalf("expected reloaded state with 2 assignments, got %+v", ledger.Assignments())
	}
	if len(ledger.AvailableUsers()) != 1 {
		t.Fatalf("expected 1 available user after add, got %+v", ledger.AvailableUsers())
	}
}

func TestAddRejectsAlreadyAssignedUser(t *testing.T) {
	backend := newFakeBackend(true)
	ledger := NewLedger(backend, 42, logging.NewNop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	err := ledger.Add(context.Background(), 3)
	if !errors.Is(err, courtapi.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(backend.added) != 0 {
		t.Fatalf("rejected add must not reach the backend, got %+v", backend.added)
	}
	if len(ledger.Assignments()) != 1 {
		t.Fatalf("expected unchanged assignments, got %+v", ledger.Assignments())
	}
}

func TestAddRejectsUnknownUser(t *testing.T) {
	backend := newFakeBackend(true)
	ledger := NewLedger(backend, 42, logging.NewNop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	err := ledger.Add(context.Background(), 77)
	if !errors.Is(err, courtapi.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(backend.added) != 0 {
		t.Fatalf("rejected add must not reach the backend, got %+v", backend.added)
	}
}

func TestRemoveReloadsFromBackend(t *testing.T) {
	backend := newFakeBackend(true)
	ledger := NewLedger(backend, 42, logging.NewNop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := ledger.Remove(context.Background(), 7); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if len(ledger.Assignments()) != 0 {
		t.Fatalf("expected empty assignments, got %+v", ledger.Assignments())
	}
	if len(ledger.AvailableUsers()) != 3 {
		t.Fatalf("expected all users available after removal, got %+v", ledger.AvailableUsers())
	}
}

func TestFailedMutationLeavesStateUntouched(t *testing.T) {
	backend := newFakeBackend(true)
	ledger := NewLedger(backend, 42, logging.NewNop())
	if err := ledger.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	before := len(ledger.Assignments())

	backend.addErr = errors.New("backend rejected assignment")
	if err := ledger.Add(context.Background(), 5); err == nil {
		t.Fatal("expected error from failed add")
	}
	if len(ledger.Assignments()) != before {
		t.Fatal("failed add must not change ledger state")
	}
}
