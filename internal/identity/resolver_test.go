package identity

import (
	"context"
	"errors"
	"testing"

	"gavel/internal/courtapi"
	"gavel/internal/logging"
)

type fakeDirectory struct {
	users []courtapi.User
	err   error
	calls int
}

func (d *fakeDirectory) ListUsers(ctx context.Context) ([]courtapi.User, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return d.users, nil
}

func directoryUsers() []courtapi.User {
	return []courtapi.User{
		{ID: 1, Email: "admin@court.example", Name: "Ada Lin", Role: courtapi.RoleAdmin},
		{ID: 3, Email: "dana.cho@court.example", Name: "Dana Cho", Role: courtapi.RoleTranscriber},
	}
}

func TestResolveMatchesEmailCaseInsensitively(t *testing.T) {
	dir := &fakeDirectory{users: directoryUsers()}
	resolver := NewResolver(dir, "Dana.Cho@Court.Example", logging.NewNop())

	user, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if user.ID != 3 || user.Role != courtapi.RoleTranscriber {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestResolveCachesSuccessfulLookup(t *testing.T) {
	dir := &fakeDirectory{users: directoryUsers()}
	resolver := NewResolver(dir, "dana.cho@court.example", logging.NewNop())

	for i := 0; i < 3; i++ {
		if _, err := resolver.Resolve(context.Background()); err != nil {
			t.Fatalf("Resolve %d returned error: %v", i, err)
		}
	}
	if dir.calls != 1 {
		t.Fatalf("expected 1 directory call, got %d", dir.calls)
	}
}

func TestResolveDoesNotCacheFailures(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("boom")}
	resolver := NewResolver(dir, "dana.cho@court.example", logging.NewNop())

	if _, err := resolver.Resolve(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	dir.err = nil
	dir.users = directoryUsers()
	user, err := resolver.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve after recovery returned error: %v", err)
	}
	if user.ID != 3 {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestInvalidateForcesDirectoryRefetch(t *testing.T) {
	dir := &fakeDirectory{users: directoryUsers()}
	resolver := NewResolver(dir, "dana.cho@court.example", logging.NewNop())

	if _, err := resolver.Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	resolver.Invalidate()
	if _, err := resolver.Resolve(context.Background()); err != nil {
		t.Fatalf("Resolve after Invalidate returned error: %v", err)
	}
	if dir.calls != 2 {
		t.Fatalf("expected 2 directory calls, got %d", dir.calls)
	}
}

func TestResolveUnknownEmailIsNotFound(t *testing.T) {
	dir := &fakeDirectory{users: directoryUsers()}
	resolver := NewResolver(dir, "ghost@court.example", logging.NewNop())

	_, err := resolver.Resolve(context.Background())
	if !errors.Is(err, courtapi.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveEmptyEmailIsValidationError(t *testing.T) {
	dir := &fakeDirectory{users: directoryUsers()}
	resolver := NewResolver(dir, "   ", logging.NewNop())

	_, err := resolver.Resolve(context.Background())
	if !errors.Is(err, courtapi.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if dir.calls != 0 {
		t.Fatal("empty email must not hit the directory")
	}
}
