package user

import (
	"context"
	"errors"
	"testing"

	"aircnc/models"

	"go.uber.org/zap"
)

// mockUserRepository keeps users keyed by email the way the unique index does.
type mockUserRepository struct {
	users map[string]models.User
	err   error
}

func (m *mockUserRepository) UpsertByEmail(ctx context.Context, email string, fields models.User) (*models.UpdateResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.users == nil {
		m.users = map[string]models.User{}
	}
	res := &models.UpdateResult{Acknowledged: true}
	existing, ok := m.users[email]
	if !ok {
		existing = models.User{}
		res.UpsertedCount = 1
		res.UpsertedID = email
	} else {
		res.MatchedCount = 1
		res.ModifiedCount = 1
	}
	for k, v := range fields {
		existing[k] = v
	}
	existing["email"] = email
	m.users[email] = existing
	return res, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[email], nil
}

func TestUpsertUser_IsIdempotentByEmail(t *testing.T) {
	repo := &mockUserRepository{}
	svc := &DefaultUserService{Repo: repo, Logger: zap.NewNop()}
	ctx := context.Background()

	first, err := svc.UpsertUser(ctx, "a@x.com", models.User{"name": "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.UpsertedCount != 1 {
		t.Errorf("expected first call to insert, got %+v", first)
	}

	second, err := svc.UpsertUser(ctx, "a@x.com", models.User{"name": "A2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.UpsertedCount != 0 || second.MatchedCount != 1 {
		t.Errorf("expected second call to update, got %+v", second)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(repo.users))
	}
	got, err := svc.GetUserByEmail(ctx, "a@x.com")
	if err != nil || got["name"] != "A2" {
		t.Errorf("expected latest payload, got %v, %v", got, err)
	}
}

func TestUpsertUser_RequiresEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepository{}, Logger: zap.NewNop()}
	if _, err := svc.UpsertUser(context.Background(), "  ", models.User{}); !errors.Is(err, ErrMissingEmail) {
		t.Errorf("expected ErrMissingEmail, got %v", err)
	}
}

func TestGetUserByEmail_MissingUserIsNil(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepository{}, Logger: zap.NewNop()}
	got, err := svc.GetUserByEmail(context.Background(), "nobody@x.com")
	if err != nil || got != nil {
		t.Errorf("expected nil user, got %v, %v", got, err)
	}
}

func TestGetUserByEmail_StoreError(t *testing.T) {
	svc := &DefaultUserService{Repo: &mockUserRepository{err: errors.New("timeout")}, Logger: zap.NewNop()}
	if _, err := svc.GetUserByEmail(context.Background(), "a@x.com"); err == nil {
		t.Error("expected error")
	}
}
