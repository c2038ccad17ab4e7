package repo

import (
	"errors"
	"testing"
)

func TestUserRepo_AddAndLookup(t *testing.T) {
	r := NewUserRepo()

	user, err := r.Add("alice", "hash-a")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if user.ID != 1 || user.Username != "alice" {
		t.Errorf("unexpected user: %+v", user)
	}

	byName, err := r.GetByUsername("alice")
	if err != nil || byName.ID != user.ID {
		t.Errorf("GetByUsername: user=%+v err=%v", byName, err)
	}
	byID, err := r.GetByID(user.ID)
	if err != nil || byID.Username != "alice" {
		t.Errorf("GetByID: user=%+v err=%v", byID, err)
	}
	if r.Count() != 1 {
		t.Errorf("Count: got %d, want 1", r.Count())
	}
}

func TestUserRepo_NotFound(t *testing.T) {
	r := NewUserRepo()

	if _, err := r.GetByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByUsername: got %v, want ErrNotFound", err)
	}
	if _, err := r.GetByID(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID: got %v, want ErrNotFound", err)
	}
}

func TestUserRepo_DuplicateUsername(t *testing.T) {
	r := NewUserRepo()

	if _, err := r.Add("alice", "h1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := r.Add("alice", "h2"); err == nil {
		t.Error("Add duplicate: expected error")
	}
}
