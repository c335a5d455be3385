package service

import (
	"errors"
	"testing"

	"storefront/internal/core/repository"

	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewUserService(repository.NewInMemoryUserRepository())

	user, err := svc.Register("Ada", "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.Password == "hunter2" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter2")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if user.Admin {
		t.Error("new user should not be admin")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(repository.NewInMemoryUserRepository())

	tests := []struct {
		name, userName, email, password string
		wantErr                         error
	}{
		{"missing name", "", "a@example.com", "pw", ErrValidation},
		{"missing email", "Ada", "", "pw", ErrValidation},
		{"missing password", "Ada", "a@example.com", "", ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(tt.userName, tt.email, tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(repository.NewInMemoryUserRepository())

	if _, err := svc.Register("Ada", "ada@example.com", "hunter2"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if _, err := svc.Register("Eve", "ada@example.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Register error = %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewUserService(repository.NewInMemoryUserRepository())

	registered, err := svc.Register("Ada", "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	user, err := svc.Authenticate("ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("Authenticate returned wrong user: %s", user.ID)
	}

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "ada@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "hunter2"},
		{"empty password", "ada@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Authenticate(tt.email, tt.password); !errors.Is(err, ErrBadCredentials) {
				t.Errorf("Authenticate error = %v, want ErrBadCredentials", err)
			}
		})
	}
}

func TestGetProfileExcludesPassword(t *testing.T) {
	svc := NewUserService(repository.NewInMemoryUserRepository())

	registered, err := svc.Register("Ada", "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	profile, err := svc.GetProfile(registered.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.Password != "" {
		t.Error("profile load included the password hash")
	}

	if _, err := svc.GetProfile("no-such-user"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetProfile error = %v, want ErrNotFound", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := NewUserService(repository.NewInMemoryUserRepository())

	registered, err := svc.Register("Ada", "ada@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	oldHash := registered.Password

	// Empty fields keep their current values.
	updated, err := svc.UpdateProfile(registered.ID, "Ada Lovelace", "", "")
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Name != "Ada Lovelace" || updated.Email != "ada@example.com" {
		t.Errorf("partial update wrong: name=%q email=%q", updated.Name, updated.Email)
	}
	if updated.Password != oldHash {
		t.Error("password changed without a new password")
	}

	// A new password is re-hashed.
	updated, err = svc.UpdateProfile(registered.ID, "", "", "correcthorse")
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Password == oldHash || updated.Password == "correcthorse" {
		t.Error("password not re-hashed")
	}
	if _, err := svc.Authenticate("ada@example.com", "correcthorse"); err != nil {
		t.Errorf("Authenticate after password change failed: %v", err)
	}
}
