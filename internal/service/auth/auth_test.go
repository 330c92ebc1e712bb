package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/proflink/proflink_backend/config"
	"github.com/proflink/proflink_backend/internal/repo"
	"github.com/proflink/proflink_backend/internal/repo/enttest"
	entuser "github.com/proflink/proflink_backend/internal/repo/user"
	"github.com/proflink/proflink_backend/pkg/util/password"
)

func newTestAuthService(t *testing.T) (*authService, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return &authService{db: client, cfg: &config.Config{}}, client
}

func seedAccount(t *testing.T, client *repo.Client, role entuser.Role, pass string, verified bool) *repo.User {
	t.Helper()
	hash, err := password.Hash(pass)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := client.User.Create().
		SetFirstName("Sam").
		SetLastName("Rivera").
		SetEmail(string(role) + "@example.edu").
		SetRole(role).
		SetRegistrationCode(strings.ToUpper(string(role)[:3]) + "-000001").
		SetPasswordHash(hash).
		SetEmailVerified(verified).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return u
}

func TestAllocateSequenceIsMonotonicPerRole(t *testing.T) {
	_, client := newTestAuthService(t)
	ctx := context.Background()

	tx, err := client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}

	// First allocation creates the counter row and hands out 1.
	seq, err := allocateSequence(ctx, tx, "student")
	if err != nil {
		t.Fatalf("allocateSequence() error = %v", err)
	}
	if seq != 1 {
		t.Errorf("first student seq = %d, want 1", seq)
	}

	seq, err = allocateSequence(ctx, tx, "student")
	if err != nil {
		t.Fatalf("allocateSequence() error = %v", err)
	}
	if seq != 2 {
		t.Errorf("second student seq = %d, want 2", seq)
	}

	// Roles count independently.
	seq, err = allocateSequence(ctx, tx, "faculty")
	if err != nil {
		t.Fatalf("allocateSequence() error = %v", err)
	}
	if seq != 1 {
		t.Errorf("first faculty seq = %d, want 1", seq)
	}

	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}

	// A later transaction continues where the committed counter left off.
	tx, err = client.Tx(ctx)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	seq, err = allocateSequence(ctx, tx, "student")
	if err != nil {
		t.Fatalf("allocateSequence() error = %v", err)
	}
	if seq != 3 {
		t.Errorf("student seq after commit = %d, want 3", seq)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func TestLoginRejectsRoleMismatch(t *testing.T) {
	svc, client := newTestAuthService(t)
	ctx := context.Background()

	faculty := seedAccount(t, client, entuser.RoleFaculty, "correct-horse", true)

	_, err := svc.Login(ctx, LoginRequest{
		Email:    faculty.Email,
		Password: "correct-horse",
		Role:     "student",
	})
	if !errors.Is(err, ErrFacultyAccount) {
		t.Errorf("faculty on student tab: err = %v, want ErrFacultyAccount", err)
	}

	// A wrong tab with the right password is not a failed credential.
	got, err := client.User.Get(ctx, faculty.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.FailedLoginAttempts != 0 {
		t.Errorf("failed_login_attempts = %d, want 0", got.FailedLoginAttempts)
	}

	student := seedAccount(t, client, entuser.RoleStudent, "correct-horse", true)
	_, err = svc.Login(ctx, LoginRequest{
		Email:    student.Email,
		Password: "correct-horse",
		Role:     "faculty",
	})
	if !errors.Is(err, ErrStudentAccount) {
		t.Errorf("student on faculty tab: err = %v, want ErrStudentAccount", err)
	}
}

func TestLoginRejectsUnverifiedEmail(t *testing.T) {
	svc, client := newTestAuthService(t)

	u := seedAccount(t, client, entuser.RoleStudent, "correct-horse", false)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    u.Email,
		Password: "correct-horse",
		Role:     "student",
	})
	if !errors.Is(err, ErrEmailNotVerified) {
		t.Errorf("err = %v, want ErrEmailNotVerified", err)
	}
}

func TestLoginWrongPasswordCountsAttempt(t *testing.T) {
	svc, client := newTestAuthService(t)
	ctx := context.Background()

	u := seedAccount(t, client, entuser.RoleStudent, "correct-horse", true)

	_, err := svc.Login(ctx, LoginRequest{Email: u.Email, Password: "wrong", Role: "student"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	got, err := client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.FailedLoginAttempts != 1 {
		t.Errorf("failed_login_attempts = %d, want 1", got.FailedLoginAttempts)
	}
	if got.LockedUntil != nil {
		t.Errorf("locked_until set after one failure: %v", got.LockedUntil)
	}
}

func TestLoginLocksAccountAfterMaxAttempts(t *testing.T) {
	svc, client := newTestAuthService(t)
	ctx := context.Background()

	u := seedAccount(t, client, entuser.RoleStudent, "correct-horse", true)

	for i := 0; i < maxLoginAttempts; i++ {
		_, err := svc.Login(ctx, LoginRequest{Email: u.Email, Password: "wrong", Role: "student"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: err = %v, want ErrInvalidCredentials", i+1, err)
		}
	}

	got, err := client.User.Get(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LockedUntil == nil || !got.LockedUntil.After(time.Now()) {
		t.Fatalf("locked_until = %v, want a future lock", got.LockedUntil)
	}

	// Even the right password bounces while the lock holds.
	_, err = svc.Login(ctx, LoginRequest{Email: u.Email, Password: "correct-horse", Role: "student"})
	if !errors.Is(err, ErrAccountLocked) {
		t.Errorf("err = %v, want ErrAccountLocked", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.edu",
		Password: "whatever",
		Role:     "student",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}
