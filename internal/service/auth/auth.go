package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/proflink/proflink_backend/config"
	"github.com/proflink/proflink_backend/internal/repo"
	entrolecounter "github.com/proflink/proflink_backend/internal/repo/rolecounter"
	entuser "github.com/proflink/proflink_backend/internal/repo/user"
	entusersession "github.com/proflink/proflink_backend/internal/repo/usersession"
	"github.com/proflink/proflink_backend/pkg/authorize"
	"github.com/proflink/proflink_backend/pkg/crypto"
	"github.com/proflink/proflink_backend/pkg/email"
	pasetotoken "github.com/proflink/proflink_backend/pkg/paseto"
	"github.com/proflink/proflink_backend/pkg/util/codes"
	"github.com/proflink/proflink_backend/pkg/util/otp"
	"github.com/proflink/proflink_backend/pkg/util/password"
)

const (
	maxVerifyAttempts = 5
	accountLockMins   = 15
	maxLoginAttempts  = 5

	// counterRetries bounds the optimistic conditional-update loop when
	// allocating a registration code under concurrent signups.
	counterRetries = 10
)

// redisKeyVerify returns the Redis key for the verification-code hash of an email.
func redisKeyVerify(email string) string { return "verify:" + email }

// redisKeyVerifyAttempts returns the Redis key for the verification attempt counter.
func redisKeyVerifyAttempts(email string) string { return "verify:attempts:" + email }

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string // "student" or "faculty"
}

// RegisterResult reports what was created; registration never signs the user in.
type RegisterResult struct {
	UserID           uuid.UUID
	RegistrationCode string
}

type VerifyEmailRequest struct {
	Email string
	Code  string
}

type LoginRequest struct {
	Email    string
	Password string
	// Role is the tab selected on the login form; a mismatch with the stored
	// role rejects the attempt without establishing a session.
	Role string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	VerifyEmail(ctx context.Context, req VerifyEmailRequest) error
	ResendVerification(ctx context.Context, emailAddr string) error
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	mailer *email.Client
	paseto *pasetotoken.Manager
	authz  authorize.IAuthorization
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		mailer: mailer,
		paseto: paseto,
		authz:  authz,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	// Normalise
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if req.Role != entuser.RoleStudent.String() && req.Role != entuser.RoleFaculty.String() {
		return nil, ErrInvalidRole
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	// Check email uniqueness
	exists, err := s.db.User.Query().Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Allocate the registration code and create the user in one transaction so
	// a failed insert never burns a sequence number.
	var u *repo.User
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	seq, err := allocateSequence(ctx, tx, req.Role)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("allocate registration code: %w", err)
	}
	regCode, err := codes.FormatRegistrationCode(req.Role, seq)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("format registration code: %w", err)
	}

	u, err = tx.User.Create().
		SetFirstName(req.FirstName).
		SetLastName(req.LastName).
		SetEmail(req.Email).
		SetRole(entuser.Role(req.Role)).
		SetRegistrationCode(regCode).
		SetPasswordHash(passHash).
		SetEmailVerified(false).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit registration: %w", err)
	}

	// Grant RBAC roles: self scope plus the app role matching the account role.
	if err := authorize.AssignUserSelfRole(ctx, s.authz, u.ID.String()); err != nil {
		return nil, fmt.Errorf("assign self role: %w", err)
	}
	if err := authorize.AssignAppRole(ctx, s.authz, u.ID.String(), authorize.UserRoleToRBACRole[req.Role]); err != nil {
		return nil, fmt.Errorf("assign app role: %w", err)
	}

	// Send the verification code. The account stays unverified until confirmed;
	// the user is NOT signed in here.
	if err := s.sendVerificationCode(ctx, u); err != nil {
		return nil, err
	}

	return &RegisterResult{UserID: u.ID, RegistrationCode: regCode}, nil
}

// allocateSequence hands out the next per-role sequence number using a
// conditional update; a rows-affected count of zero means another registration
// won the race and we retry against the fresh value.
func allocateSequence(ctx context.Context, tx *repo.Tx, role string) (int64, error) {
	// Ensure the counter row exists before reading it. DO NOTHING on conflict
	// keeps a concurrent first registration from raising a unique violation,
	// which on Postgres would abort the whole surrounding transaction and make
	// any retry inside it fail. Ent reports the skipped insert as ErrNoRows.
	err := tx.RoleCounter.Create().
		SetRole(role).
		SetNextSeq(1).
		OnConflictColumns(entrolecounter.FieldRole).
		DoNothing().
		Exec(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("ensure counter: %w", err)
	}

	for i := 0; i < counterRetries; i++ {
		rc, err := tx.RoleCounter.Query().
			Where(entrolecounter.Role(role)).
			Only(ctx)
		if err != nil {
			return 0, fmt.Errorf("load counter: %w", err)
		}

		n, err := tx.RoleCounter.Update().
			Where(entrolecounter.Role(role), entrolecounter.NextSeq(rc.NextSeq)).
			SetNextSeq(rc.NextSeq + 1).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("bump counter: %w", err)
		}
		if n == 1 {
			return rc.NextSeq, nil
		}
		// Lost the race; retry with the current value.
	}
	return 0, fmt.Errorf("counter contention for role %q", role)
}

// ---------------------------------------------------------------------------
// VerifyEmail
// ---------------------------------------------------------------------------

func (s *authService) VerifyEmail(ctx context.Context, req VerifyEmailRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Code = strings.TrimSpace(req.Code)

	// Get stored code hash
	codeHash, err := s.rdb.Get(ctx, redisKeyVerify(req.Email)).Result()
	if err == redis.Nil {
		return ErrCodeExpired
	}
	if err != nil {
		return fmt.Errorf("redis get verification code: %w", err)
	}

	// Check attempt count
	attempts, _ := s.rdb.Get(ctx, redisKeyVerifyAttempts(req.Email)).Int()
	if attempts >= maxVerifyAttempts {
		return ErrCodeMaxAttempts
	}

	// Verify code
	if err := otp.Verify(codeHash, req.Code); err != nil {
		s.rdb.Incr(ctx, redisKeyVerifyAttempts(req.Email))
		return ErrCodeInvalid
	}

	// Clean up verification keys
	s.rdb.Del(ctx, redisKeyVerify(req.Email), redisKeyVerifyAttempts(req.Email))

	// Mark email as verified
	u, err := s.db.User.Query().Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).Only(ctx)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	_, err = s.db.User.UpdateOne(u).
		SetEmailVerified(true).
		SetEmailVerifiedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update email_verified: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// ResendVerification
// ---------------------------------------------------------------------------

func (s *authService) ResendVerification(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	u, err := s.db.User.Query().Where(entuser.Email(emailAddr), entuser.DeletedAtIsNil()).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Don't reveal whether the address exists.
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}
	if u.EmailVerified {
		return nil
	}

	return s.sendVerificationCode(ctx, u)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Check lockout
	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, ErrAccountLocked
	}

	// Verify password before the role check so a wrong-tab guess cannot be
	// used to probe which role an address belongs to.
	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	if !u.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	// Enforce the role selected on the login form; no session on mismatch.
	if req.Role != "" && req.Role != u.Role.String() {
		if u.Role == entuser.RoleFaculty {
			return nil, ErrFacultyAccount
		}
		return nil, ErrStudentAccount
	}

	// Reset failure counters
	now := time.Now()
	s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		SetNillableLockedUntil(nil).
		SetLastLoginAt(now).
		Save(ctx)

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	// Check session exists
	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	// Mark revoked in DB (best-effort; not critical path)
	now := time.Now()
	s.db.UserSession.Update().
		Where(entusersession.SessionID(sessionID.String())).
		SetRevokedAt(now).
		Save(ctx)

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendVerificationCode(ctx context.Context, u *repo.User) error {
	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}

	ttl := time.Duration(s.cfg.Authentication.VerificationTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	// Store hash
	if err := s.rdb.Set(ctx, redisKeyVerify(u.Email), otp.Hash(code), ttl).Err(); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	// Reset attempts
	s.rdb.Set(ctx, redisKeyVerifyAttempts(u.Email), "0", ttl+5*time.Minute)

	msg := email.BuildVerificationEmail(email.VerificationEmailData{
		FirstName:     u.FirstName,
		Email:         u.Email,
		Code:          code,
		ExpiryMinutes: int(ttl.Minutes()),
		AppName:       s.cfg.App.Name,
	})
	if err := s.mailer.Send(ctx, msg); err != nil {
		// Log but don't fail — email delivery shouldn't block registration
		slog.Warn("failed to send verification email", "email", u.Email, "error", err)
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	// Store in Redis
	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// Issue tokens
	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	expiresAt := time.Now().Add(refreshTTL)
	refreshHash := crypto.Hash(refresh) // SHA-256 of refresh token
	s.db.UserSession.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(refreshHash).
		SetExpiresAt(expiresAt).
		Save(ctx)

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts).
		SetLastFailedLoginAt(time.Now())

	if attempts >= maxLoginAttempts {
		lockUntil := time.Now().Add(accountLockMins * time.Minute)
		upd = upd.SetLockedUntil(lockUntil)
	}
	upd.Save(ctx)
}
