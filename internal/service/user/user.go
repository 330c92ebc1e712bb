// Package user serves the authenticated account itself: the /users/me
// surface. Role profiles live in the profile service.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/proflink/proflink_backend/internal/repo"
	entuser "github.com/proflink/proflink_backend/internal/repo/user"
)

type UpdateRequest struct {
	FirstName *string
	LastName  *string
}

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

// GetByID retrieves a user by ID, excluding soft-deleted users.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(
			entuser.ID(id),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)

	if req.FirstName != nil {
		name := strings.TrimSpace(*req.FirstName)
		if name == "" || len(name) > 100 {
			return nil, ErrInvalidFirstName
		}
		upd = upd.SetFirstName(name)
	}
	if req.LastName != nil {
		name := strings.TrimSpace(*req.LastName)
		if name == "" || len(name) > 100 {
			return nil, ErrInvalidLastName
		}
		upd = upd.SetLastName(name)
	}

	u, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// Delete soft-deletes the account. Open sessions expire on their own; service
// lookups exclude soft-deleted rows, so the account is unusable immediately.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.db.User.UpdateOne(u).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
