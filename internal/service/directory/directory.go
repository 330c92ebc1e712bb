// Package directory maintains the student-facing faculty listing. Entries are
// a projection of User + FacultyProfile, refreshed by the sync worker whenever
// a faculty profile is saved. Reads never join against the source tables.
package directory

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/proflink/proflink_backend/internal/repo"
	entdir "github.com/proflink/proflink_backend/internal/repo/directoryentry"
	entfprofile "github.com/proflink/proflink_backend/internal/repo/facultyprofile"
	entuser "github.com/proflink/proflink_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	Department *string
	Title      *string
	Page       int
	PerPage    int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) ([]*repo.DirectoryEntry, error)
	GetByID(ctx context.Context, facultyID uuid.UUID) (*repo.DirectoryEntry, error)
	Sync(ctx context.Context, facultyID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type directoryService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &directoryService{db: db}
}

func (s *directoryService) List(ctx context.Context, req ListRequest) ([]*repo.DirectoryEntry, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.DirectoryEntry.Query()

	if req.Department != nil {
		q = q.Where(entdir.Department(*req.Department))
	}
	if req.Title != nil {
		q = q.Where(entdir.Title(*req.Title))
	}

	entries, err := q.
		Order(entdir.ByName(sql.OrderAsc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}
	return entries, nil
}

func (s *directoryService) GetByID(ctx context.Context, facultyID uuid.UUID) (*repo.DirectoryEntry, error) {
	e, err := s.db.DirectoryEntry.Get(ctx, facultyID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get directory entry: %w", err)
	}
	return e, nil
}

// Sync rebuilds the directory entry for one faculty member from the current
// User and FacultyProfile rows. Called from the worker on
// proflink.directory.sync events.
func (s *directoryService) Sync(ctx context.Context, facultyID uuid.UUID) error {
	u, err := s.db.User.Query().
		Where(entuser.ID(facultyID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// User was deleted after the event was published. Drop the
			// stale entry if one exists.
			_, derr := s.db.DirectoryEntry.Delete().
				Where(entdir.ID(facultyID)).
				Exec(ctx)
			return derr
		}
		return fmt.Errorf("load user: %w", err)
	}
	if u.Role != entuser.RoleFaculty {
		return ErrNotFaculty
	}

	var title, department *string
	fp, err := s.db.FacultyProfile.Query().
		Where(entfprofile.UserID(facultyID)).
		Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return fmt.Errorf("load faculty profile: %w", err)
	}
	if fp != nil {
		title = fp.Title
		department = fp.Department
	}

	err = s.db.DirectoryEntry.Create().
		SetID(u.ID).
		SetName(u.FirstName + " " + u.LastName).
		SetEmail(u.Email).
		SetNillableTitle(title).
		SetNillableDepartment(department).
		OnConflictColumns(entdir.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert directory entry: %w", err)
	}
	return nil
}
