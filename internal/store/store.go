// Package store abstracts persistence for projects and team members. The
// workflows only see this interface; the GORM implementation backs the
// server and the memory implementation backs tests.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/teamnotfound/signup-backend/internal/models"
)

// ErrNotFound is returned for lookups and deletes of unknown identifiers.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates the per-project
// uniqueness of the whatsapp number.
var ErrDuplicate = errors.New("duplicate member")

type Store interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) error
	// DeleteProject removes the project and all members referencing it.
	DeleteProject(ctx context.Context, id uuid.UUID) error

	ListMembers(ctx context.Context, projectID uuid.UUID) ([]models.TeamMember, error)
	GetMember(ctx context.Context, id uuid.UUID) (*models.TeamMember, error)
	// MemberByNumber matches the canonical whatsapp number exactly within a
	// project; MemberByName matches case-insensitively. Both are the
	// de-duplication read path for registration.
	MemberByNumber(ctx context.Context, projectID uuid.UUID, number string) (*models.TeamMember, error)
	MemberByName(ctx context.Context, projectID uuid.UUID, name string) (*models.TeamMember, error)
	CreateMember(ctx context.Context, m *models.TeamMember) error
	// SetMemberUser backfills the ownership marker after insertion.
	SetMemberUser(ctx context.Context, id, userID uuid.UUID) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
}
