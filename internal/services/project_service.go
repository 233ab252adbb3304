package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teamnotfound/signup-backend/internal/apperr"
	"github.com/teamnotfound/signup-backend/internal/models"
	"github.com/teamnotfound/signup-backend/internal/store"
	"github.com/teamnotfound/signup-backend/internal/validation"
)

// ProjectService owns the admin-side project lifecycle: create, list, get,
// delete with member cascade. Projects have no update operation.
type ProjectService struct {
	store store.Store
}

func NewProjectService(st store.Store) *ProjectService {
	return &ProjectService{store: st}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Internal(err)
	}
	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, name string) (*models.Project, error) {
	name, err := validation.ValidateProjectName(name)
	if err != nil {
		return nil, err
	}

	project := models.Project{Name: name}
	if err := s.store.CreateProject(ctx, &project); err != nil {
		return nil, apperr.Internal(err)
	}

	slog.Info("project created", "project_id", project.ID, "name", project.Name)
	return &project, nil
}

// Delete removes the project and cascades to every member referencing it.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("Project not found")
		}
		return apperr.Internal(err)
	}
	slog.Info("project deleted", "project_id", id)
	return nil
}

// Members lists a project's registrations.
func (s *ProjectService) Members(ctx context.Context, projectID uuid.UUID) ([]models.TeamMember, error) {
	members, err := s.store.ListMembers(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return members, nil
}

var defaultProjects = []string{"Web Development", "Mobile App", "AI/ML Project"}

// SeedDefaults creates the starter projects when the store is empty. Safe to
// call on every boot.
func (s *ProjectService) SeedDefaults(ctx context.Context) error {
	existing, err := s.store.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing projects: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, name := range defaultProjects {
		if _, err := s.Create(ctx, name); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", name, err)
		}
	}
	slog.Info("seeded default projects", "count", len(defaultProjects))
	return nil
}
