package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teamnotfound/signup-backend/internal/models"
)

// GormStore is the Postgres-backed store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Order("created_at").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *GormStore) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

func (s *GormStore) CreateProject(ctx context.Context, p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (s *GormStore) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return fmt.Errorf("failed to delete project members: %w", err)
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *GormStore) ListMembers(ctx context.Context, projectID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *GormStore) GetMember(ctx context.Context, id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := s.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &member, nil
}

func (s *GormStore) MemberByNumber(ctx context.Context, projectID uuid.UUID, number string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND whatsapp_number = ?", projectID, number).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by number: %w", err)
	}
	return &member, nil
}

func (s *GormStore) MemberByName(ctx context.Context, projectID uuid.UUID, name string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND LOWER(name) = LOWER(?)", projectID, name).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by name: %w", err)
	}
	return &member, nil
}

func (s *GormStore) CreateMember(ctx context.Context, m *models.TeamMember) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		// The composite unique index over (project_id, whatsapp_number)
		// closes the check-then-insert race the workflow leaves open.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (s *GormStore) SetMemberUser(ctx context.Context, id, userID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("id = ?", id).
		Update("user_id", userID)
	if result.Error != nil {
		return fmt.Errorf("failed to set member user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteMember(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
