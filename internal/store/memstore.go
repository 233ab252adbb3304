package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/teamnotfound/signup-backend/internal/models"
)

// MemStore is a mutex-guarded in-memory Store. It mirrors the Postgres
// implementation closely enough to back the workflow and handler tests
// without a database. Unlike GormStore it enforces no unique index, so it
// relies on the workflow's duplicate pre-check alone.
type MemStore struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]models.Project
	members  map[uuid.UUID]models.TeamMember
}

func NewMemStore() *MemStore {
	return &MemStore{
		projects: make(map[uuid.UUID]models.Project),
		members:  make(map[uuid.UUID]models.TeamMember),
	}
}

func (s *MemStore) ListProjects(_ context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})
	return projects, nil
}

func (s *MemStore) GetProject(_ context.Context, id uuid.UUID) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemStore) CreateProject(_ context.Context, p *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.projects[p.ID] = *p
	return nil
}

func (s *MemStore) DeleteProject(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	for mid, m := range s.members {
		if m.ProjectID == id {
			delete(s.members, mid)
		}
	}
	return nil
}

func (s *MemStore) ListMembers(_ context.Context, projectID uuid.UUID) ([]models.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]models.TeamMember, 0)
	for _, m := range s.members {
		if m.ProjectID == projectID {
			members = append(members, m)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].CreatedAt.Before(members[j].CreatedAt)
	})
	return members, nil
}

func (s *MemStore) GetMember(_ context.Context, id uuid.UUID) (*models.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemStore) MemberByNumber(_ context.Context, projectID uuid.UUID, number string) (*models.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ProjectID == projectID && m.WhatsappNumber == number {
			member := m
			return &member, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) MemberByName(_ context.Context, projectID uuid.UUID, name string) (*models.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ProjectID == projectID && strings.EqualFold(m.Name, name) {
			member := m
			return &member, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateMember(_ context.Context, m *models.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.members[m.ID] = *m
	return nil
}

func (s *MemStore) SetMemberUser(_ context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[id]
	if !ok {
		return ErrNotFound
	}
	m.UserID = userID
	s.members[id] = m
	return nil
}

func (s *MemStore) DeleteMember(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[id]; !ok {
		return ErrNotFound
	}
	delete(s.members, id)
	return nil
}
