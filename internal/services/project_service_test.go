package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamnotfound/signup-backend/internal/apperr"
	"github.com/teamnotfound/signup-backend/internal/store"
	"github.com/teamnotfound/signup-backend/internal/validation"
)

func TestProjectCreateAndGet(t *testing.T) {
	svc := NewProjectService(store.NewMemStore())
	ctx := context.Background()

	project, err := svc.Create(ctx, "  Web Dev  ")
	require.NoError(t, err)
	assert.Equal(t, "Web Dev", project.Name)
	assert.NotEqual(t, uuid.Nil, project.ID)

	got, err := svc.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
}

func TestProjectCreateEmptyName(t *testing.T) {
	svc := NewProjectService(store.NewMemStore())

	_, err := svc.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestProjectGetUnknown(t *testing.T) {
	svc := NewProjectService(store.NewMemStore())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProjectDeleteCascades(t *testing.T) {
	st := store.NewMemStore()
	projects := NewProjectService(st)
	members := NewMemberService(st)
	ctx := context.Background()

	project, err := projects.Create(ctx, "Web Dev")
	require.NoError(t, err)

	for _, reg := range []struct{ name, number string }{
		{"Aya", "+201234567890"},
		{"Omar", "+201098765432"},
	} {
		in := validation.MemberInput{
			Name:           reg.name,
			WhatsappNumber: reg.number,
			ProjectID:      project.ID.String(),
			DeviceID:       uuid.NewString(),
		}
		_, _, err := members.Register(ctx, &in)
		require.NoError(t, err)
	}

	require.NoError(t, projects.Delete(ctx, project.ID))

	_, err = projects.Get(ctx, project.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	remaining, err := projects.Members(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestProjectDeleteUnknown(t *testing.T) {
	svc := NewProjectService(store.NewMemStore())

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	svc := NewProjectService(store.NewMemStore())
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))
	first, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 3)

	require.NoError(t, svc.SeedDefaults(ctx))
	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 3)
}
