package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamnotfound/signup-backend/internal/apperr"
	"github.com/teamnotfound/signup-backend/internal/models"
	"github.com/teamnotfound/signup-backend/internal/session"
	"github.com/teamnotfound/signup-backend/internal/store"
	"github.com/teamnotfound/signup-backend/internal/validation"
)

func setupMemberTest(t *testing.T) (*MemberService, *store.MemStore, *models.Project) {
	t.Helper()
	st := store.NewMemStore()
	project := models.Project{Name: "Web Dev"}
	require.NoError(t, st.CreateProject(context.Background(), &project))
	return NewMemberService(st), st, &project
}

func registration(projectID uuid.UUID) validation.MemberInput {
	return validation.MemberInput{
		Name:           "Aya",
		WhatsappNumber: "+201234567890",
		ProjectID:      projectID.String(),
		DeviceID:       "D1",
	}
}

func TestRegisterBindsIdentity(t *testing.T) {
	svc, st, project := setupMemberTest(t)
	ctx := context.Background()

	in := registration(project.ID)
	member, upd, err := svc.Register(ctx, &in)
	require.NoError(t, err)

	// The ownership marker is backfilled to the member's own id and the
	// session update binds the same id.
	assert.Equal(t, member.ID, member.UserID)
	assert.Equal(t, member.ID.String(), upd.SetUserID)
	assert.False(t, upd.ClearUserID)

	stored, err := st.GetMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, stored.UserID)
	assert.Equal(t, "D1", stored.DeviceID)
	assert.Equal(t, "+201234567890", stored.WhatsappNumber)
}

func TestRegisterRequiresDeviceID(t *testing.T) {
	svc, _, project := setupMemberTest(t)

	in := registration(project.ID)
	in.DeviceID = ""
	_, _, err := svc.Register(context.Background(), &in)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRegisterUnknownProject(t *testing.T) {
	svc, _, _ := setupMemberTest(t)

	in := registration(uuid.New())
	_, _, err := svc.Register(context.Background(), &in)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRegisterDuplicateNumber(t *testing.T) {
	svc, _, project := setupMemberTest(t)
	ctx := context.Background()

	first := registration(project.ID)
	_, _, err := svc.Register(ctx, &first)
	require.NoError(t, err)

	// Same number, different name: still a conflict.
	second := registration(project.ID)
	second.Name = "Someone Else"
	_, _, err = svc.Register(ctx, &second)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRegisterDuplicateNameCaseInsensitive(t *testing.T) {
	svc, _, project := setupMemberTest(t)
	ctx := context.Background()

	first := registration(project.ID)
	_, _, err := svc.Register(ctx, &first)
	require.NoError(t, err)

	second := registration(project.ID)
	second.Name = "AYA"
	second.WhatsappNumber = "+201098765432"
	_, _, err = svc.Register(ctx, &second)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRegisterNumberConflictWinsOverName(t *testing.T) {
	svc, _, project := setupMemberTest(t)
	ctx := context.Background()

	first := registration(project.ID)
	_, _, err := svc.Register(ctx, &first)
	require.NoError(t, err)

	// Both the number and the name collide; the error reports the number.
	second := registration(project.ID)
	_, _, err = svc.Register(ctx, &second)
	require.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "WhatsApp number")
}

func TestRegisterSameNumberDifferentProjects(t *testing.T) {
	svc, st, project := setupMemberTest(t)
	ctx := context.Background()

	other := models.Project{Name: "Mobile App"}
	require.NoError(t, st.CreateProject(ctx, &other))

	first := registration(project.ID)
	_, _, err := svc.Register(ctx, &first)
	require.NoError(t, err)

	// Uniqueness is scoped per project.
	second := registration(other.ID)
	_, _, err = svc.Register(ctx, &second)
	assert.NoError(t, err)
}

func TestRemoveUnknownMember(t *testing.T) {
	svc, _, _ := setupMemberTest(t)

	_, err := svc.Remove(context.Background(), uuid.New(), session.Identity{IsAdmin: true})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRemoveForbiddenForNonOwner(t *testing.T) {
	svc, st, project := setupMemberTest(t)
	ctx := context.Background()

	in := registration(project.ID)
	member, _, err := svc.Register(ctx, &in)
	require.NoError(t, err)

	ident := session.Identity{UserID: uuid.NewString(), DeviceID: "D1"}
	_, err = svc.Remove(ctx, member.ID, ident)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// Guard failure leaves the store untouched.
	_, err = st.GetMember(ctx, member.ID)
	assert.NoError(t, err)
}

func TestRemoveForbiddenForAnonymous(t *testing.T) {
	svc, _, project := setupMemberTest(t)
	ctx := context.Background()

	in := registration(project.ID)
	member, _, err := svc.Register(ctx, &in)
	require.NoError(t, err)

	_, err = svc.Remove(ctx, member.ID, session.Identity{DeviceID: "D1"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestRemoveOwnerWithWrongDevice(t *testing.T) {
	svc, st, project := setupMemberTest(t)
	ctx := context.Background()

	in := registration(project.ID)
	member, _, err := svc.Register(ctx, &in)
	require.NoError(t, err)

	// Session ownership alone is not enough once a device token is recorded.
	ident := session.Identity{UserID: member.ID.String(), DeviceID: "D2"}
	_, err = svc.Remove(ctx, member.ID, ident)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = st.GetMember(ctx, member.ID)
	assert.NoError(t, err)
}

func TestRemoveByOwner(t *testing.T) {
	svc, st, project := setupMemberTest(t)
	ctx := context.Background()

	in := registration(project.ID)
	member, _, err := svc.Register(ctx, &in)
	require.NoError(t, err)

	ident := session.Identity{UserID: member.ID.String(), DeviceID: "D1"}
	upd, err := svc.Remove(ctx, member.ID, ident)
	require.NoError(t, err)

	// Self-removal logs the caller out of that identity.
	assert.True(t, upd.ClearUserID)

	_, err = st.GetMember(ctx, member.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoveByAdminIgnoresOwnershipAndDevice(t *testing.T) {
	svc, st, project := setupMemberTest(t)
	ctx := context.Background()

	in := registration(project.ID)
	member, _, err := svc.Register(ctx, &in)
	require.NoError(t, err)

	ident := session.Identity{IsAdmin: true}
	upd, err := svc.Remove(ctx, member.ID, ident)
	require.NoError(t, err)

	// Admin removal must not touch the admin's own session identity.
	assert.False(t, upd.ClearUserID)

	_, err = st.GetMember(ctx, member.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
