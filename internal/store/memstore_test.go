package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamnotfound/signup-backend/internal/models"
)

func TestMemStoreAssignsIDs(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	project := models.Project{Name: "Web Dev"}
	require.NoError(t, st.CreateProject(ctx, &project))
	assert.NotEqual(t, uuid.Nil, project.ID)

	member := models.TeamMember{
		Name:           "Aya",
		WhatsappNumber: "+201234567890",
		ProjectID:      project.ID,
	}
	require.NoError(t, st.CreateMember(ctx, &member))
	assert.NotEqual(t, uuid.Nil, member.ID)
	assert.Equal(t, uuid.Nil, member.UserID)
}

func TestMemStoreSetMemberUser(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	member := models.TeamMember{Name: "Aya", WhatsappNumber: "+201234567890", ProjectID: uuid.New()}
	require.NoError(t, st.CreateMember(ctx, &member))

	require.NoError(t, st.SetMemberUser(ctx, member.ID, member.ID))
	got, err := st.GetMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, got.UserID)

	assert.ErrorIs(t, st.SetMemberUser(ctx, uuid.New(), uuid.New()), ErrNotFound)
}

func TestMemStoreLookups(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()
	projectID := uuid.New()

	member := models.TeamMember{Name: "Aya", WhatsappNumber: "+201234567890", ProjectID: projectID}
	require.NoError(t, st.CreateMember(ctx, &member))

	byNumber, err := st.MemberByNumber(ctx, projectID, "+201234567890")
	require.NoError(t, err)
	assert.Equal(t, member.ID, byNumber.ID)

	// Number matching is exact; name matching is case-insensitive.
	_, err = st.MemberByNumber(ctx, projectID, "+201234567891")
	assert.ErrorIs(t, err, ErrNotFound)

	byName, err := st.MemberByName(ctx, projectID, "aYa")
	require.NoError(t, err)
	assert.Equal(t, member.ID, byName.ID)

	// Lookups are scoped to the project.
	_, err = st.MemberByNumber(ctx, uuid.New(), "+201234567890")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreDeleteProjectCascades(t *testing.T) {
	st := NewMemStore()
	ctx := context.Background()

	project := models.Project{Name: "Web Dev"}
	require.NoError(t, st.CreateProject(ctx, &project))
	other := models.Project{Name: "Mobile App"}
	require.NoError(t, st.CreateProject(ctx, &other))

	inProject := models.TeamMember{Name: "Aya", WhatsappNumber: "+201234567890", ProjectID: project.ID}
	require.NoError(t, st.CreateMember(ctx, &inProject))
	elsewhere := models.TeamMember{Name: "Omar", WhatsappNumber: "+201098765432", ProjectID: other.ID}
	require.NoError(t, st.CreateMember(ctx, &elsewhere))

	require.NoError(t, st.DeleteProject(ctx, project.ID))

	_, err := st.GetMember(ctx, inProject.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.GetMember(ctx, elsewhere.ID)
	assert.NoError(t, err)
}
