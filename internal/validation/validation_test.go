package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamnotfound/signup-backend/internal/apperr"
)

func TestNormalizeWhatsAppNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "already canonical", raw: "+201234567890", want: "+201234567890"},
		{name: "country code without plus", raw: "201234567890", want: "+201234567890"},
		{name: "bare local number", raw: "1234567890", want: "+201234567890"},
		{name: "formatted with spaces and dashes", raw: "+20 123-456-7890", want: "+201234567890"},
		{name: "too short", raw: "12345", wantErr: true},
		{name: "country code but wrong length", raw: "2012345678", wantErr: true},
		{name: "letters only", raw: "not a number", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWhatsAppNumber(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateMember(t *testing.T) {
	valid := func() MemberInput {
		return MemberInput{
			Name:           "Aya",
			WhatsappNumber: "+201234567890",
			ProjectID:      uuid.NewString(),
			DeviceID:       "D1",
		}
	}

	t.Run("valid input normalizes number", func(t *testing.T) {
		in := valid()
		in.WhatsappNumber = "1234567890"
		require.NoError(t, ValidateMember(&in))
		assert.Equal(t, "+201234567890", in.WhatsappNumber)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		in := valid()
		in.Name = "  Aya  "
		require.NoError(t, ValidateMember(&in))
		assert.Equal(t, "Aya", in.Name)
	})

	t.Run("missing name", func(t *testing.T) {
		in := valid()
		in.Name = "   "
		assert.ErrorIs(t, ValidateMember(&in), apperr.ErrValidation)
	})

	t.Run("malformed project id", func(t *testing.T) {
		in := valid()
		in.ProjectID = "not-a-uuid"
		assert.ErrorIs(t, ValidateMember(&in), apperr.ErrValidation)
	})

	t.Run("section number out of range", func(t *testing.T) {
		in := valid()
		five := 5
		in.SectionNumber = &five
		assert.ErrorIs(t, ValidateMember(&in), apperr.ErrValidation)

		zero := 0
		in.SectionNumber = &zero
		assert.ErrorIs(t, ValidateMember(&in), apperr.ErrValidation)
	})

	t.Run("section number in range", func(t *testing.T) {
		for n := 1; n <= 4; n++ {
			in := valid()
			section := n
			in.SectionNumber = &section
			assert.NoError(t, ValidateMember(&in))
		}
	})

	t.Run("missing device id passes schema validation", func(t *testing.T) {
		// The device-id requirement is the workflow's guard, evaluated after
		// the duplicate check, so schema validation must not reject it.
		in := valid()
		in.DeviceID = ""
		assert.NoError(t, ValidateMember(&in))
	})
}

func TestValidateProjectName(t *testing.T) {
	name, err := ValidateProjectName("  Web Dev  ")
	require.NoError(t, err)
	assert.Equal(t, "Web Dev", name)

	_, err = ValidateProjectName("   ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
