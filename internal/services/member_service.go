package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/teamnotfound/signup-backend/internal/apperr"
	"github.com/teamnotfound/signup-backend/internal/models"
	"github.com/teamnotfound/signup-backend/internal/session"
	"github.com/teamnotfound/signup-backend/internal/store"
	"github.com/teamnotfound/signup-backend/internal/validation"
)

// MemberService owns the registration and removal workflows. Both take the
// caller's identity snapshot and return a session.Update for the handler to
// apply; they never mutate session state themselves.
type MemberService struct {
	store store.Store
}

func NewMemberService(st store.Store) *MemberService {
	return &MemberService{store: st}
}

// Register validates and persists a new member, then backfills its ownership
// marker and binds the identity to the caller's session.
//
// The duplicate pre-check runs before the device-id requirement so a
// colliding number reports as a conflict even when the device id is also
// missing, and the number check takes precedence over the name check. The
// pre-check and the insert are not atomic; under Postgres the unique index
// catches the race and reports the same conflict.
func (s *MemberService) Register(ctx context.Context, in *validation.MemberInput) (*models.TeamMember, session.Update, error) {
	if err := validation.ValidateMember(in); err != nil {
		return nil, session.Update{}, err
	}

	projectID, err := uuid.Parse(in.ProjectID)
	if err != nil {
		return nil, session.Update{}, apperr.Validation("invalid member data")
	}
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, session.Update{}, apperr.Validation("project does not exist")
		}
		return nil, session.Update{}, apperr.Internal(err)
	}

	if _, err := s.store.MemberByNumber(ctx, projectID, in.WhatsappNumber); err == nil {
		return nil, session.Update{}, apperr.Conflict("A member with this WhatsApp number is already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, session.Update{}, apperr.Internal(err)
	}
	if _, err := s.store.MemberByName(ctx, projectID, in.Name); err == nil {
		return nil, session.Update{}, apperr.Conflict("A member with this name is already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, session.Update{}, apperr.Internal(err)
	}

	// Self-service removal needs a device token to check against later.
	if in.DeviceID == "" {
		return nil, session.Update{}, apperr.Validation("device identifier is required")
	}

	member := models.TeamMember{
		Name:           in.Name,
		WhatsappNumber: in.WhatsappNumber,
		ProjectID:      projectID,
		SectionNumber:  in.SectionNumber,
		PhotoURL:       in.PhotoURL,
		DeviceID:       in.DeviceID,
	}
	if err := s.store.CreateMember(ctx, &member); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, session.Update{}, apperr.Conflict("A member with this WhatsApp number is already registered")
		}
		return nil, session.Update{}, apperr.Internal(err)
	}

	// The id is store-assigned, so the ownership marker can only be written
	// after the insert. A failure here leaves the member without its marker;
	// that window is accepted and logged.
	if err := s.store.SetMemberUser(ctx, member.ID, member.ID); err != nil {
		slog.Error("failed to backfill member ownership",
			"member_id", member.ID, "project_id", member.ProjectID, "error", err)
		return nil, session.Update{}, apperr.Internal(err)
	}
	member.UserID = member.ID

	slog.Info("member registered",
		"member_id", member.ID, "project_id", member.ProjectID, "name", member.Name)

	return &member, session.Update{SetUserID: member.ID.String()}, nil
}

// Remove deletes a member after the guard chain passes. Guards run in order
// and the first failure wins; the delete is the only store mutation and is
// unconditional once reached.
func (s *MemberService) Remove(ctx context.Context, memberID uuid.UUID, ident session.Identity) (session.Update, error) {
	member, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return session.Update{}, apperr.NotFound("Member not found")
		}
		return session.Update{}, apperr.Internal(err)
	}

	isOwner := ident.UserID != "" &&
		(ident.UserID == member.ID.String() || ident.UserID == member.UserID.String())

	if !ident.IsAdmin && !isOwner {
		return session.Update{}, apperr.Forbidden("You can only remove yourself from teams")
	}

	// Session ownership alone is not enough once a device token was recorded
	// at registration: the claimed token has to match too.
	if !ident.IsAdmin && member.DeviceID != "" && ident.DeviceID != member.DeviceID {
		return session.Update{}, apperr.Forbidden("Device verification failed")
	}

	if err := s.store.DeleteMember(ctx, memberID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return session.Update{}, apperr.NotFound("Member not found")
		}
		return session.Update{}, apperr.Internal(err)
	}

	slog.Info("member removed",
		"member_id", memberID, "project_id", member.ProjectID, "by_admin", ident.IsAdmin)

	// Self-removal logs the caller out of that identity but keeps the rest
	// of the session.
	if !ident.IsAdmin && isOwner {
		return session.Update{ClearUserID: true}, nil
	}
	return session.Update{}, nil
}
