package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a visitor registration against a project.
//
// UserID is the self-referential ownership marker: it is backfilled to the
// member's own id right after insertion (the id is store-assigned, so it is
// unknown until then) and never changes afterwards. DeviceID is the opaque
// token the registering browser supplied; it is checked again on self-service
// removal and never exposed over the API.
//
// Within one project the whatsapp number is unique (exact match) and the name
// is unique case-insensitively. The composite index closes the race the
// pre-insert duplicate check leaves open.
type TeamMember struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name           string    `gorm:"size:120;not null" json:"name"`
	WhatsappNumber string    `gorm:"size:20;not null;uniqueIndex:idx_members_project_number" json:"whatsappNumber"`
	ProjectID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_members_project_number" json:"projectId"`
	SectionNumber  *int      `json:"sectionNumber,omitempty"`
	PhotoURL       string    `gorm:"type:text" json:"photoUrl,omitempty"`
	UserID         uuid.UUID `gorm:"type:uuid" json:"userId"`
	DeviceID       string    `gorm:"size:64" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}
