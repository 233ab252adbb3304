package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a signup target created by an admin. Projects are never updated;
// deleting one cascades to its members.
type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
