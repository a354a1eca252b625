package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminGroupName is seeded by migration and gates the admin surface.
const AdminGroupName = "ADMIN"

// Group is a named role bucket.
type Group struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;type:text;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
