package models

import (
	"time"

	"github.com/google/uuid"
)

// UserGroup links a user into a group. The (group_id, user_id) pair is
// unique so repeated grants stay idempotent.
type UserGroup struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupID   uuid.UUID `gorm:"column:group_id;type:uuid;not null;uniqueIndex:idx_user_groups_group_user"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_groups_group_user"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UserGroup) TableName() string {
	return "user_groups"
}
