package users

import (
	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	"github.com/google/uuid"
)

// UserDTO is the directory view of a user.
type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone"`
}

// NewUserDTO maps a user row to its API view.
func NewUserDTO(user *models.User) *UserDTO {
	return &UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
	}
}

func newUserDTOs(rows []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewUserDTO(&rows[i]))
	}
	return out
}
