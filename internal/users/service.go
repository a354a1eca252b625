package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/calebfarias/grocerly-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository defines the persistence surface the service needs.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context, input ListInput) ([]models.User, int64, error)
}

// Service exposes the user directory operations.
type Service interface {
	List(ctx context.Context, input ListInput) (*pagination.Page[UserDTO], error)
	Profile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	FindOrCreateByGoogleID(ctx context.Context, googleID, email, username string) (*UserDTO, error)
}

type service struct {
	repo UserRepository
}

// NewService constructs a user directory service.
func NewService(repo UserRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, input ListInput) (*pagination.Page[UserDTO], error) {
	if input.Filters.SortBy != "" && !validSortBy(input.Filters.SortBy) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("cannot sort by %q", input.Filters.SortBy))
	}

	rows, total, err := s.repo.List(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list users")
	}

	page, limit := input.Pagination.Normalize()
	result := pagination.ToPage(newUserDTOs(rows), total, page, limit)
	return &result, nil
}

func (s *service) Profile(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load user")
	}
	return NewUserDTO(user), nil
}

// FindOrCreateByGoogleID resolves the external identity to a user,
// creating the row on first sight. Idempotent by google_id.
func (s *service) FindOrCreateByGoogleID(ctx context.Context, googleID, email, username string) (*UserDTO, error) {
	googleID = strings.TrimSpace(googleID)
	if googleID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "google id is required")
	}

	user, err := s.repo.FindByGoogleID(ctx, googleID)
	if err == nil {
		return NewUserDTO(user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to look up user")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = email
	}

	created, err := s.repo.Create(ctx, &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		GoogleID: &googleID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create user")
	}
	return NewUserDTO(created), nil
}
