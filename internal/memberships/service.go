package memberships

import (
	"context"
	"errors"
	"fmt"

	"github.com/calebfarias/grocerly-backend/pkg/db"
	"github.com/calebfarias/grocerly-backend/pkg/db/models"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository defines the persistence surface the service needs.
type MembershipRepository interface {
	FindGroupByName(ctx context.Context, name string) (*models.Group, error)
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	CreateMembership(ctx context.Context, groupID, userID uuid.UUID) (*models.UserGroup, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Service grants role memberships.
type Service interface {
	GrantAdmin(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo  MembershipRepository
	users userFinder
}

// NewService constructs a membership service.
func NewService(repo MembershipRepository, users userFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("membership repository required")
	}
	if users == nil {
		return nil, fmt.Errorf("user finder required")
	}
	return &service{repo: repo, users: users}, nil
}

// GrantAdmin puts the user into the ADMIN group. The grant is idempotent:
// an existing membership counts as success.
func (s *service) GrantAdmin(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load user")
	}

	group, err := s.repo.FindGroupByName(ctx, models.AdminGroupName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "admin group not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load admin group")
	}

	member, err := s.repo.IsMember(ctx, group.ID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load membership")
	}
	if member {
		return nil
	}

	if _, err := s.repo.CreateMembership(ctx, group.ID, userID); err != nil {
		// A concurrent grant can race past the existence check; the unique
		// index on (group_id, user_id) settles it.
		if db.IsUniqueViolation(err, "") {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to create membership")
	}
	return nil
}
