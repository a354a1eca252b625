package controllers

import (
	"math"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/calebfarias/grocerly-backend/api/responses"
	"github.com/calebfarias/grocerly-backend/api/validators"
	"github.com/calebfarias/grocerly-backend/internal/memberships"
	"github.com/calebfarias/grocerly-backend/internal/users"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/calebfarias/grocerly-backend/pkg/logger"
	"github.com/calebfarias/grocerly-backend/pkg/pagination"
)

func parseUserListQuery(r *http.Request) (users.ListInput, error) {
	var input users.ListInput

	page, err := validators.ParseQueryInt(r, "page", 0, 0, math.MaxInt32)
	if err != nil {
		return input, err
	}
	size, err := validators.ParseQueryInt(r, "size", 0, 0, math.MaxInt32)
	if err != nil {
		return input, err
	}
	input.Pagination = pagination.Params{Page: page, Size: size}

	if raw := strings.TrimSpace(r.URL.Query().Get("id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return input, pkgerrors.New(pkgerrors.CodeValidation, "id must be a valid uuid")
		}
		input.Filters.ID = &id
	}

	if from, err := validators.ParseQueryDate(r, "startDate"); err != nil {
		return input, err
	} else if !from.IsZero() {
		input.Filters.From = &from
	}
	if to, err := validators.ParseQueryDate(r, "endDate"); err != nil {
		return input, err
	} else if !to.IsZero() {
		input.Filters.To = &to
	}

	input.Filters.SortBy = strings.TrimSpace(r.URL.Query().Get("sortBy"))
	input.Filters.SortDir = strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("sortDir")))
	return input, nil
}

// ListUsers is the admin user directory listing.
func ListUsers(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseUserListQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "users retrieved", page)
	}
}

// CreateAdmin grants the ADMIN role to the user named by the userId
// query parameter.
func CreateAdmin(svc memberships.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("userId"))
		if raw == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "userId query parameter is required"))
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "userId must be a valid uuid"))
			return
		}

		if err := svc.GrantAdmin(r.Context(), userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "admin role granted", map[string]string{"userId": userID.String()})
	}
}
