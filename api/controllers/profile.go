package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/calebfarias/grocerly-backend/api/middleware"
	"github.com/calebfarias/grocerly-backend/api/responses"
	"github.com/calebfarias/grocerly-backend/internal/users"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/calebfarias/grocerly-backend/pkg/logger"
)

// Profile returns the authenticated user's own record.
func Profile(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := middleware.UserIDFromContext(r.Context())
		if raw == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid user context"))
			return
		}

		profile, err := svc.Profile(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "profile retrieved", profile)
	}
}
