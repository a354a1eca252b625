package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/calebfarias/grocerly-backend/api/middleware"
	"github.com/calebfarias/grocerly-backend/api/responses"
	"github.com/calebfarias/grocerly-backend/api/validators"
	"github.com/calebfarias/grocerly-backend/internal/orders"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/calebfarias/grocerly-backend/pkg/logger"
)

type createOrderRequest struct {
	ItemIDs []int `json:"itemIds" validate:"required,min=1,dive,min=1"`
}

// CreateOrder places an order for the authenticated customer.
func CreateOrder(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := middleware.UserIDFromContext(r.Context())
		if raw == "" {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}
		customerID, err := uuid.Parse(raw)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid user context"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), orders.PlaceOrderInput{
			CustomerID: customerID,
			ItemIDs:    payload.ItemIDs,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, "order created", order)
	}
}

// Revenue reports the order revenue over an inclusive date range.
func Revenue(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var start, end *time.Time

		if from, err := validators.ParseQueryDate(r, "startDate"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		} else if !from.IsZero() {
			start = &from
		}
		if to, err := validators.ParseQueryDate(r, "endDate"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		} else if !to.IsZero() {
			endOfDay := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())
			end = &endOfDay
		}

		report, err := svc.TotalRevenue(r.Context(), start, end)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "revenue retrieved", report)
	}
}
