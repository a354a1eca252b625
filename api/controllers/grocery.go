package controllers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/calebfarias/grocerly-backend/api/responses"
	"github.com/calebfarias/grocerly-backend/api/validators"
	"github.com/calebfarias/grocerly-backend/internal/catalog"
	pkgerrors "github.com/calebfarias/grocerly-backend/pkg/errors"
	"github.com/calebfarias/grocerly-backend/pkg/logger"
	"github.com/calebfarias/grocerly-backend/pkg/pagination"
)

func parseItemListQuery(r *http.Request) (catalog.ListInput, error) {
	var input catalog.ListInput

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
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return input, pkgerrors.New(pkgerrors.CodeValidation, "id must be a positive integer")
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

// ListGroceryItems is the admin catalog listing.
func ListGroceryItems(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseItemListQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "grocery items retrieved", page)
	}
}

// CustomerGroceryList lists only items with stock remaining.
func CustomerGroceryList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := parseItemListQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.ListInStock(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "grocery list retrieved", page)
	}
}

// maxItemNameLen bounds item names before they reach the service.
const maxItemNameLen = 255

type createItemRequest struct {
	Name      string           `json:"name" validate:"required"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
	Inventory *int             `json:"inventory" validate:"required,min=0"`
}

func CreateGroceryItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), catalog.CreateItemInput{
			Name:      validators.SanitizeString(payload.Name, maxItemNameLen),
			Price:     payload.Price,
			Inventory: payload.Inventory,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, "grocery item created", item)
	}
}

type updateItemRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1"`
	Price     *decimal.Decimal `json:"price"`
	Inventory *int             `json:"inventory" validate:"omitempty,min=0"`
}

func UpdateGroceryItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		name := payload.Name
		if name != nil {
			sanitized := validators.SanitizeString(*name, maxItemNameLen)
			name = &sanitized
		}

		item, err := svc.Update(r.Context(), id, catalog.UpdateItemInput{
			Name:      name,
			Price:     payload.Price,
			Inventory: payload.Inventory,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "grocery item updated", item)
	}
}

func DeleteGroceryItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Remove(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "grocery item deleted", nil)
	}
}

type adjustInventoryRequest struct {
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Action   string `json:"action" validate:"required,oneof=increase decrease"`
}

func AdjustGroceryInventory(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload adjustInventoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.AdjustInventory(r.Context(), id, payload.Quantity, payload.Action)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "inventory adjusted", item)
	}
}

// TopSellers returns the items with the most order lines. The size path
// segment is optional at the route level; missing or zero falls back to
// the service default.
func TopSellers(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := 0
		if raw := chi.URLParam(r, "size"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "size must be a non-negative integer"))
				return
			}
			count = parsed
		}

		rows, err := svc.TopSellers(r.Context(), count)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, "top sellers retrieved", rows)
	}
}

func pathID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "id must be a positive integer")
	}
	return id, nil
}
