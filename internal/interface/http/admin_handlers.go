package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	domprint "example.com/denine-prints/internal/domain/print"
)

// defaultBasePrice is used when a create request leaves base_price out.
const defaultBasePrice int64 = 19900

var errEmptyUpdate = errors.New("no fields to update")

type createPrintRequest struct {
	ID          string `json:"theme_id" validate:"required"`
	Theme       string `json:"theme" validate:"required"`
	Description string `json:"description"`
	BasePrice   *int64 `json:"base_price"`
}

type updatePrintRequest struct {
	Theme       *string `json:"theme"`
	Description *string `json:"description"`
	BasePrice   *int64  `json:"base_price"`
}

func (a *API) handleCreatePrint(w http.ResponseWriter, r *http.Request) {
	var req createPrintRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	draft := domprint.Draft{
		ID:          req.ID,
		Theme:       req.Theme,
		Description: req.Description,
		BasePrice:   defaultBasePrice,
	}
	if req.BasePrice != nil {
		draft.BasePrice = *req.BasePrice
	}

	created, err := a.catalogSvc.CreatePrint(r.Context(), draft)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapPrint(*created))
}

func (a *API) handleUpdatePrint(w http.ResponseWriter, r *http.Request) {
	var req updatePrintRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	update := domprint.Update{
		Theme:       req.Theme,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	}
	if update.Empty() {
		respondError(w, http.StatusBadRequest, errEmptyUpdate)
		return
	}

	updated, err := a.catalogSvc.UpdatePrint(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapPrint(*updated))
}
