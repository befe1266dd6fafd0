package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domprint "example.com/denine-prints/internal/domain/print"
	"example.com/denine-prints/internal/usecase/selection"
)

type selectionStateRequest struct {
	VariantIDs []string `json:"variant_ids" validate:"required,min=1"`
	Quantity   int64    `json:"quantity" validate:"required,gte=1,max=9999"`
}

type toggleSelectionRequest struct {
	State     selectionStateRequest `json:"state"`
	VariantID string                `json:"variant_id" validate:"required"`
}

type presetSelectionRequest struct {
	State selectionStateRequest `json:"state"`
	Count int                   `json:"count"`
}

type selectionQuantityRequest struct {
	State    selectionStateRequest `json:"state"`
	Quantity int64                 `json:"quantity"`
}

func (a *API) handleListPrints(w http.ResponseWriter, r *http.Request) {
	prints, err := a.catalogSvc.Prints()
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.writePrints(w, prints)
}

// handleRefreshPrints is the manual retry after a failed load.
func (a *API) handleRefreshPrints(w http.ResponseWriter, r *http.Request) {
	if err := a.catalogSvc.Refresh(r.Context()); err != nil {
		handleDomainError(w, err)
		return
	}
	prints, err := a.catalogSvc.Prints()
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.writePrints(w, prints)
}

func (a *API) writePrints(w http.ResponseWriter, prints []domprint.Print) {
	view := a.catalogSvc.View()
	resp := make([]map[string]any, 0, len(prints))
	for _, p := range prints {
		resp = append(resp, mapPrint(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":      resp,
		"status":    view.Status,
		"loaded_at": view.LoadedAt,
	})
}

func (a *API) handleGetPrint(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalogSvc.Print(chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapPrint(p))
}

func (a *API) handleInitSelection(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalogSvc.Print(chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	s, err := selection.Initialize(p)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeSelection(w, p, s)
}

func (a *API) handleToggleSelection(w http.ResponseWriter, r *http.Request) {
	var req toggleSelectionRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	a.applySelection(w, r, req.State, func(p domprint.Print, s selection.State) selection.State {
		return selection.Toggle(p, s, req.VariantID)
	})
}

func (a *API) handlePresetSelection(w http.ResponseWriter, r *http.Request) {
	var req presetSelectionRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	a.applySelection(w, r, req.State, func(p domprint.Print, s selection.State) selection.State {
		return selection.SelectCardinality(p, s, req.Count)
	})
}

func (a *API) handleSelectionQuantity(w http.ResponseWriter, r *http.Request) {
	var req selectionQuantityRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	a.applySelection(w, r, req.State, func(_ domprint.Print, s selection.State) selection.State {
		return selection.SetQuantity(s, req.Quantity)
	})
}

// applySelection rebuilds the client's state against the live print, applies
// op and answers with the next state and its quote.
func (a *API) applySelection(w http.ResponseWriter, r *http.Request, state selectionStateRequest, op func(domprint.Print, selection.State) selection.State) {
	p, err := a.catalogSvc.Print(chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	s, err := selection.FromRequest(p, state.VariantIDs, state.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeSelection(w, p, op(p, s))
}

func (a *API) writeSelection(w http.ResponseWriter, p domprint.Print, s selection.State) {
	q, err := s.Quote(p)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSelection(s, q))
}
