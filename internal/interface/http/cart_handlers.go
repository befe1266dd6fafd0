package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	domcart "example.com/denine-prints/internal/domain/cart"
	"example.com/denine-prints/internal/infra/security"
	checkoutuc "example.com/denine-prints/internal/usecase/checkout"
	"example.com/denine-prints/internal/usecase/selection"
)

type addCartItemRequest struct {
	PrintID    string   `json:"print_id" validate:"required"`
	VariantIDs []string `json:"variant_ids" validate:"required,min=1"`
	Quantity   int64    `json:"quantity" validate:"required,gte=1,max=9999"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity" validate:"max=9999"`
}

func (a *API) handleIssueSession(w http.ResponseWriter, r *http.Request) {
	session, token, err := a.sessions.Issue()
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"token":      token,
		"session_id": session.ID,
		"expires_at": session.ExpiresAt,
		"header":     sessionHeader,
	})
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	session := getCartSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
		return
	}

	summary, err := a.cartSvc.Summary(r.Context(), session.StorageKey)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSummary(summary))
}

// handleAddCartItem prices the selection against the live catalog and appends
// it. Nothing can be added while the catalog is still loading.
func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	session := getCartSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
		return
	}

	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.catalogSvc.Print(req.PrintID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	s, err := selection.FromRequest(p, req.VariantIDs, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	item, err := selection.Build(p, s)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	c, err := a.cartSvc.Add(r.Context(), session.StorageKey, item)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapSummary(c.Summary()))
}

func (a *API) handleGetCartItem(w http.ResponseWriter, r *http.Request) {
	session := getCartSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
		return
	}

	c, err := a.cartSvc.Load(r.Context(), session.StorageKey)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	item, ok := c.Find(chi.URLParam(r, "id"))
	if !ok {
		handleDomainError(w, domcart.ErrItemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, mapCartItem(item))
}

// A quantity below 1 answers with the unchanged cart.
func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	session := getCartSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
		return
	}

	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	c, err := a.cartSvc.UpdateQuantity(r.Context(), session.StorageKey, chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSummary(c.Summary()))
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	session := getCartSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
		return
	}

	c, err := a.cartSvc.Remove(r.Context(), session.StorageKey, chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSummary(c.Summary()))
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	session := getCartSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
		return
	}

	c, err := a.cartSvc.Clear(r.Context(), session.StorageKey)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSummary(c.Summary()))
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	session := getCartSession(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, security.ErrInvalidSession)
		return
	}

	summary, err := a.checkoutSvc.Checkout(r.Context(), session.StorageKey)
	if errors.Is(err, checkoutuc.ErrCheckoutUnavailable) {
		writeJSON(w, http.StatusNotImplemented, errorResponse{
			Error:   err.Error(),
			Details: mapSummary(summary),
		})
		return
	}
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSummary(summary))
}
