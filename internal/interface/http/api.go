package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domcart "example.com/denine-prints/internal/domain/cart"
	domprint "example.com/denine-prints/internal/domain/print"
	"example.com/denine-prints/internal/infra/catalogapi"
	"example.com/denine-prints/internal/infra/security"
	cartuc "example.com/denine-prints/internal/usecase/cart"
	cataloguc "example.com/denine-prints/internal/usecase/catalog"
	checkoutuc "example.com/denine-prints/internal/usecase/checkout"
	"example.com/denine-prints/internal/usecase/pricing"
	"example.com/denine-prints/internal/usecase/selection"
)

type API struct {
	catalogSvc  *cataloguc.Service
	cartSvc     *cartuc.Service
	checkoutSvc *checkoutuc.Service
	sessions    *security.SessionService
	validator   *validator.Validate
	logger      *zap.Logger
}

type Dependencies struct {
	CatalogService  *cataloguc.Service
	CartService     *cartuc.Service
	CheckoutService *checkoutuc.Service
	Sessions        *security.SessionService
	Logger          *zap.Logger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		catalogSvc:  deps.CatalogService,
		cartSvc:     deps.CartService,
		checkoutSvc: deps.CheckoutService,
		sessions:    deps.Sessions,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/prints", func(pr chi.Router) {
			pr.Get("/", a.handleListPrints)
			pr.Post("/refresh", a.handleRefreshPrints)
			pr.Get("/{id}", a.handleGetPrint)
			pr.Post("/{id}/selection", a.handleInitSelection)
			pr.Post("/{id}/selection/toggle", a.handleToggleSelection)
			pr.Post("/{id}/selection/preset", a.handlePresetSelection)
			pr.Post("/{id}/selection/quantity", a.handleSelectionQuantity)
		})

		r.Post("/cart/session", a.handleIssueSession)

		r.Group(func(cr chi.Router) {
			cr.Use(a.sessionMiddleware)
			cr.Get("/cart", a.handleGetCart)
			cr.Delete("/cart", a.handleClearCart)
			cr.Post("/cart/items", a.handleAddCartItem)
			cr.Get("/cart/items/{id}", a.handleGetCartItem)
			cr.Patch("/cart/items/{id}", a.handleUpdateCartItem)
			cr.Delete("/cart/items/{id}", a.handleRemoveCartItem)
			cr.Post("/cart/checkout", a.handleCheckout)
		})

		r.Route("/admin/prints", func(ar chi.Router) {
			ar.Post("/", a.handleCreatePrint)
			ar.Put("/{id}", a.handleUpdatePrint)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// displayAmount renders minor units as a two-decimal string.
func displayAmount(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}

func mapVariant(v domprint.Variant) map[string]any {
	return map[string]any{
		"id":        v.ID,
		"name":      v.Name,
		"image_url": v.ImageRef,
		"featured":  v.Featured,
	}
}

func mapPrint(p domprint.Print) map[string]any {
	variants := make([]map[string]any, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, mapVariant(v))
	}
	out := map[string]any{
		"id":                 p.ID,
		"theme":              p.Theme,
		"description":        p.Description,
		"base_price":         p.BasePrice,
		"base_price_display": displayAmount(p.BasePrice),
		"variants":           variants,
	}
	if fv, ok := p.FeaturedVariant(); ok {
		out["featured_variant"] = mapVariant(fv)
	}
	return out
}

func mapSelection(s selection.State, q pricing.Quote) map[string]any {
	return map[string]any{
		"print_id":           s.PrintID,
		"variant_ids":        s.VariantIDs,
		"quantity":           s.Quantity,
		"label":              q.Label,
		"unit_price":         q.UnitPrice,
		"unit_price_display": displayAmount(q.UnitPrice),
		"total":              q.Total,
		"total_display":      displayAmount(q.Total),
	}
}

func mapCartItem(item domcart.Item) map[string]any {
	variants := make([]map[string]any, 0, len(item.Variants))
	for _, v := range item.Variants {
		variants = append(variants, mapVariant(v))
	}
	return map[string]any{
		"id":            item.ID,
		"print_id":      item.PrintID,
		"theme":         item.Theme,
		"variants":      variants,
		"quantity":      item.Quantity,
		"price":         item.Price,
		"price_display": displayAmount(item.Price),
		"variant_type":  item.VariantType,
	}
}

func mapSummary(s domcart.Summary) map[string]any {
	items := make([]map[string]any, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, mapCartItem(item))
	}
	return map[string]any{
		"items":            items,
		"item_count":       len(items),
		"subtotal":         s.Subtotal,
		"subtotal_display": displayAmount(s.Subtotal),
		"shipping":         s.Shipping,
		"shipping_display": displayAmount(s.Shipping),
		"total":            s.Total,
		"total_display":    displayAmount(s.Total),
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, security.ErrInvalidSession):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domprint.ErrPrintNotFound),
		errors.Is(err, domcart.ErrItemNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, cataloguc.ErrCatalogLoading):
		respondError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, cataloguc.ErrCatalogUnavailable),
		errors.Is(err, catalogapi.ErrUpstreamStatus):
		respondError(w, http.StatusBadGateway, err)
	case errors.Is(err, domprint.ErrInvalidPrintID),
		errors.Is(err, domprint.ErrInvalidTheme),
		errors.Is(err, domprint.ErrInvalidBasePrice),
		errors.Is(err, domprint.ErrNoVariants),
		errors.Is(err, domprint.ErrVariantNotFound),
		errors.Is(err, selection.ErrEmptySelection),
		errors.Is(err, selection.ErrTooManyVariants),
		errors.Is(err, selection.ErrPrintMismatch),
		errors.Is(err, selection.ErrInvalidQuantity),
		errors.Is(err, domcart.ErrEmptyCart),
		errors.Is(err, domcart.ErrInvalidItem),
		errors.Is(err, domcart.ErrQuantityTooLarge),
		errors.Is(err, domcart.ErrPriceOverflow):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, checkoutuc.ErrCheckoutUnavailable):
		respondError(w, http.StatusNotImplemented, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
