package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	domprint "example.com/denine-prints/internal/domain/print"
	"example.com/denine-prints/internal/infra/persistence/memory"
	"example.com/denine-prints/internal/infra/security"
	cartuc "example.com/denine-prints/internal/usecase/cart"
	cataloguc "example.com/denine-prints/internal/usecase/catalog"
	checkoutuc "example.com/denine-prints/internal/usecase/checkout"
)

// Mock catalog provider
type mockProvider struct {
	prints  []domprint.Print
	listErr error
	calls   int
}

func (m *mockProvider) ListPrints(ctx context.Context) ([]domprint.Print, error) {
	m.calls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]domprint.Print(nil), m.prints...), nil
}

// Mock catalog gateway; successful writes land in the provider so the
// follow-up refresh sees them.
type mockGateway struct {
	provider  *mockProvider
	drafts    []domprint.Draft
	createErr error
	updateErr error
}

func (m *mockGateway) Create(ctx context.Context, d domprint.Draft) (*domprint.Print, error) {
	m.drafts = append(m.drafts, d)
	if m.createErr != nil {
		return nil, m.createErr
	}
	p := domprint.Print{ID: d.ID, Theme: d.Theme, Description: d.Description, BasePrice: d.BasePrice}
	m.provider.prints = append(m.provider.prints, p)
	return &p, nil
}

func (m *mockGateway) Update(ctx context.Context, id string, u domprint.Update) (*domprint.Print, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	for i := range m.provider.prints {
		p := &m.provider.prints[i]
		if p.ID != id {
			continue
		}
		if u.Theme != nil {
			p.Theme = *u.Theme
		}
		if u.Description != nil {
			p.Description = *u.Description
		}
		if u.BasePrice != nil {
			p.BasePrice = *u.BasePrice
		}
		updated := *p
		return &updated, nil
	}
	return nil, domprint.ErrPrintNotFound
}

func botanicalPrint() domprint.Print {
	return domprint.Print{
		ID:          "botanical",
		Theme:       "Botanical",
		Description: "Pressed leaves",
		BasePrice:   19900,
		Variants: []domprint.Variant{
			{ID: "fern", Name: "Fern", ImageRef: "/img/fern.jpg"},
			{ID: "ivy", Name: "Ivy", ImageRef: "/img/ivy.jpg"},
			{ID: "moss", Name: "Moss", ImageRef: "/img/moss.jpg", Featured: true},
			{ID: "palm", Name: "Palm", ImageRef: "/img/palm.jpg"},
		},
	}
}

type testEnv struct {
	router   chi.Router
	provider *mockProvider
	gateway  *mockGateway
	sessions *security.SessionService
	catalog  *cataloguc.Service
}

// Setup function to create the API over in-memory cart storage. The catalog
// is refreshed once unless loaded is false.
func setupAPI(t *testing.T, loaded bool) *testEnv {
	t.Helper()

	provider := &mockProvider{prints: []domprint.Print{botanicalPrint()}}
	gateway := &mockGateway{provider: provider}
	catalogSvc := cataloguc.NewService(provider, gateway, cataloguc.WithTimeout(time.Second))
	if loaded {
		require.NoError(t, catalogSvc.Refresh(context.Background()))
	}

	cartSvc := cartuc.NewService(memory.NewStorage(), nil)
	sessions := security.NewSessionService("test-secret", time.Hour, "denine-cart")

	api := NewAPI(Dependencies{
		CatalogService:  catalogSvc,
		CartService:     cartSvc,
		CheckoutService: checkoutuc.NewService(cartSvc),
		Sessions:        sessions,
	})

	return &testEnv{
		router:   api.Router(),
		provider: provider,
		gateway:  gateway,
		sessions: sessions,
		catalog:  catalogSvc,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(sessionHeader, token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) newSession(t *testing.T) string {
	t.Helper()
	_, token, err := e.sessions.Issue()
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth_Returns200(t *testing.T) {
	env := setupAPI(t, false)

	rec := env.do(t, http.MethodGet, "/health", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestListPrints_Ready_Returns200(t *testing.T) {
	env := setupAPI(t, true)

	rec := env.do(t, http.MethodGet, "/api/v1/prints", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "ready", body["status"])

	data := body["data"].([]any)
	require.Len(t, data, 1)
	p := data[0].(map[string]any)
	require.Equal(t, "botanical", p["id"])
	require.Equal(t, float64(19900), p["base_price"])
	require.Equal(t, "199.00", p["base_price_display"])
	require.Len(t, p["variants"], 4)
	require.Equal(t, "moss", p["featured_variant"].(map[string]any)["id"])
}

func TestListPrints_StillLoading_Returns503(t *testing.T) {
	env := setupAPI(t, false)

	rec := env.do(t, http.MethodGet, "/api/v1/prints", nil, "")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, decodeBody(t, rec)["error"], "loading")
}

func TestListPrints_FailedLoad_Returns502(t *testing.T) {
	env := setupAPI(t, false)
	env.provider.listErr = errors.New("connection refused")
	require.Error(t, env.catalog.Refresh(context.Background()))

	rec := env.do(t, http.MethodGet, "/api/v1/prints", nil, "")

	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRefreshPrints_RetryAfterFailure_Returns200(t *testing.T) {
	env := setupAPI(t, false)
	env.provider.listErr = errors.New("connection refused")

	rec := env.do(t, http.MethodPost, "/api/v1/prints/refresh", nil, "")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	env.provider.listErr = nil
	rec = env.do(t, http.MethodPost, "/api/v1/prints/refresh", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody(t, rec)["data"], 1)
	require.Equal(t, 2, env.provider.calls)
}

func TestGetPrint(t *testing.T) {
	env := setupAPI(t, true)

	rec := env.do(t, http.MethodGet, "/api/v1/prints/botanical", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Botanical", decodeBody(t, rec)["theme"])

	rec = env.do(t, http.MethodGet, "/api/v1/prints/unknown", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelection_Initialize(t *testing.T) {
	env := setupAPI(t, true)

	rec := env.do(t, http.MethodPost, "/api/v1/prints/botanical/selection", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, []any{"fern"}, body["variant_ids"])
	require.Equal(t, float64(1), body["quantity"])
	require.Equal(t, "Single Print", body["label"])
	require.Equal(t, float64(19900), body["total"])
	require.Equal(t, "199.00", body["total_display"])
}

func TestSelection_Toggle(t *testing.T) {
	env := setupAPI(t, true)

	tests := []struct {
		name      string
		state     []string
		variantID string
		want      []any
		label     string
		total     float64
	}{
		{name: "Add second variant", state: []string{"fern"}, variantID: "ivy", want: []any{"fern", "ivy"}, label: "Pair", total: 39800},
		{name: "Catalog order kept", state: []string{"moss"}, variantID: "fern", want: []any{"fern", "moss"}, label: "Pair", total: 39800},
		{name: "Deselect", state: []string{"fern", "ivy"}, variantID: "fern", want: []any{"ivy"}, label: "Single Print", total: 19900},
		{name: "Last variant stays selected", state: []string{"fern"}, variantID: "fern", want: []any{"fern"}, label: "Single Print", total: 19900},
		{name: "Fourth variant refused", state: []string{"fern", "ivy", "moss"}, variantID: "palm", want: []any{"fern", "ivy", "moss"}, label: "Triptych", total: 59700},
		{name: "Unknown variant ignored", state: []string{"fern"}, variantID: "cactus", want: []any{"fern"}, label: "Single Print", total: 19900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/v1/prints/botanical/selection/toggle", map[string]any{
				"state":      map[string]any{"variant_ids": tt.state, "quantity": 1},
				"variant_id": tt.variantID,
			}, "")

			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody(t, rec)
			require.Equal(t, tt.want, body["variant_ids"])
			require.Equal(t, tt.label, body["label"])
			require.Equal(t, tt.total, body["total"])
		})
	}
}

func TestSelection_Preset(t *testing.T) {
	env := setupAPI(t, true)

	rec := env.do(t, http.MethodPost, "/api/v1/prints/botanical/selection/preset", map[string]any{
		"state": map[string]any{"variant_ids": []string{"palm"}, "quantity": 2},
		"count": 3,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, []any{"fern", "ivy", "moss"}, body["variant_ids"])
	require.Equal(t, float64(2), body["quantity"])
	require.Equal(t, float64(19900*3*2), body["total"])

	rec = env.do(t, http.MethodPost, "/api/v1/prints/botanical/selection/preset", map[string]any{
		"state": map[string]any{"variant_ids": []string{"palm"}, "quantity": 1},
		"count": 4,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []any{"palm"}, decodeBody(t, rec)["variant_ids"])
}

func TestSelection_Quantity(t *testing.T) {
	env := setupAPI(t, true)
	state := map[string]any{"variant_ids": []string{"fern", "ivy"}, "quantity": 1}

	rec := env.do(t, http.MethodPost, "/api/v1/prints/botanical/selection/quantity", map[string]any{
		"state": state, "quantity": 3,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(19900*2*3), decodeBody(t, rec)["total"])

	rec = env.do(t, http.MethodPost, "/api/v1/prints/botanical/selection/quantity", map[string]any{
		"state": state, "quantity": 0,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(1), decodeBody(t, rec)["quantity"])
}

func TestSelection_InvalidState_Returns422(t *testing.T) {
	env := setupAPI(t, true)

	rec := env.do(t, http.MethodPost, "/api/v1/prints/botanical/selection/toggle", map[string]any{
		"state":      map[string]any{"variant_ids": []string{"fern", "ivy", "moss", "palm"}, "quantity": 1},
		"variant_id": "fern",
	}, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestIssueSession_Returns201(t *testing.T) {
	env := setupAPI(t, true)

	rec := env.do(t, http.MethodPost, "/api/v1/cart/session", nil, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, sessionHeader, body["header"])
	token := body["token"].(string)

	session, err := env.sessions.Parse(token)
	require.NoError(t, err)
	require.Equal(t, body["session_id"], session.ID)
}

func TestCart_RequiresSession(t *testing.T) {
	env := setupAPI(t, true)

	rec := env.do(t, http.MethodGet, "/api/v1/cart", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/cart", nil, "not-a-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	other := security.NewSessionService("other-secret", time.Hour, "denine-cart")
	_, foreign, err := other.Issue()
	require.NoError(t, err)
	rec = env.do(t, http.MethodGet, "/api/v1/cart", nil, foreign)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCart_EmptyCart(t *testing.T) {
	env := setupAPI(t, true)
	token := env.newSession(t)

	rec := env.do(t, http.MethodGet, "/api/v1/cart", nil, token)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Empty(t, body["items"])
	require.Equal(t, float64(0), body["total"])
	require.Equal(t, "0.00", body["shipping_display"])
}

func TestCart_AddUpdateRemove(t *testing.T) {
	env := setupAPI(t, true)
	token := env.newSession(t)
	pair := map[string]any{"print_id": "botanical", "variant_ids": []string{"ivy", "fern"}, "quantity": 2}

	rec := env.do(t, http.MethodPost, "/api/v1/cart/items", pair, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	require.Equal(t, "botanical-fern-ivy", item["id"])
	require.Equal(t, "Pair", item["variant_type"])
	require.Equal(t, float64(79600), item["price"])
	require.Equal(t, "796.00", body["total_display"])

	// Same configuration again is a second line.
	rec = env.do(t, http.MethodPost, "/api/v1/cart/items", pair, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, decodeBody(t, rec)["items"], 2)

	rec = env.do(t, http.MethodPatch, "/api/v1/cart/items/botanical-fern-ivy", map[string]any{"quantity": 3}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	for _, raw := range body["items"].([]any) {
		line := raw.(map[string]any)
		require.Equal(t, float64(3), line["quantity"])
		require.Equal(t, float64(119400), line["price"])
	}
	require.Equal(t, float64(238800), body["subtotal"])

	rec = env.do(t, http.MethodGet, "/api/v1/cart/items/botanical-fern-ivy", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/cart/items/botanical-fern-ivy", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["items"])

	rec = env.do(t, http.MethodGet, "/api/v1/cart/items/botanical-fern-ivy", nil, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_UpdateBelowOneKeepsCart(t *testing.T) {
	env := setupAPI(t, true)
	token := env.newSession(t)

	rec := env.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"print_id": "botanical", "variant_ids": []string{"moss"}, "quantity": 1,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/v1/cart/items/botanical-moss", map[string]any{"quantity": 0}, token)

	require.Equal(t, http.StatusOK, rec.Code)
	item := decodeBody(t, rec)["items"].([]any)[0].(map[string]any)
	require.Equal(t, float64(1), item["quantity"])
	require.Equal(t, float64(19900), item["price"])
}

func TestCart_AddInvalidSelection(t *testing.T) {
	env := setupAPI(t, true)
	token := env.newSession(t)

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{name: "Missing variants", body: map[string]any{"print_id": "botanical", "variant_ids": []string{}, "quantity": 1}, want: http.StatusBadRequest},
		{name: "Zero quantity", body: map[string]any{"print_id": "botanical", "variant_ids": []string{"fern"}, "quantity": 0}, want: http.StatusBadRequest},
		{name: "Too many variants", body: map[string]any{"print_id": "botanical", "variant_ids": []string{"fern", "ivy", "moss", "palm"}, "quantity": 1}, want: http.StatusUnprocessableEntity},
		{name: "Unknown variant", body: map[string]any{"print_id": "botanical", "variant_ids": []string{"cactus"}, "quantity": 1}, want: http.StatusUnprocessableEntity},
		{name: "Unknown print", body: map[string]any{"print_id": "coastal", "variant_ids": []string{"fern"}, "quantity": 1}, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/v1/cart/items", tt.body, token)
			require.Equal(t, tt.want, rec.Code)
		})
	}

	rec := env.do(t, http.MethodGet, "/api/v1/cart", nil, token)
	require.Empty(t, decodeBody(t, rec)["items"])
}

func TestCart_HugeQuantityKeepsCart(t *testing.T) {
	env := setupAPI(t, true)
	token := env.newSession(t)
	single := map[string]any{"print_id": "botanical", "variant_ids": []string{"fern"}, "quantity": 1}

	rec := env.do(t, http.MethodPost, "/api/v1/cart/items", single, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"print_id": "botanical", "variant_ids": []string{"fern", "ivy", "moss"}, "quantity": 200000000000000,
	}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/v1/cart/items/botanical-fern", map[string]any{"quantity": 200000000000000}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/cart", nil, token)
	body := decodeBody(t, rec)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, float64(1), items[0].(map[string]any)["quantity"])
	require.Equal(t, float64(19900), body["total"])

	rec = env.do(t, http.MethodPatch, "/api/v1/cart/items/botanical-fern", map[string]any{"quantity": 9999}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(19900*9999), decodeBody(t, rec)["total"])
}

func TestCart_OverflowingPriceIsRefused(t *testing.T) {
	env := setupAPI(t, false)
	env.provider.prints[0].BasePrice = math.MaxInt64 / 2
	require.NoError(t, env.catalog.Refresh(context.Background()))
	token := env.newSession(t)

	rec := env.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"print_id": "botanical", "variant_ids": []string{"fern", "ivy", "moss"}, "quantity": 1,
	}, token)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/prints/botanical/selection/preset", map[string]any{
		"state": map[string]any{"variant_ids": []string{"fern"}, "quantity": 1},
		"count": 3,
	}, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/cart", nil, token)
	require.Empty(t, decodeBody(t, rec)["items"])
}

func TestCart_AddWhileCatalogLoading_Returns503(t *testing.T) {
	env := setupAPI(t, false)
	token := env.newSession(t)

	rec := env.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"print_id": "botanical", "variant_ids": []string{"fern"}, "quantity": 1,
	}, token)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	env := setupAPI(t, true)
	alice := env.newSession(t)
	bob := env.newSession(t)

	rec := env.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"print_id": "botanical", "variant_ids": []string{"fern"}, "quantity": 1,
	}, alice)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/cart", nil, bob)
	require.Empty(t, decodeBody(t, rec)["items"])

	rec = env.do(t, http.MethodDelete, "/api/v1/cart", nil, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody(t, rec)["items"])
}

func TestCheckout(t *testing.T) {
	env := setupAPI(t, true)
	token := env.newSession(t)

	rec := env.do(t, http.MethodPost, "/api/v1/cart/checkout", nil, token)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"print_id": "botanical", "variant_ids": []string{"fern", "ivy", "moss"}, "quantity": 1,
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/cart/checkout", nil, token)
	require.Equal(t, http.StatusNotImplemented, rec.Code)
	details := decodeBody(t, rec)["details"].(map[string]any)
	require.Equal(t, float64(59700), details["total"])

	// The cart survives a refused checkout.
	rec = env.do(t, http.MethodGet, "/api/v1/cart", nil, token)
	require.Len(t, decodeBody(t, rec)["items"], 1)
}

func TestAdminCreatePrint(t *testing.T) {
	t.Run("Default base price", func(t *testing.T) {
		env := setupAPI(t, true)

		rec := env.do(t, http.MethodPost, "/api/v1/admin/prints", map[string]any{
			"theme_id": "coastal", "theme": "Coastal",
		}, "")

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, env.gateway.drafts, 1)
		require.Equal(t, int64(19900), env.gateway.drafts[0].BasePrice)

		rec = env.do(t, http.MethodGet, "/api/v1/prints/coastal", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Negative base price", func(t *testing.T) {
		env := setupAPI(t, true)

		rec := env.do(t, http.MethodPost, "/api/v1/admin/prints", map[string]any{
			"theme_id": "coastal", "theme": "Coastal", "base_price": -1,
		}, "")

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Empty(t, env.gateway.drafts)
	})

	t.Run("Missing theme", func(t *testing.T) {
		env := setupAPI(t, true)

		rec := env.do(t, http.MethodPost, "/api/v1/admin/prints", map[string]any{"theme_id": "coastal"}, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Upstream rejects", func(t *testing.T) {
		env := setupAPI(t, true)
		env.gateway.createErr = errors.New("upstream exploded")

		rec := env.do(t, http.MethodPost, "/api/v1/admin/prints", map[string]any{
			"theme_id": "coastal", "theme": "Coastal",
		}, "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		rec = env.do(t, http.MethodGet, "/api/v1/prints", nil, "")
		require.Len(t, decodeBody(t, rec)["data"], 1)
	})
}

func TestAdminUpdatePrint(t *testing.T) {
	env := setupAPI(t, true)

	rec := env.do(t, http.MethodPut, "/api/v1/admin/prints/botanical", map[string]any{"base_price": 24900}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "249.00", decodeBody(t, rec)["base_price_display"])

	rec = env.do(t, http.MethodGet, "/api/v1/prints/botanical", nil, "")
	require.Equal(t, float64(24900), decodeBody(t, rec)["base_price"])

	rec = env.do(t, http.MethodPut, "/api/v1/admin/prints/unknown", map[string]any{"theme": "Nope"}, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/admin/prints/botanical", map[string]any{}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/api/v1/admin/prints/botanical", map[string]any{"base_price": -5}, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
