package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/api/middleware"
	"github.com/iStefan20/YumTum/internal/catalog"
	"github.com/iStefan20/YumTum/internal/config"
	"github.com/iStefan20/YumTum/internal/discount"
	"github.com/iStefan20/YumTum/internal/order"
	"github.com/iStefan20/YumTum/internal/session"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:           "0",
		Environment:    "test",
		CurrencySymbol: "£",
		MinPurchaseAge: 18,
	}
	logger := zap.NewNop()
	cat := catalog.New()
	deps := Deps{
		Catalog:   cat,
		Sessions:  session.NewManager(cfg.MinPurchaseAge, logger),
		Discounts: discount.NewService(cat, logger),
		Assembler: order.NewAssembler(logger),
		Orders:    order.NewRegistry(),
	}
	return NewRouter(cfg, deps, logger)
}

type testClient struct {
	t         *testing.T
	router    *gin.Engine
	sessionID string
}

func (c *testClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.sessionID != "" {
		req.Header.Set(middleware.SessionHeader, c.sessionID)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	if sid := w.Header().Get(middleware.SessionHeader); sid != "" {
		c.sessionID = sid
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRouter_HealthAndCatalog(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/v1/catalog/countries", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Romania")

	w = c.do(http.MethodGet, "/v1/catalog/dishes/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mici")

	w = c.do(http.MethodGet, "/v1/catalog/dishes/404404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SessionIsMintedAndSticky(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodGet, "/v1/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	first := c.sessionID
	require.NotEmpty(t, first)

	c.do(http.MethodPost, "/v1/cart/items", gin.H{"dish_id": "85"})
	w = c.do(http.MethodGet, "/v1/cart", nil)
	assert.Equal(t, first, c.sessionID)

	cart := decode(t, w)
	assert.Len(t, cart["lines"], 1)
}

func TestRouter_CheckoutWithoutRestrictedItems(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	c.do(http.MethodPost, "/v1/cart/items", gin.H{"dish_id": "85"}) // Burger
	w := c.do(http.MethodPost, "/v1/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "APPROVED", decode(t, w)["state"])
}

func TestRouter_EmptyCartCheckoutConflict(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodPost, "/v1/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouter_FullOrderFlowWithAgeVerification(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	c.do(http.MethodPost, "/v1/cart/items", gin.H{"dish_id": "3"})  // Mici £7.00
	c.do(http.MethodPost, "/v1/cart/items", gin.H{"dish_id": "14"}) // Palincă £4.00, restricted

	w := c.do(http.MethodPost, "/v1/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "AWAITING_VERIFICATION", decode(t, w)["state"])

	w = c.do(http.MethodPost, "/v1/checkout/birth-date", gin.H{"birth_date": "1990-06-15"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "APPROVED", decode(t, w)["state"])

	w = c.do(http.MethodPost, "/v1/orders", gin.H{
		"name":          "Jane Doe",
		"address_line1": "1 Main St",
		"city":          "London",
		"postcode":      "SW1A 1AA",
		"phone":         "07123456789",
		"email":         "jane@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	placed := decode(t, w)
	assert.Equal(t, "1 Main St, London, SW1A 1AA", placed["address"])
	assert.InDelta(t, 11.0, placed["total"].(float64), 0.0001)

	// Cart is cleared after checkout
	w = c.do(http.MethodGet, "/v1/cart", nil)
	assert.Len(t, decode(t, w)["lines"], 0)

	// Order is retrievable by id
	w = c.do(http.MethodGet, "/v1/orders/"+placed["id"].(string), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UnderageRejectedThenCancel(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	c.do(http.MethodPost, "/v1/cart/items", gin.H{"dish_id": "81"}) // Sake

	w := c.do(http.MethodPost, "/v1/checkout", nil)
	require.Equal(t, "AWAITING_VERIFICATION", decode(t, w)["state"])

	w = c.do(http.MethodPost, "/v1/checkout/birth-date", gin.H{"birth_date": "2020-01-01"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "REJECTED", body["state"])
	assert.Contains(t, body["message"], "legal age")

	w = c.do(http.MethodPost, "/v1/checkout/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "IDLE", decode(t, w)["state"])

	// Cart is untouched after cancel
	w = c.do(http.MethodGet, "/v1/cart", nil)
	assert.Len(t, decode(t, w)["lines"], 1)
}

func TestRouter_OrderWithoutApprovalConflict(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	c.do(http.MethodPost, "/v1/cart/items", gin.H{"dish_id": "85"})
	w := c.do(http.MethodPost, "/v1/orders", gin.H{
		"name":          "Jane Doe",
		"address_line1": "1 Main St",
		"city":          "London",
		"postcode":      "SW1A 1AA",
		"phone":         "07123456789",
		"email":         "jane@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouter_MalformedPostcodeRejectedWithField(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	c.do(http.MethodPost, "/v1/cart/items", gin.H{"dish_id": "85"})
	c.do(http.MethodPost, "/v1/checkout", nil)

	w := c.do(http.MethodPost, "/v1/orders", gin.H{
		"name":          "Jane Doe",
		"address_line1": "1 Main St",
		"city":          "London",
		"postcode":      "12345",
		"phone":         "07123456789",
		"email":         "jane@example.com",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "postcode", decode(t, w)["field"])

	// Gate stays approved so the form can be corrected and resubmitted
	w = c.do(http.MethodPost, "/v1/orders", gin.H{
		"name":          "Jane Doe",
		"address_line1": "1 Main St",
		"city":          "London",
		"postcode":      "SW1A 1AA",
		"phone":         "07123456789",
		"email":         "jane@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRouter_DiscountCodeFlow(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	c.do(http.MethodPost, "/v1/cart/items", gin.H{"dish_id": "85"}) // £9.50
	w := c.do(http.MethodPost, "/v1/cart/discount", gin.H{"code": "SAVE20"})
	require.Equal(t, http.StatusOK, w.Code)

	cart := decode(t, w)["cart"].(map[string]interface{})
	assert.InDelta(t, 7.6, cart["total"].(float64), 0.0001)

	w = c.do(http.MethodPost, "/v1/cart/discount", gin.H{"code": "NOPE"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRouter_MealDealFlow(t *testing.T) {
	c := &testClient{t: t, router: newTestRouter(t)}

	w := c.do(http.MethodPost, "/v1/cart/deals", gin.H{"deal_id": "12"})
	require.Equal(t, http.StatusOK, w.Code)

	cart := decode(t, w)["cart"].(map[string]interface{})
	assert.Len(t, cart["lines"], 3)
	assert.Equal(t, 0.2, cart["discount_fraction"])
}
