// demo-orders drives a running YumTum API with generated traffic: it
// browses the catalog, fills a cart, passes age verification when needed
// and places an order with fake customer details. Useful for demos and
// smoke-testing a deployment.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/joho/godotenv"

	"github.com/iStefan20/YumTum/internal/domain"
	"github.com/iStefan20/YumTum/internal/order"
)

const sessionHeader = "X-Session-ID"

type client struct {
	baseURL   string
	sessionID string
	http      *http.Client
}

func main() {
	_ = godotenv.Load()

	baseURL := flag.String("base-url", envOr("YUMTUM_BASE_URL", "http://localhost:8080"), "API base URL")
	orders := flag.Int("orders", 1, "number of orders to place")
	flag.Parse()

	cl := &client{
		baseURL: *baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}

	for i := 0; i < *orders; i++ {
		if err := cl.placeOrder(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to place order: %v\n", err)
			os.Exit(1)
		}
		cl.sessionID = "" // fresh session per order
	}
}

func (c *client) placeOrder() error {
	var dishList struct {
		Dishes []domain.Dish `json:"dishes"`
	}
	if err := c.do("GET", "/v1/catalog/dishes", nil, &dishList); err != nil {
		return fmt.Errorf("list dishes: %w", err)
	}
	if len(dishList.Dishes) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	// Fill the cart with a few random dishes
	count := gofakeit.Number(1, 4)
	for i := 0; i < count; i++ {
		dish := dishList.Dishes[gofakeit.Number(0, len(dishList.Dishes)-1)]
		body := map[string]string{"dish_id": dish.ID}
		if err := c.do("POST", "/v1/cart/items", body, nil); err != nil {
			return fmt.Errorf("add item: %w", err)
		}
		fmt.Printf("  + %s (%s)\n", dish.Name, dish.Price)
	}

	var checkoutResp struct {
		State domain.CheckoutState `json:"state"`
	}
	if err := c.do("POST", "/v1/checkout", nil, &checkoutResp); err != nil {
		return fmt.Errorf("request checkout: %w", err)
	}

	if checkoutResp.State == domain.CheckoutStateAwaitingVerification {
		// Always submit an of-age birth date; the demo is not here to fail
		birth := time.Now().AddDate(-gofakeit.Number(21, 60), 0, 0)
		body := map[string]string{"birth_date": birth.Format("2006-01-02")}
		if err := c.do("POST", "/v1/checkout/birth-date", body, &checkoutResp); err != nil {
			return fmt.Errorf("submit birth date: %w", err)
		}
	}
	if checkoutResp.State != domain.CheckoutStateApproved {
		return fmt.Errorf("checkout not approved: %s", checkoutResp.State)
	}

	details := order.DeliveryDetails{
		Name:         gofakeit.Name(),
		AddressLine1: fmt.Sprintf("%d %s", gofakeit.Number(1, 200), gofakeit.StreetName()),
		City:         gofakeit.City(),
		Postcode:     "SW1A 1AA",
		Phone:        "07" + gofakeit.DigitN(9),
		Email:        gofakeit.Email(),
	}
	var placed domain.Order
	if err := c.do("POST", "/v1/orders", details, &placed); err != nil {
		return fmt.Errorf("submit order: %w", err)
	}

	fmt.Printf("Order %s placed: %d items, total %s\n",
		placed.ID, len(placed.Items), domain.FormatAmount("£", placed.Total))
	return nil
}

func (c *client) do(method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.sessionID != "" {
		req.Header.Set(sessionHeader, c.sessionID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if sid := resp.Header.Get(sessionHeader); sid != "" {
		c.sessionID = sid
	}
	if resp.StatusCode >= 400 {
		var errBody map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return fmt.Errorf("%s %s: status %d: %v", method, path, resp.StatusCode, errBody)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
