package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// API is the client side of the three server endpoints.
type API struct {
	BaseURL string
	HTTP    *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{BaseURL: baseURL, HTTP: http.DefaultClient}
}

type Restaurant struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
}

type FoodItem struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	RestaurantName string  `json:"restaurantName"`
	Rating         float64 `json:"rating"`
}

type Customer struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

type OrderItem struct {
	FoodID   uint `json:"foodId"`
	Quantity int  `json:"quantity"`
}

type Payment struct {
	Method string `json:"method"`
}

type OrderRequest struct {
	Customer Customer    `json:"customer"`
	Items    []OrderItem `json:"items"`
	Payment  *Payment    `json:"payment,omitempty"`
}

type OrderResponse struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	OrderID    uint    `json:"order_id"`
	OrderTotal float64 `json:"order_total"`
}

func (a *API) Restaurants(ctx context.Context) ([]Restaurant, error) {
	var out []Restaurant
	if err := a.getList(ctx, "/api/restaurants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) Foods(ctx context.Context) ([]FoodItem, error) {
	var out []FoodItem
	if err := a.getList(ctx, "/api/food", url.Values{"action": {"all"}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) FoodsByRestaurant(ctx context.Context, restaurantID uint) ([]FoodItem, error) {
	q := url.Values{"action": {"restaurant"}, "id": {fmt.Sprint(restaurantID)}}
	var out []FoodItem
	if err := a.getList(ctx, "/api/food", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) Food(ctx context.Context, foodID uint) (*FoodItem, error) {
	q := url.Values{"action": {"item"}, "id": {fmt.Sprint(foodID)}}
	var out FoodItem
	if err := a.getJSON(ctx, "/api/food", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaceOrder submits the request and decodes either envelope the server
// answers with.
func (a *API) PlaceOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := a.HTTP.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var out struct {
		OrderResponse
		Error string `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, fmt.Errorf("order rejected: %s", out.Error)
	}
	return &out.OrderResponse, nil
}

// Checkout turns the cart plus the customer form into an order request and
// clears the cart once the server confirms.
func (a *API) Checkout(ctx context.Context, cart *Cart, customer Customer, payment *Payment) (*OrderResponse, error) {
	items := make([]OrderItem, 0, cart.Len())
	for _, l := range cart.Lines() {
		items = append(items, OrderItem{FoodID: l.FoodID, Quantity: l.Quantity})
	}

	res, err := a.PlaceOrder(ctx, &OrderRequest{Customer: customer, Items: items, Payment: payment})
	if err != nil {
		return nil, err
	}
	if err := cart.Clear(); err != nil {
		return nil, err
	}
	return res, nil
}

// getList decodes a JSON array, treating the server's empty-result
// {"message": …} envelope as an empty list.
func (a *API) getList(ctx context.Context, path string, q url.Values, out any) error {
	var raw json.RawMessage
	if err := a.getJSON(ctx, path, q, &raw); err != nil {
		return err
	}
	if len(raw) > 0 && raw[0] == '{' {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (a *API) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := a.BaseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := a.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&e); err == nil && e.Error != "" {
			return fmt.Errorf("request failed: %s", e.Error)
		}
		return fmt.Errorf("request failed: status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
