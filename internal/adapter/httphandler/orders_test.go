package httphandler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderResp struct {
	ID                int        `json:"id"`
	Username          string     `json:"username"`
	PaymentType       string     `json:"paymentType"`
	LoyaltyCardNumber *string    `json:"loyaltyCardNumber"`
	TotalAmount       float64    `json:"totalAmount"`
	Status            string     `json:"status"`
	CompletedOnUTC    *time.Time `json:"completedOnUtc"`
	Products          []struct {
		ProductID          int     `json:"productId"`
		ProductName        string  `json:"productName"`
		Quantity           int     `json:"quantity"`
		TotalPrice         float64 `json:"totalPrice"`
		TotalPurchasePrice float64 `json:"totalPurchasePrice"`
		Profit             float64 `json:"profit"`
	} `json:"products"`
}

type ordersPageResp struct {
	Orders     []orderResp `json:"orders"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

const createOrderBody = `{
	"username": "admin",
	"paymentType": "Card",
	"products": [
		{"productId": 1, "productName": "Смартфон Galaxy S24",
		"quantity": 2, "unitPrice": 100, "purchasePrice": 60}
	]
}`

func createOrder(t *testing.T, h http.Handler, body string) int {
	t.Helper()

	w := doJSON(t, h, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID int `json:"id"`
	}
	decodeBody(t, w, &resp)
	return resp.ID
}

func TestOrdersEndpoint(t *testing.T) {
	t.Run("CreateComputesAmounts", func(t *testing.T) {
		h := newTestHandler(t, nil)
		id := createOrder(t, h, createOrderBody)
		assert.Equal(t, 1, id)

		w := doJSON(t, h, http.MethodGet, "/orders", "")
		require.Equal(t, http.StatusOK, w.Code)

		var page ordersPageResp
		decodeBody(t, w, &page)
		require.Len(t, page.Orders, 1)

		o := page.Orders[0]
		assert.Equal(t, "Active", o.Status)
		assert.InDelta(t, 200, o.TotalAmount, 1e-9)
		assert.Nil(t, o.CompletedOnUTC)
		assert.Nil(t, o.LoyaltyCardNumber)
		require.Len(t, o.Products, 1)
		assert.InDelta(t, 200, o.Products[0].TotalPrice, 1e-9)
		assert.InDelta(t, 120, o.Products[0].TotalPurchasePrice, 1e-9)
		assert.InDelta(t, 80, o.Products[0].Profit, 1e-9)
	})

	t.Run("CreateDefaultsPaymentTypeAndProductName", func(t *testing.T) {
		h := newTestHandler(t, nil)
		createOrder(t, h, `{
			"username": "admin",
			"products": [
				{"productId": 1, "quantity": 1,
				"unitPrice": 50, "purchasePrice": 20}
			]
		}`)

		w := doJSON(t, h, http.MethodGet, "/orders", "")
		var page ordersPageResp
		decodeBody(t, w, &page)
		require.Len(t, page.Orders, 1)
		assert.Equal(t, "Card", page.Orders[0].PaymentType)
		assert.Equal(t, "Товар", page.Orders[0].Products[0].ProductName)
	})

	t.Run("CreateLineMissingField", func(t *testing.T) {
		h := newTestHandler(t, nil)

		w := doJSON(t, h, http.MethodPost, "/orders", `{
			"username": "admin",
			"products": [{"productId": 1, "quantity": 2}]
		}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid request data"}`, w.Body.String())
	})

	t.Run("CreateMissingUsername", func(t *testing.T) {
		h := newTestHandler(t, nil)

		w := doJSON(t, h, http.MethodPost, "/orders", `{
			"products": [
				{"productId": 1, "quantity": 1,
				"unitPrice": 50, "purchasePrice": 20}
			]
		}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		h := newTestHandler(t, nil)
		id1 := createOrder(t, h, createOrderBody)
		id2 := createOrder(t, h, createOrderBody)

		w := doJSON(t, h, http.MethodGet, "/orders", "")
		var page ordersPageResp
		decodeBody(t, w, &page)
		require.Len(t, page.Orders, 2)
		assert.Equal(t, id2, page.Orders[0].ID)
		assert.Equal(t, id1, page.Orders[1].ID)
	})

	t.Run("CompleteAction", func(t *testing.T) {
		h := newTestHandler(t, nil)
		id := createOrder(t, h, createOrderBody)

		w := doJSON(t, h, http.MethodPost, "/orders", fmt.Sprintf(
			`{"action":"complete","orderId":%d}`, id))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())

		w = doJSON(t, h, http.MethodGet, "/orders", "")
		var page ordersPageResp
		decodeBody(t, w, &page)
		assert.Equal(t, "Completed", page.Orders[0].Status)
		assert.NotNil(t, page.Orders[0].CompletedOnUTC)
	})

	t.Run("CancelAction", func(t *testing.T) {
		h := newTestHandler(t, nil)
		id := createOrder(t, h, createOrderBody)

		w := doJSON(t, h, http.MethodPost, "/orders", fmt.Sprintf(
			`{"action":"cancel","orderId":%d}`, id))
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, h, http.MethodGet, "/orders", "")
		var page ordersPageResp
		decodeBody(t, w, &page)
		assert.Equal(t, "Cancelled", page.Orders[0].Status)
		assert.Nil(t, page.Orders[0].CompletedOnUTC)
	})

	t.Run("CompleteTwiceConflicts", func(t *testing.T) {
		h := newTestHandler(t, nil)
		id := createOrder(t, h, createOrderBody)

		body := fmt.Sprintf(`{"action":"complete","orderId":%d}`, id)
		w := doJSON(t, h, http.MethodPost, "/orders", body)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, h, http.MethodPost, "/orders", body)
		require.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t,
			`{"error":"Order is already finished"}`, w.Body.String())
	})

	t.Run("CompleteUnknownID", func(t *testing.T) {
		h := newTestHandler(t, nil)

		w := doJSON(t, h, http.MethodPost, "/orders",
			`{"action":"complete","orderId":42}`)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		h := newTestHandler(t, nil)

		w := doJSON(t, h, http.MethodDelete, "/orders", "")
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("Preflight", func(t *testing.T) {
		h := newTestHandler(t, nil)

		w := doJSON(t, h, http.MethodOptions, "/orders", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "GET, POST, OPTIONS",
			w.Header().Get("Access-Control-Allow-Methods"))
	})
}
