//go:build integration

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type responseAssertion func(*http.Response)

func sendRequest[TReq any, TResp any](
	c *http.Client,
	url string,
	method string,
	req TReq,
	opts ...responseAssertion,
) (TResp, error) {
	var resp TResp

	payload, err := json.Marshal(req)
	if err != nil {
		return resp, err
	}

	httpReq, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return resp, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.Do(httpReq)
	if err != nil {
		return resp, err
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	for _, opt := range opts {
		opt(httpResp)
	}

	responsePayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return resp, err
	}

	if len(responsePayload) > 0 {
		if err := json.Unmarshal(responsePayload, &resp); err != nil {
			return resp, err
		}
	}

	return resp, nil
}

func expectStatus(t *testing.T, status int) responseAssertion {
	return func(resp *http.Response) {
		require.Equal(t, status, resp.StatusCode)
	}
}

func url(path string, args ...any) string {
	return fixture.baseURL + fmt.Sprintf(path, args...)
}

type messageResponse struct {
	Message string `json:"message"`
}

type productResponse struct {
	ProductID   int64    `json:"product_id"`
	ProductName string   `json:"product_name"`
	Price       *float64 `json:"price"`
}

type countryResponse struct {
	CountryID   int64  `json:"country_id"`
	CountryName string `json:"country_name"`
	RegionID    int64  `json:"region_id"`
}

type itemTypeResponse struct {
	ItemTypeID   int64  `json:"item_type_id"`
	ItemTypeName string `json:"item_type_name"`
}

type salesChannelResponse struct {
	ChannelID   int64  `json:"channel_id"`
	ChannelName string `json:"channel_name"`
}

func Test_Product_Lifecycle(t *testing.T) {
	// Create
	created, err := sendRequest[map[string]any, productResponse](
		fixture.client,
		url("/api/products"),
		http.MethodPost,
		map[string]any{"product_name": "Widget"},
		expectStatus(t, http.StatusCreated),
		func(resp *http.Response) {
			require.NotEmpty(t, resp.Header.Get("Location"))
		},
	)
	require.NoError(t, err)
	require.Positive(t, created.ProductID)
	require.Equal(t, "Widget", created.ProductName)
	require.Nil(t, created.Price)

	// Get
	fetched, err := sendRequest[any, productResponse](
		fixture.client,
		url("/api/products/%d", created.ProductID),
		http.MethodGet,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, created, fetched)

	// Update
	updated, err := sendRequest[map[string]any, productResponse](
		fixture.client,
		url("/api/products/%d", created.ProductID),
		http.MethodPut,
		map[string]any{"product_name": "Widget Pro", "price": 19.99},
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, created.ProductID, updated.ProductID)
	require.Equal(t, "Widget Pro", updated.ProductName)
	require.NotNil(t, updated.Price)
	require.InDelta(t, 19.99, *updated.Price, 0.001)

	// Delete
	deleted, err := sendRequest[any, messageResponse](
		fixture.client,
		url("/api/products/%d", created.ProductID),
		http.MethodDelete,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, "Product deleted successfully", deleted.Message)

	// Gone
	missing, err := sendRequest[any, messageResponse](
		fixture.client,
		url("/api/products/%d", created.ProductID),
		http.MethodGet,
		nil,
		expectStatus(t, http.StatusNotFound),
	)
	require.NoError(t, err)
	require.Equal(t, "Product not found", missing.Message)

	_, err = sendRequest[any, messageResponse](
		fixture.client,
		url("/api/products/%d", created.ProductID),
		http.MethodDelete,
		nil,
		expectStatus(t, http.StatusNotFound),
	)
	require.NoError(t, err)
}

func Test_List_Products_Is_Ordered_By_ID(t *testing.T) {
	for _, name := range []string{"First", "Second", "Third"} {
		_, err := sendRequest[map[string]any, productResponse](
			fixture.client,
			url("/api/products"),
			http.MethodPost,
			map[string]any{"product_name": name, "price": 1},
			expectStatus(t, http.StatusCreated),
		)
		require.NoError(t, err)
	}

	products, err := sendRequest[any, []productResponse](
		fixture.client,
		url("/api/products"),
		http.MethodGet,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(products), 3)

	for i := 1; i < len(products); i++ {
		require.Less(t, products[i-1].ProductID, products[i].ProductID)
	}
}

func Test_Update_Missing_Product_Returns_Not_Found(t *testing.T) {
	resp, err := sendRequest[map[string]any, messageResponse](
		fixture.client,
		url("/api/products/%d", 999999999),
		http.MethodPut,
		map[string]any{"product_name": "Ghost"},
		expectStatus(t, http.StatusNotFound),
	)
	require.NoError(t, err)
	require.Equal(t, "Product not found", resp.Message)
}

func Test_Country_Lifecycle(t *testing.T) {
	created, err := sendRequest[map[string]any, countryResponse](
		fixture.client,
		url("/api/countries"),
		http.MethodPost,
		map[string]any{"country_name": "Croatia", "region_id": 3},
		expectStatus(t, http.StatusCreated),
	)
	require.NoError(t, err)
	require.Equal(t, "Croatia", created.CountryName)
	require.Equal(t, int64(3), created.RegionID)

	updated, err := sendRequest[map[string]any, countryResponse](
		fixture.client,
		url("/api/countries/%d", created.CountryID),
		http.MethodPut,
		map[string]any{"country_name": "Hrvatska", "region_id": 4},
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, countryResponse{CountryID: created.CountryID, CountryName: "Hrvatska", RegionID: 4}, updated)

	countries, err := sendRequest[any, []countryResponse](
		fixture.client,
		url("/api/countries"),
		http.MethodGet,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Contains(t, countries, updated)

	deleted, err := sendRequest[any, messageResponse](
		fixture.client,
		url("/api/countries/%d", created.CountryID),
		http.MethodDelete,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, "Country deleted successfully", deleted.Message)

	_, err = sendRequest[any, messageResponse](
		fixture.client,
		url("/api/countries/%d", created.CountryID),
		http.MethodGet,
		nil,
		expectStatus(t, http.StatusNotFound),
	)
	require.NoError(t, err)
}

func Test_Item_Type_Lifecycle(t *testing.T) {
	created, err := sendRequest[map[string]any, itemTypeResponse](
		fixture.client,
		url("/api/item-types"),
		http.MethodPost,
		map[string]any{"item_type_name": "Cosmetics"},
		expectStatus(t, http.StatusCreated),
	)
	require.NoError(t, err)

	fetched, err := sendRequest[any, itemTypeResponse](
		fixture.client,
		url("/api/item-types/%d", created.ItemTypeID),
		http.MethodGet,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, created, fetched)

	deleted, err := sendRequest[any, messageResponse](
		fixture.client,
		url("/api/item-types/%d", created.ItemTypeID),
		http.MethodDelete,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, "Item type deleted successfully", deleted.Message)
}

func Test_Sales_Channel_Lifecycle(t *testing.T) {
	created, err := sendRequest[map[string]any, salesChannelResponse](
		fixture.client,
		url("/api/sales-channels"),
		http.MethodPost,
		map[string]any{"channel_name": "Online"},
		expectStatus(t, http.StatusCreated),
	)
	require.NoError(t, err)

	updated, err := sendRequest[map[string]any, salesChannelResponse](
		fixture.client,
		url("/api/sales-channels/%d", created.ChannelID),
		http.MethodPut,
		map[string]any{"channel_name": "Offline"},
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, "Offline", updated.ChannelName)

	deleted, err := sendRequest[any, messageResponse](
		fixture.client,
		url("/api/sales-channels/%d", created.ChannelID),
		http.MethodDelete,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
	require.Equal(t, "Sales channel deleted successfully", deleted.Message)
}

func Test_Status_Reports_Healthy(t *testing.T) {
	_, err := sendRequest[any, map[string]any](
		fixture.client,
		url("/status"),
		http.MethodGet,
		nil,
		expectStatus(t, http.StatusOK),
	)
	require.NoError(t, err)
}
