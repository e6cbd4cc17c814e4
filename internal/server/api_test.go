package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"deal_market/pkg/rest"
	"deal_market/pkg/tests"
)

// Прогон всего REST-контракта через настоящий HTTP-клиент.
func TestAPIContract(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	router, _ := newTestRouter(t, storedDeal())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := tests.NewAPIClient(srv.URL, srv.Client())

	var deal rest.Deal

	resp, err := client.Get(ctx, "/v1/deals/deal-1", http.Header{}, &deal, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("deal-1", deal.ID)

	var quote rest.Quote

	resp, err = client.Get(ctx, "/v1/deals/deal-1/quote?quantity=5&payment_method=cash", http.Header{}, &quote, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(int64(45000), quote.TotalPrice)

	var errBody rest.Error

	resp, err = client.Get(ctx, "/v1/deals/missing", http.Header{}, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode("DealNotFound"), errBody.Code)
}

// Серия резервов случайного размера против ёмкости: сумма успешных
// списаний никогда не превышает лимит, отказ всегда объясняется кодом.
func TestAPIReserveUntilSoldOut(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	router, _ := newTestRouter(t, storedDeal())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client := tests.NewAPIClient(srv.URL, srv.Client())
	random := tests.NewRandomizer()

	const capacity = 10

	reserved := 0

	for reserved < capacity {
		quantity := 1
		if random.Bool() {
			quantity = 2
		}

		var (
			response rest.ReserveResponse
			errBody  rest.Error
		)

		resp, err := client.Post(ctx, "/v1/deals/deal-1/reserve", http.Header{},
			rest.ReserveRequest{Quantity: quantity}, &response, &errBody)
		rq.NoError(err)

		switch resp.StatusCode {
		case http.StatusOK:
			reserved += quantity
			rq.Equal(reserved, response.SoldQuantity)
		case http.StatusConflict:
			rq.Equal(rest.ErrorCode("DealSoldOut"), errBody.Code)
			rq.Equal(capacity-1, reserved) // отказ возможен только на последней штуке
			reserved = capacity - 1

			quantity = 1
			resp, err = client.Post(ctx, "/v1/deals/deal-1/reserve", http.Header{},
				rest.ReserveRequest{Quantity: quantity}, &response, &errBody)
			rq.NoError(err)
			rq.Equal(http.StatusOK, resp.StatusCode)

			reserved += quantity
		default:
			t.Fatalf("unexpected status: %d", resp.StatusCode)
		}
	}

	rq.Equal(capacity, reserved)

	var errBody rest.Error

	resp, err := client.Post(ctx, "/v1/deals/deal-1/reserve", http.Header{},
		rest.ReserveRequest{Quantity: 1}, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusConflict, resp.StatusCode)
	rq.Equal(rest.ErrorCode("DealSoldOut"), errBody.Code)
}
