package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"deal_market/internal/domain"
	"deal_market/internal/domain/entity"
	service "deal_market/internal/domain/service/deal"
	"deal_market/internal/domain/value"
	"deal_market/pkg/errcodes"
	"deal_market/pkg/httpx/reply"
	"deal_market/pkg/httpx/req"
	"deal_market/pkg/rest"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type dealService interface {
	GetDeal(ctx context.Context, id string) (*entity.Deal, error)
	ListActive(ctx context.Context, limit, offset int) ([]entity.Deal, error)
	QuoteDeal(ctx context.Context, dealID string, quantity int, method value.PaymentMethod) (service.QuoteResult, error)
	Reserve(ctx context.Context, dealID string, quantity int) (int, error)
	ComposeMessage(ctx context.Context, dealID string) (string, error)
}

type alertEnqueuer interface {
	EnqueueDealAlert(ctx context.Context, dealID string) error
}

type DealServer struct {
	dealService dealService
	alerts      alertEnqueuer
}

func NewDealServer(dealService dealService, alerts alertEnqueuer) DealServer {
	return DealServer{
		dealService: dealService,
		alerts:      alerts,
	}
}

func (s DealServer) getV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	deal, err := s.dealService.GetDeal(ctx, chi.URLParam(r, "id"))
	if err != nil {
		return asFailure(fmt.Errorf("dealService.GetDeal: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(deal))

	return nil
}

func (s DealServer) listV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		return err
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		return err
	}

	deals, err := s.dealService.ListActive(ctx, limit, offset)
	if err != nil {
		return asFailure(fmt.Errorf("dealService.ListActive: %w", err))
	}

	restDeals := make([]rest.Deal, 0, len(deals))
	for i := range deals {
		restDeals = append(restDeals, newRESTDeal(&deals[i]))
	}

	reply.JSON(ctx, w, http.StatusOK, restDeals)

	return nil
}

func (s DealServer) getV1DealQuote(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	quantity, err := queryInt(r, "quantity", 0)
	if err != nil {
		return err
	}

	if quantity < 1 {
		return failure.NewInvalidArgumentError(
			"quantity must be a positive integer",
			failure.WithCode(errcodes.InvalidQuantity),
			failure.WithDescription("Quantity must be a positive integer"),
		)
	}

	var method value.PaymentMethod

	if raw := r.URL.Query().Get("payment_method"); raw != "" {
		method, err = value.ParsePaymentMethod(raw)
		if err != nil {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("value.ParsePaymentMethod: %w", err),
				failure.WithCode(errcodes.InvalidPaymentMethod),
			)
		}
	}

	result, err := s.dealService.QuoteDeal(ctx, chi.URLParam(r, "id"), quantity, method)
	if err != nil {
		return asFailure(fmt.Errorf("dealService.QuoteDeal: %w", err))
	}

	observeQuote(result.Validity.Valid)

	reply.JSON(ctx, w, http.StatusOK, newRESTQuote(result))

	return nil
}

func (s DealServer) postV1DealReserve(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	dealID := chi.URLParam(r, "id")

	var request rest.ReserveRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	soldQuantity, err := s.dealService.Reserve(ctx, dealID, request.Quantity)
	if err != nil {
		observeReservation("rejected")
		return asFailure(fmt.Errorf("dealService.Reserve: %w", err))
	}

	observeReservation("ok")

	reply.JSON(ctx, w, http.StatusOK, rest.ReserveResponse{
		DealID:       dealID,
		SoldQuantity: soldQuantity,
	})

	return nil
}

func (s DealServer) getV1DealMessage(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	dealID := chi.URLParam(r, "id")

	text, err := s.dealService.ComposeMessage(ctx, dealID)
	if err != nil {
		return asFailure(fmt.Errorf("dealService.ComposeMessage: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Message{
		DealID: dealID,
		Text:   text,
	})

	return nil
}

func (s DealServer) postV1DealAlert(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	dealID := chi.URLParam(r, "id")

	// Убеждаемся, что предложение существует, до постановки в очередь.
	if _, err := s.dealService.GetDeal(ctx, dealID); err != nil {
		return asFailure(fmt.Errorf("dealService.GetDeal: %w", err))
	}

	if err := s.alerts.EnqueueDealAlert(ctx, dealID); err != nil {
		return fmt.Errorf("alerts.EnqueueDealAlert: %w", err)
	}

	reply.OK(w)

	return nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("query parameter %q must be a non-negative integer", name),
			failure.WithCode(errcodes.ValidationError),
		)
	}

	return parsed, nil
}

// asFailure поднимает доменный код ошибки до HTTP-классификации.
func asFailure(err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	switch code {
	case errcodes.DealNotFound, errcodes.ProductNotFound, errcodes.NotFound:
		return failure.NewNotFoundErrorFromError(err, failure.WithCode(code))
	case errcodes.DealSoldOut, errcodes.DealInactive, errcodes.DealExpired:
		return failure.NewConflictErrorFromError(err, failure.WithCode(code))
	case errcodes.InvalidQuantity, errcodes.InvalidPaymentMethod,
		errcodes.InvalidDealID, errcodes.InvalidPriceTier, errcodes.ValidationError:
		return failure.NewInvalidArgumentErrorFromError(err, failure.WithCode(code))
	case errcodes.PaymentMethodNotAllowed:
		return failure.NewUnprocessableEntityErrorFromError(err, failure.WithCode(code))
	}

	return err
}
