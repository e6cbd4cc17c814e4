package service

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"deal_market/internal/domain"
	"deal_market/internal/domain/entity"
	"deal_market/internal/domain/value"
	"deal_market/pkg/contextx"
	"deal_market/pkg/errcodes"
)

const productNameCacheTTL = 10 * time.Minute

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	GetByID(ctx context.Context, id string) (*entity.Deal, error)
	ListActive(ctx context.Context, limit, offset int) ([]entity.Deal, error)
	SetActive(ctx context.Context, id string, active bool) error
	Reserve(ctx context.Context, id string, quantity int) (int, error)
}

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

// QuoteResult — полный расчёт для запрошенного количества и способа оплаты.
// Бизнес-исходы (недействительное предложение, запрещённый способ оплаты)
// не являются ошибками и возвращаются полями результата.
type QuoteResult struct {
	Deal     *entity.Deal
	Validity Validity
	Quote    Quote

	PaymentMethod value.PaymentMethod
	MethodAllowed bool
	Surcharge     value.Money
}

// DealService — фасад движка: проверка валидности, расчёт цены,
// списание ёмкости и сборка сообщений.
type DealService struct {
	dealRepo     DealRepository
	productRepo  ProductRepository
	productNames *cache.Cache
	now          func() time.Time
}

func NewDealService(dealRepo DealRepository, productRepo ProductRepository) *DealService {
	return &DealService{
		dealRepo:     dealRepo,
		productRepo:  productRepo,
		productNames: cache.New(productNameCacheTTL, time.Minute),
		now:          time.Now,
	}
}

// WithClock подменяет источник времени (для тестов).
func (s *DealService) WithClock(now func() time.Time) *DealService {
	s.now = now
	return s
}

func (s *DealService) GetDeal(ctx context.Context, id string) (*entity.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("dealRepo.GetByID: %w", err)
	}

	return deal, nil
}

// ListActive возвращает включённые предложения для витрины.
// Чтение допускает отставание счётчика продаж: на корректность коммита
// влияет только атомарное списание в Reserve.
func (s *DealService) ListActive(ctx context.Context, limit, offset int) ([]entity.Deal, error) {
	deals, err := s.dealRepo.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("dealRepo.ListActive: %w", err)
	}

	return deals, nil
}

// QuoteDeal считает цену, надбавку и валидность одним снимком.
// Используется и чекаутом, и витриной: функция ничего не мутирует.
func (s *DealService) QuoteDeal(
	ctx context.Context,
	dealID string,
	quantity int,
	method value.PaymentMethod,
) (QuoteResult, error) {
	deal, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return QuoteResult{}, fmt.Errorf("dealRepo.GetByID: %w", err)
	}

	quote, err := Price(deal, quantity)
	if err != nil {
		return QuoteResult{}, fmt.Errorf("price: %w", err)
	}

	result := QuoteResult{
		Deal:          deal,
		Validity:      Validate(deal, s.now()),
		Quote:         quote,
		MethodAllowed: true,
	}

	if method != "" {
		result.PaymentMethod = method
		result.MethodAllowed = AccessAllowed(deal, method)

		if result.MethodAllowed {
			result.Surcharge = Surcharge(deal, quantity, method)
		}
	}

	return result, nil
}

// Reserve списывает ёмкость предложения в момент коммита заказа.
// Перед списанием предложение перепроверяется; гонку по ёмкости закрывает
// атомарный условный апдейт в хранилище.
func (s *DealService) Reserve(ctx context.Context, dealID string, quantity int) (int, error) {
	if quantity < 1 {
		return 0, domain.NewError(errcodes.InvalidQuantity, "quantity must be a positive integer")
	}

	deal, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return 0, fmt.Errorf("dealRepo.GetByID: %w", err)
	}

	if validity := Validate(deal, s.now()); !validity.Valid {
		return 0, reservationError(validity.Reason)
	}

	sold, err := s.dealRepo.Reserve(ctx, dealID, quantity)
	if err != nil {
		return 0, fmt.Errorf("dealRepo.Reserve: %w", err)
	}

	logger(ctx).Info("capacity reserved",
		"deal_id", dealID,
		"quantity", quantity,
		"sold_quantity", sold,
	)

	return sold, nil
}

// ComposeMessage собирает текст сообщения по предложению, подтягивая имя
// товара из каталога. Отсутствие товара не фатально: сообщение рендерится
// без имени.
func (s *DealService) ComposeMessage(ctx context.Context, dealID string) (string, error) {
	deal, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return "", fmt.Errorf("dealRepo.GetByID: %w", err)
	}

	return RenderMessage(deal, s.productName(ctx, deal.ProductID), s.now()), nil
}

func (s *DealService) productName(ctx context.Context, productID string) string {
	if cached, found := s.productNames.Get(productID); found {
		if name, ok := cached.(string); ok {
			return name
		}
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger(ctx).Warn("product lookup failed, rendering without name",
			"product_id", productID,
			"error", err,
		)

		return ""
	}

	s.productNames.Set(productID, product.Name, cache.DefaultExpiration)

	return product.Name
}

func reservationError(reason value.DealStatus) error {
	switch reason {
	case value.StatusInactive:
		return domain.NewError(errcodes.DealInactive, "deal is deactivated")
	case value.StatusExpired:
		return domain.NewError(errcodes.DealExpired, "deal deadline has passed")
	case value.StatusSoldOut:
		return domain.NewError(errcodes.DealSoldOut, "deal capacity is exhausted")
	case value.StatusActive:
	}

	return domain.NewError(errcodes.InternalServerError, "unexpected validity reason")
}
