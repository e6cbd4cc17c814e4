package persistence

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"deal_market/internal/domain"
	"deal_market/internal/domain/entity"
	"deal_market/pkg/errcodes"
)

// MemoryStore — хранилище в памяти с тем же контрактом, что и Postgres-репозитории.
// Используется в тестах и при локальном запуске без базы. Списание ёмкости
// держит тот же инвариант: sold_quantity никогда не превышает max_quantity.
type MemoryStore struct {
	mu       sync.Mutex
	deals    map[string]*entity.Deal
	products map[string]*entity.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		deals:    make(map[string]*entity.Deal),
		products: make(map[string]*entity.Product),
	}
}

func (m *MemoryStore) Create(_ context.Context, deal *entity.Deal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if deal.UpdatedAt.IsZero() {
		deal.UpdatedAt = time.Now()
	}

	m.deals[deal.ID] = cloneDeal(deal)

	return nil
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (*entity.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deal, ok := m.deals[id]
	if !ok {
		return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	return cloneDeal(deal), nil
}

func (m *MemoryStore) ListActive(_ context.Context, limit, offset int) ([]entity.Deal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := make([]entity.Deal, 0, len(m.deals))

	for _, deal := range m.deals {
		if deal.IsActive {
			active = append(active, *cloneDeal(deal))
		}
	}

	sort.Slice(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority > active[j].Priority
		}
		return active[i].UpdatedAt.After(active[j].UpdatedAt)
	})

	if offset >= len(active) {
		return nil, nil
	}

	active = active[offset:]

	if limit > 0 && limit < len(active) {
		active = active[:limit]
	}

	return active, nil
}

func (m *MemoryStore) SetActive(_ context.Context, id string, isActive bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	deal, ok := m.deals[id]
	if !ok {
		return domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	deal.IsActive = isActive
	deal.UpdatedAt = time.Now()

	return nil
}

// Reserve списывает ёмкость под мьютексом: проверка и инкремент — одна
// критическая секция, как одна команда в базе.
func (m *MemoryStore) Reserve(_ context.Context, id string, quantity int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	deal, ok := m.deals[id]
	if !ok {
		return 0, domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	if deal.MaxQuantity != nil && deal.SoldQuantity+quantity > *deal.MaxQuantity {
		return 0, domain.NewError(errcodes.DealSoldOut, "deal capacity is exhausted")
	}

	deal.SoldQuantity += quantity
	deal.UpdatedAt = time.Now()

	return deal.SoldQuantity, nil
}

func (m *MemoryStore) AddProduct(product *entity.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *product
	m.products[product.ID] = &copied
}

func (m *MemoryStore) GetProductByID(_ context.Context, id string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		return nil, domain.NewError(errcodes.ProductNotFound, "product not found")
	}

	copied := *product

	return &copied, nil
}

// Products адаптирует хранилище под интерфейс каталога.
func (m *MemoryStore) Products() *MemoryProductCatalog {
	return &MemoryProductCatalog{store: m}
}

type MemoryProductCatalog struct {
	store *MemoryStore
}

func (c *MemoryProductCatalog) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return c.store.GetProductByID(ctx, id)
}

// cloneDeal копирует предложение вместе со слайсами и указателями,
// чтобы снимок не делил память с хранимой строкой.
func cloneDeal(deal *entity.Deal) *entity.Deal {
	copied := *deal

	copied.Tiers = slices.Clone(deal.Tiers)
	copied.PaymentMethods = slices.Clone(deal.PaymentMethods)
	copied.AllowedColors = slices.Clone(deal.AllowedColors)

	if deal.ExpiresAt != nil {
		expiresAt := *deal.ExpiresAt
		copied.ExpiresAt = &expiresAt
	}

	if deal.MaxQuantity != nil {
		maxQuantity := *deal.MaxQuantity
		copied.MaxQuantity = &maxQuantity
	}

	if deal.SurchargeCheckWeek != nil {
		surcharge := *deal.SurchargeCheckWeek
		copied.SurchargeCheckWeek = &surcharge
	}

	if deal.SurchargeCheckMonth != nil {
		surcharge := *deal.SurchargeCheckMonth
		copied.SurchargeCheckMonth = &surcharge
	}

	return &copied
}
