package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deal_market/internal/domain"
	"deal_market/internal/domain/entity"
	service "deal_market/internal/domain/service/deal"
	"deal_market/internal/domain/value"
	"deal_market/pkg/errcodes"
)

func threeTierDeal() *entity.Deal {
	d := testDeal()
	d.Tiers = []value.PriceTier{
		{MinQuantity: 1, UnitPrice: 10000},
		{MinQuantity: 5, UnitPrice: 9000},
		{MinQuantity: 10, UnitPrice: 8000},
	}

	return d
}

func TestPrice(t *testing.T) {
	testCases := []struct {
		name        string
		deal        func() *entity.Deal
		quantity    int
		appliedTier int
		unitPrice   value.Money
		totalPrice  value.Money
		savings     *value.Money
	}{
		{
			name: "two tiers, exact second threshold",
			deal: func() *entity.Deal {
				d := testDeal()
				d.Tiers = []value.PriceTier{
					{MinQuantity: 1, UnitPrice: 10000},
					{MinQuantity: 5, UnitPrice: 9000},
				}
				return d
			},
			quantity:    5,
			appliedTier: 2,
			unitPrice:   9000,
			totalPrice:  45000,
			savings:     ptr(value.Money(5000)),
		},
		{
			name:        "below second threshold stays on first",
			deal:        threeTierDeal,
			quantity:    4,
			appliedTier: 1,
			unitPrice:   10000,
			totalPrice:  40000,
		},
		{
			name:        "above top threshold keeps top price",
			deal:        threeTierDeal,
			quantity:    50,
			appliedTier: 3,
			unitPrice:   8000,
			totalPrice:  400000,
			savings:     ptr(value.Money(100000)),
		},
		{
			name:        "single unit",
			deal:        threeTierDeal,
			quantity:    1,
			appliedTier: 1,
			unitPrice:   10000,
			totalPrice:  10000,
		},
		{
			name: "malformed table still picks a tier",
			deal: func() *entity.Deal {
				d := testDeal()
				d.Tiers = []value.PriceTier{
					{MinQuantity: 5, UnitPrice: 10000},
					{MinQuantity: 3, UnitPrice: 9000},
				}
				return d
			},
			quantity:    4,
			appliedTier: 2,
			unitPrice:   9000,
			totalPrice:  36000,
			savings:     ptr(value.Money(4000)),
		},
		{
			name: "malformed table falls back to first tier",
			deal: func() *entity.Deal {
				d := testDeal()
				d.Tiers = []value.PriceTier{
					{MinQuantity: 5, UnitPrice: 10000},
					{MinQuantity: 7, UnitPrice: 9000},
				}
				return d
			},
			quantity:    2,
			appliedTier: 1,
			unitPrice:   10000,
			totalPrice:  20000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			quote, err := service.Price(tc.deal(), tc.quantity)
			rq.NoError(err)

			rq.Equal(tc.appliedTier, quote.AppliedTier)
			rq.Equal(tc.unitPrice, quote.UnitPrice)
			rq.Equal(tc.totalPrice, quote.TotalPrice)

			if tc.savings == nil {
				rq.Nil(quote.Savings)
			} else {
				rq.NotNil(quote.Savings)
				rq.Equal(*tc.savings, *quote.Savings)
			}
		})
	}
}

// Применённый порог всегда наибольший из достигнутых.
func TestPriceHighestSatisfiedThreshold(t *testing.T) {
	rq := require.New(t)

	deal := threeTierDeal()

	for quantity := 1; quantity <= 30; quantity++ {
		quote, err := service.Price(deal, quantity)
		rq.NoError(err)

		expected := 1
		for i, tier := range deal.Tiers[1:] {
			if quantity >= tier.MinQuantity {
				expected = i + 2
			}
		}

		rq.Equal(expected, quote.AppliedTier, "quantity %d", quantity)
		rq.Equal(quote.UnitPrice.Mul(quantity), quote.TotalPrice)
	}
}

func TestPriceInvalidInput(t *testing.T) {
	rq := require.New(t)

	_, err := service.Price(threeTierDeal(), 0)
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.InvalidQuantity))

	_, err = service.Price(threeTierDeal(), -3)
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.InvalidQuantity))

	noTiers := testDeal()
	noTiers.Tiers = nil

	_, err = service.Price(noTiers, 1)
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.InvalidPriceTier))
}
