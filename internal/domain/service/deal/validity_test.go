package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"deal_market/internal/domain/entity"
	service "deal_market/internal/domain/service/deal"
	"deal_market/internal/domain/value"
)

func ptr[T any](v T) *T {
	return &v
}

func testDeal() *entity.Deal {
	return &entity.Deal{
		ID:        "deal-1",
		ProductID: "product-1",
		Title:     "iPhone 15 bundle",
		Priority:  5,
		Tiers: []value.PriceTier{
			{MinQuantity: 1, UnitPrice: 10000},
		},
		IsActive: true,
	}
}

func TestValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		deal          func() *entity.Deal
		valid         bool
		reason        value.DealStatus
		remaining     *int
		timeRemaining *time.Duration
	}{
		{
			name:  "no constraints",
			deal:  testDeal,
			valid: true,
		},
		{
			name: "inactive short-circuits everything",
			deal: func() *entity.Deal {
				d := testDeal()
				d.IsActive = false
				d.ExpiresAt = ptr(now.Add(-time.Hour))
				d.MaxQuantity = ptr(10)
				d.SoldQuantity = 10
				return d
			},
			valid:  false,
			reason: value.StatusInactive,
		},
		{
			name: "deadline passed",
			deal: func() *entity.Deal {
				d := testDeal()
				d.ExpiresAt = ptr(now.Add(-time.Hour))
				return d
			},
			valid:  false,
			reason: value.StatusExpired,
		},
		{
			name: "deadline ahead reports time remaining",
			deal: func() *entity.Deal {
				d := testDeal()
				d.ExpiresAt = ptr(now.Add(2 * time.Hour))
				return d
			},
			valid:         true,
			timeRemaining: ptr(2 * time.Hour),
		},
		{
			name: "capacity exhausted",
			deal: func() *entity.Deal {
				d := testDeal()
				d.MaxQuantity = ptr(10)
				d.SoldQuantity = 10
				return d
			},
			valid:  false,
			reason: value.StatusSoldOut,
		},
		{
			name: "capacity left reports remaining",
			deal: func() *entity.Deal {
				d := testDeal()
				d.MaxQuantity = ptr(10)
				d.SoldQuantity = 3
				return d
			},
			valid:     true,
			remaining: ptr(7),
		},
		{
			name: "both constraints violated, expired wins",
			deal: func() *entity.Deal {
				d := testDeal()
				d.ExpiresAt = ptr(now.Add(-time.Minute))
				d.MaxQuantity = ptr(5)
				d.SoldQuantity = 5
				return d
			},
			valid:  false,
			reason: value.StatusExpired,
		},
		{
			name: "both constraints satisfied",
			deal: func() *entity.Deal {
				d := testDeal()
				d.ExpiresAt = ptr(now.Add(30 * time.Minute))
				d.MaxQuantity = ptr(10)
				d.SoldQuantity = 4
				return d
			},
			valid:         true,
			remaining:     ptr(6),
			timeRemaining: ptr(30 * time.Minute),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			deal := tc.deal()
			validity := service.Validate(deal, now)

			rq.Equal(tc.valid, validity.Valid)
			rq.Equal(tc.reason, validity.Reason)

			if tc.remaining != nil {
				rq.NotNil(validity.RemainingQuantity)
				rq.Equal(*tc.remaining, *validity.RemainingQuantity)
			}

			if tc.timeRemaining != nil {
				rq.NotNil(validity.TimeRemaining)
				rq.Equal(*tc.timeRemaining, *validity.TimeRemaining)
			}
		})
	}
}

func TestValidateIsPure(t *testing.T) {
	rq := require.New(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	deal := testDeal()
	deal.ExpiresAt = ptr(now.Add(time.Hour))
	deal.MaxQuantity = ptr(10)
	deal.SoldQuantity = 2

	before := *deal

	first := service.Validate(deal, now)
	second := service.Validate(deal, now)

	rq.Equal(first, second)
	rq.Equal(before, *deal)
}

func TestStatusAgreesWithValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	deals := []*entity.Deal{
		testDeal(),
		func() *entity.Deal {
			d := testDeal()
			d.IsActive = false
			return d
		}(),
		func() *entity.Deal {
			d := testDeal()
			d.ExpiresAt = ptr(now.Add(-time.Hour))
			return d
		}(),
		func() *entity.Deal {
			d := testDeal()
			d.MaxQuantity = ptr(1)
			d.SoldQuantity = 1
			return d
		}(),
	}

	for _, deal := range deals {
		rq := require.New(t)

		validity := service.Validate(deal, now)
		status := service.Status(deal, now)

		rq.Equal(validity.Valid, status == value.StatusActive)

		if !validity.Valid {
			rq.Equal(validity.Reason, status)
		}
	}
}
