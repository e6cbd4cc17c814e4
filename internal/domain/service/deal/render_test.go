package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	service "deal_market/internal/domain/service/deal"
	"deal_market/internal/domain/value"
)

func TestBadge(t *testing.T) {
	testCases := []struct {
		priority int
		tier     value.BadgeTier
	}{
		{priority: 20, tier: value.BadgeHot},
		{priority: 15, tier: value.BadgeHot},
		{priority: 14, tier: value.BadgeTrending},
		{priority: 10, tier: value.BadgeTrending},
		{priority: 9, tier: value.BadgeFresh},
		{priority: 0, tier: value.BadgeFresh},
		{priority: -1, tier: value.BadgeFresh},
	}

	for _, tc := range testCases {
		rq := require.New(t)

		deal := testDeal()
		deal.Priority = tc.priority

		badge := service.Badge(deal)
		rq.Equal(tc.tier, badge.Tier, "priority %d", tc.priority)
		rq.NotEmpty(badge.Icon)
	}
}

func TestRenderMessage(t *testing.T) {
	rq := require.New(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	deal := threeTierDeal()
	deal.Priority = 20
	deal.Description = "Limited stock from official distributor"
	deal.ExpiresAt = ptr(now.Add(2*24*time.Hour + 3*time.Hour + 15*time.Minute))
	deal.MaxQuantity = ptr(100)
	deal.SoldQuantity = 40
	deal.PaymentMethods = []value.PaymentMethod{value.PaymentCash, value.PaymentCheckMonth}
	deal.PaymentNotes = "Checks from verified buyers only"
	deal.AllowedColors = []string{"black", "titanium"}
	deal.IsESIM = true
	deal.RequiredImporter = "Official"

	text := service.RenderMessage(deal, "iPhone 15 Pro", now)

	rq.Contains(text, "<b>iPhone 15 bundle</b>")
	rq.Contains(text, "iPhone 15 Pro")
	rq.Contains(text, "Limited stock from official distributor")
	rq.Contains(text, "1+ pcs — 100.00 each")
	rq.Contains(text, "5+ pcs — 90.00 each")
	rq.Contains(text, "10+ pcs — 80.00 each")
	rq.Contains(text, "Ends in 2d 3h 15m")
	rq.Contains(text, "60 of 100 left")
	rq.Contains(text, "Payment: cash, check (month)")
	rq.Contains(text, "Checks from verified buyers only")
	rq.Contains(text, "Colors: black, titanium")
	rq.Contains(text, "eSIM only")
	rq.Contains(text, "Importer: Official")

	// Порядок блоков фиксированный.
	title := strings.Index(text, "iPhone 15 bundle")
	tiers := strings.Index(text, "1+ pcs")
	ends := strings.Index(text, "Ends in")
	payment := strings.Index(text, "Payment:")
	colors := strings.Index(text, "Colors:")

	rq.Less(title, tiers)
	rq.Less(tiers, ends)
	rq.Less(ends, payment)
	rq.Less(payment, colors)
}

func TestRenderMessageNoEmphasisBelowHot(t *testing.T) {
	rq := require.New(t)

	deal := testDeal()
	deal.Priority = 5

	text := service.RenderMessage(deal, "", time.Now())

	rq.NotContains(text, "<b>")
	rq.Contains(text, "iPhone 15 bundle")
}

func TestRenderMessageUnconstrained(t *testing.T) {
	rq := require.New(t)

	text := service.RenderMessage(testDeal(), "Widget", time.Now())

	rq.NotContains(text, "Ends in")
	rq.NotContains(text, "left")
	// Без ограничений по оплате перечисляются все способы.
	rq.Contains(text, "cash, bank transfer, check (week), check (month)")
}

func TestRenderMessageIsIdempotent(t *testing.T) {
	rq := require.New(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	deal := threeTierDeal()
	deal.ExpiresAt = ptr(now.Add(time.Hour))

	rq.Equal(
		service.RenderMessage(deal, "Widget", now),
		service.RenderMessage(deal, "Widget", now),
	)
}
