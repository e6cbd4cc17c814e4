package server

import (
	"time"

	"deal_market/internal/domain/entity"
	service "deal_market/internal/domain/service/deal"
	"deal_market/internal/domain/value"
	"deal_market/pkg/lox"
	"deal_market/pkg/rest"
)

func newRESTDeal(deal *entity.Deal) rest.Deal {
	now := time.Now()

	validity := service.Validate(deal, now)
	badge := service.Badge(deal)

	restDeal := rest.Deal{
		ID:          deal.ID,
		ProductID:   deal.ProductID,
		Title:       deal.Title,
		Description: deal.Description,
		Notes:       deal.Notes,
		Priority:    deal.Priority,
		Tiers: lox.Map(deal.Tiers, func(tier value.PriceTier) rest.PriceTier {
			return rest.PriceTier{
				MinQuantity: tier.MinQuantity,
				UnitPrice:   tier.UnitPrice.Int64(),
			}
		}),
		MaxQuantity:  deal.MaxQuantity,
		SoldQuantity: deal.SoldQuantity,
		PaymentMethods: lox.Map(deal.PaymentMethods, func(method value.PaymentMethod) string {
			return method.String()
		}),
		PaymentNotes:      deal.PaymentNotes,
		AllowedColors:     deal.AllowedColors,
		RequiredImporter:  deal.RequiredImporter,
		IsESIM:            deal.IsESIM,
		AdditionalSpecs:   deal.AdditionalSpecs,
		IsActive:          deal.IsActive,
		Status:            service.Status(deal, now).String(),
		Badge:             badge.Tier.String(),
		BadgeIcon:         badge.Icon,
		RemainingQuantity: validity.RemainingQuantity,
	}

	if deal.ExpiresAt != nil {
		expiresAt := deal.ExpiresAt.UTC().Format(time.RFC3339)
		restDeal.ExpiresAt = &expiresAt
	}

	if validity.TimeRemaining != nil {
		timeRemainingMs := validity.TimeRemaining.Milliseconds()
		restDeal.TimeRemainingMs = &timeRemainingMs
	}

	return restDeal
}

func newRESTQuote(result service.QuoteResult) rest.Quote {
	quote := rest.Quote{
		DealID:      result.Deal.ID,
		Quantity:    result.Quote.Quantity,
		AppliedTier: result.Quote.AppliedTier,
		UnitPrice:   result.Quote.UnitPrice.Int64(),
		TotalPrice:  result.Quote.TotalPrice.Int64(),
		Surcharge:   result.Surcharge.Int64(),
		Valid:       result.Validity.Valid,
	}

	if result.Quote.Savings != nil {
		savings := result.Quote.Savings.Int64()
		quote.Savings = &savings
	}

	if !result.Validity.Valid {
		quote.Reason = result.Validity.Reason.String()
	}

	if result.PaymentMethod != "" {
		quote.PaymentMethod = result.PaymentMethod.String()
		methodAllowed := result.MethodAllowed
		quote.PaymentMethodAllowed = &methodAllowed
	}

	return quote
}
