package service

import (
	"deal_market/internal/domain"
	"deal_market/internal/domain/entity"
	"deal_market/internal/domain/value"
	"deal_market/pkg/errcodes"
)

// Quote — результат подбора ценового порога для количества.
type Quote struct {
	Quantity    int
	AppliedTier int
	UnitPrice   value.Money
	TotalPrice  value.Money

	// Savings — экономия относительно первого порога; заполнена только
	// если применился не первый порог.
	Savings *value.Money
}

// Price подбирает порог по правилу "выигрывает наибольший достигнутый".
// Пороги — это "от N штук", а не интервалы: покупка сверх верхнего порога
// всё равно идёт по его цене.
//
// На кривой конфигурации (например, tier2.MinQuantity <= tier1.MinQuantity)
// функция не падает: сравнения буквальные, какой-то порог всегда выбирается.
// Отсечь такие таблицы должен слой авторинга.
func Price(deal *entity.Deal, quantity int) (Quote, error) {
	if quantity < 1 {
		return Quote{}, domain.NewError(errcodes.InvalidQuantity, "quantity must be a positive integer")
	}

	if len(deal.Tiers) == 0 {
		return Quote{}, domain.NewError(errcodes.InvalidPriceTier, "deal has no price tiers")
	}

	applied := 0

	for i := len(deal.Tiers) - 1; i > 0; i-- {
		if quantity >= deal.Tiers[i].MinQuantity {
			applied = i
			break
		}
	}

	unitPrice := deal.Tiers[applied].UnitPrice

	quote := Quote{
		Quantity:    quantity,
		AppliedTier: applied + 1,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice.Mul(quantity),
	}

	if applied > 0 {
		savings := deal.Tiers[0].UnitPrice.Sub(unitPrice).Mul(quantity)
		quote.Savings = &savings
	}

	return quote, nil
}
