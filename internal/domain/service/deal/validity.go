package service

import (
	"time"

	"deal_market/internal/domain/entity"
	"deal_market/internal/domain/value"
)

// Validity — структурированный результат проверки предложения.
// Это не ошибка: невалидное предложение — штатный исход, по которому
// ветвится вызывающий код.
type Validity struct {
	Valid bool

	// Reason заполнен только при Valid == false.
	Reason value.DealStatus

	// RemainingQuantity заполнен, если есть лимит по количеству и он не исчерпан.
	RemainingQuantity *int

	// TimeRemaining заполнен, если есть дедлайн и он ещё не прошёл.
	TimeRemaining *time.Duration
}

// Validate — чистая функция: одинаковые (deal, now) всегда дают одинаковый
// результат, никаких побочных эффектов.
//
// Порядок проверок фиксирован: рубильник, потом дедлайн, потом ёмкость.
// Если просрочены и дедлайн, и ёмкость, причиной остаётся expired.
func Validate(deal *entity.Deal, now time.Time) Validity {
	if !deal.IsActive {
		return Validity{Reason: value.StatusInactive}
	}

	var result Validity

	if deal.HasDeadline() {
		if now.After(*deal.ExpiresAt) {
			result.Reason = value.StatusExpired
			return result
		}

		left := deal.ExpiresAt.Sub(now)
		result.TimeRemaining = &left
	}

	if deal.HasCapacity() {
		remaining := *deal.MaxQuantity - deal.SoldQuantity
		if remaining <= 0 {
			result.Reason = value.StatusSoldOut
			return result
		}

		result.RemainingQuantity = &remaining
	}

	result.Valid = true

	return result
}

// Status отображает результат Validate в статус для UI.
// Инвариант: Status == active тогда и только тогда, когда Validate().Valid.
func Status(deal *entity.Deal, now time.Time) value.DealStatus {
	validity := Validate(deal, now)
	if validity.Valid {
		return value.StatusActive
	}

	return validity.Reason
}
