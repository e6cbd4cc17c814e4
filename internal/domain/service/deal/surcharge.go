package service

import (
	"deal_market/internal/domain/entity"
	"deal_market/internal/domain/value"
)

// AccessAllowed проверяет, разрешён ли способ оплаты для предложения.
// Пустой набор означает отсутствие ограничений.
func AccessAllowed(deal *entity.Deal, method value.PaymentMethod) bool {
	return deal.AllowsPayment(method)
}

// Surcharge считает надбавку за способ оплаты: за наличные и перевод — ноль,
// за чеки — надбавка с единицы, умноженная на количество. Надбавка чисто
// аддитивна к итогу и никогда не участвует в выборе порога.
func Surcharge(deal *entity.Deal, quantity int, method value.PaymentMethod) value.Money {
	switch method {
	case value.PaymentCheckWeek:
		if deal.SurchargeCheckWeek != nil {
			return deal.SurchargeCheckWeek.Mul(quantity)
		}
	case value.PaymentCheckMonth:
		if deal.SurchargeCheckMonth != nil {
			return deal.SurchargeCheckMonth.Mul(quantity)
		}
	case value.PaymentCash, value.PaymentBankTransfer:
	}

	return 0
}
