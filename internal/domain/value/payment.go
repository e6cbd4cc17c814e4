package value

import (
	"fmt"
	"slices"
)

// PaymentMethod — способ оплаты, один из четырёх фиксированных тегов.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheckWeek    PaymentMethod = "check_week"
	PaymentCheckMonth   PaymentMethod = "check_month"
)

//nolint:gochecknoglobals
var allPaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentBankTransfer,
	PaymentCheckWeek,
	PaymentCheckMonth,
}

func (p PaymentMethod) String() string {
	return string(p)
}

func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	method := PaymentMethod(raw)

	if !slices.Contains(allPaymentMethods, method) {
		return "", fmt.Errorf("unknown payment method %q", raw)
	}

	return method, nil
}

func AllPaymentMethods() []PaymentMethod {
	return slices.Clone(allPaymentMethods)
}
