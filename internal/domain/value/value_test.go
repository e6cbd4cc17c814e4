package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deal_market/internal/domain/value"
)

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		money    value.Money
		expected string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{12345, "123.45"},
		{-12345, "-123.45"},
		{-5, "-0.05"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.money.String())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.Money(30000), value.Money(10000).Mul(3))
	rq.Equal(value.Money(1000), value.Money(10000).Sub(9000))
	rq.Equal(int64(10000), value.Money(10000).Int64())
}

func TestParsePaymentMethod(t *testing.T) {
	rq := require.New(t)

	for _, method := range value.AllPaymentMethods() {
		parsed, err := value.ParsePaymentMethod(method.String())
		rq.NoError(err)
		rq.Equal(method, parsed)
	}

	_, err := value.ParsePaymentMethod("crypto")
	rq.Error(err)

	_, err = value.ParsePaymentMethod("")
	rq.Error(err)
}
