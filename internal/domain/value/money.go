package value

import "fmt"

// Money — денежная сумма в минорных единицах валюты (копейках).
// Арифметика целочисленная, чтобы не накапливать ошибку плавающей точки.
type Money int64

func (m Money) Int64() int64 {
	return int64(m)
}

// Mul умножает цену за единицу на количество.
func (m Money) Mul(quantity int) Money {
	return m * Money(quantity)
}

func (m Money) Sub(other Money) Money {
	return m - other
}

// String форматирует сумму в мажорных единицах: 12345 -> "123.45".
func (m Money) String() string {
	sign := ""

	major := int64(m) / 100
	minor := int64(m) % 100

	if m < 0 {
		sign = "-"
		major = -major
		minor = -minor
	}

	return fmt.Sprintf("%s%d.%02d", sign, major, minor)
}
