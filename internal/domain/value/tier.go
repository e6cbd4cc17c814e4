package value

// PriceTier — ценовой порог "от N штук и больше".
// Пороги хранятся по возрастанию MinQuantity; первый порог обязателен
// и задаёт базовую цену за единицу.
type PriceTier struct {
	MinQuantity int   `json:"min_quantity"`
	UnitPrice   Money `json:"unit_price"`
}
