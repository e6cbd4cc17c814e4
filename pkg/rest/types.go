// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// PriceTier Ценовой порог "от N штук".
type PriceTier struct {
	// MinQuantity Минимальное количество для применения цены
	MinQuantity int `json:"minQuantity" validate:"gte=1"`

	// UnitPrice Цена за единицу в минорных единицах валюты
	UnitPrice int64 `json:"unitPrice" validate:"gte=0"`
}

// Deal Акционное предложение.
type Deal struct {
	ID               string      `json:"id"`
	ProductID        string      `json:"productId"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	Notes            string      `json:"notes,omitempty"`
	Priority         int         `json:"priority"`
	Tiers            []PriceTier `json:"tiers"`
	ExpiresAt        *string     `json:"expiresAt,omitempty"`
	MaxQuantity      *int        `json:"maxQuantity,omitempty"`
	SoldQuantity     int         `json:"soldQuantity"`
	PaymentMethods   []string    `json:"paymentMethods,omitempty"`
	PaymentNotes     string      `json:"paymentNotes,omitempty"`
	AllowedColors    []string    `json:"allowedColors,omitempty"`
	RequiredImporter string      `json:"requiredImporter,omitempty"`
	IsESIM           bool        `json:"isEsim,omitempty"`
	AdditionalSpecs  string      `json:"additionalSpecs,omitempty"`
	IsActive         bool        `json:"isActive"`

	// Status active | inactive | expired | sold_out
	Status string `json:"status"`

	// Badge hot | trending | fresh
	Badge             string `json:"badge"`
	BadgeIcon         string `json:"badgeIcon"`
	RemainingQuantity *int   `json:"remainingQuantity,omitempty"`
	TimeRemainingMs   *int64 `json:"timeRemainingMs,omitempty"`
}

// Quote Результат расчёта цены для запрошенного количества.
type Quote struct {
	DealID      string `json:"dealId"`
	Quantity    int    `json:"quantity"`
	AppliedTier int    `json:"appliedTier"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`

	// Savings Экономия относительно первого порога (только если применился не первый)
	Savings *int64 `json:"savings,omitempty"`

	// Surcharge Надбавка за способ оплаты
	Surcharge     int64  `json:"surcharge"`
	PaymentMethod string `json:"paymentMethod,omitempty"`

	// PaymentMethodAllowed Разрешён ли выбранный способ оплаты (если он указан)
	PaymentMethodAllowed *bool `json:"paymentMethodAllowed,omitempty"`

	// Valid Валидность предложения на момент расчёта
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ReserveRequest Запрос на списание ёмкости предложения.
type ReserveRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// ReserveResponse Результат успешного списания.
type ReserveResponse struct {
	DealID       string `json:"dealId"`
	SoldQuantity int    `json:"soldQuantity"`
}

// Message Отрендеренный текст для исходящей рассылки.
type Message struct {
	DealID string `json:"dealId"`
	Text   string `json:"text"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
