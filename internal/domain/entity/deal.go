package entity

import (
	"slices"
	"time"

	"deal_market/internal/domain/value"
)

// Deal — акционное предложение, привязанное к одному товару.
//
// Ограничения по сроку и количеству независимы: каждое либо задано,
// либо нет. Состояние "дедлайн указан, но игнорируется" невозможно
// по построению.
type Deal struct {
	ID        string `json:"id" db:"id"`
	ProductID string `json:"product_id" db:"product_id"`

	Title         string `json:"title" db:"title"`
	Description   string `json:"description" db:"description"`
	Notes         string `json:"notes" db:"notes"`
	InternalNotes string `json:"-" db:"internal_notes"`

	// Priority влияет только на стиль отображения, не на бизнес-правила.
	Priority int `json:"priority" db:"priority"`

	// Tiers упорядочены по возрастанию MinQuantity; индекс + 1 = номер порога.
	Tiers []value.PriceTier `json:"tiers"`

	ExpiresAt    *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	MaxQuantity  *int       `json:"max_quantity,omitempty" db:"max_quantity"`
	SoldQuantity int        `json:"sold_quantity" db:"sold_quantity"`

	// PaymentMethods пустой набор означает "разрешены все".
	PaymentMethods      []value.PaymentMethod `json:"payment_methods,omitempty"`
	SurchargeCheckWeek  *value.Money          `json:"surcharge_check_week,omitempty" db:"surcharge_check_week"`
	SurchargeCheckMonth *value.Money          `json:"surcharge_check_month,omitempty" db:"surcharge_check_month"`
	PaymentNotes        string                `json:"payment_notes" db:"payment_notes"`

	// Ограничения вариантов товара, прокидываются в отображение как есть.
	AllowedColors    []string `json:"allowed_colors,omitempty"`
	RequiredImporter string   `json:"required_importer" db:"required_importer"`
	IsESIM           bool     `json:"is_esim" db:"is_esim"`
	AdditionalSpecs  string   `json:"additional_specs" db:"additional_specs"`

	// IsActive — рубильник, перекрывает все остальные проверки.
	IsActive bool `json:"is_active" db:"is_active"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasDeadline сообщает, ограничено ли предложение по времени.
func (d *Deal) HasDeadline() bool {
	return d.ExpiresAt != nil
}

// HasCapacity сообщает, ограничено ли предложение по количеству.
func (d *Deal) HasCapacity() bool {
	return d.MaxQuantity != nil
}

// AllowsPayment проверяет, разрешён ли способ оплаты для предложения.
func (d *Deal) AllowsPayment(method value.PaymentMethod) bool {
	if len(d.PaymentMethods) == 0 {
		return true
	}

	return slices.Contains(d.PaymentMethods, method)
}
