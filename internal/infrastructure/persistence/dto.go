package persistence

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"deal_market/internal/domain/entity"
	"deal_market/internal/domain/value"
)

// dealSchema — строка таблицы deals. Пороги, способы оплаты и цвета
// лежат в jsonb-колонках.
type dealSchema struct {
	ID                  string         `db:"id"`
	ProductID           string         `db:"product_id"`
	Title               string         `db:"title"`
	Description         string         `db:"description"`
	Notes               string         `db:"notes"`
	InternalNotes       string         `db:"internal_notes"`
	Priority            int            `db:"priority"`
	Tiers               []byte         `db:"tiers"`
	ExpiresAt           sql.NullTime   `db:"expires_at"`
	MaxQuantity         sql.NullInt64  `db:"max_quantity"`
	SoldQuantity        int            `db:"sold_quantity"`
	PaymentMethods      []byte         `db:"payment_methods"`
	SurchargeCheckWeek  sql.NullInt64  `db:"surcharge_check_week"`
	SurchargeCheckMonth sql.NullInt64  `db:"surcharge_check_month"`
	PaymentNotes        string         `db:"payment_notes"`
	AllowedColors       []byte         `db:"allowed_colors"`
	RequiredImporter    string         `db:"required_importer"`
	IsESIM              bool           `db:"is_esim"`
	AdditionalSpecs     string         `db:"additional_specs"`
	IsActive            bool           `db:"is_active"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

func (s dealSchema) toDomain() (*entity.Deal, error) {
	deal := &entity.Deal{
		ID:               s.ID,
		ProductID:        s.ProductID,
		Title:            s.Title,
		Description:      s.Description,
		Notes:            s.Notes,
		InternalNotes:    s.InternalNotes,
		Priority:         s.Priority,
		SoldQuantity:     s.SoldQuantity,
		PaymentNotes:     s.PaymentNotes,
		RequiredImporter: s.RequiredImporter,
		IsESIM:           s.IsESIM,
		AdditionalSpecs:  s.AdditionalSpecs,
		IsActive:         s.IsActive,
		UpdatedAt:        s.UpdatedAt,
	}

	if len(s.Tiers) > 0 {
		if err := json.Unmarshal(s.Tiers, &deal.Tiers); err != nil {
			return nil, fmt.Errorf("unmarshal tiers: %w", err)
		}
	}

	if len(s.PaymentMethods) > 0 {
		if err := json.Unmarshal(s.PaymentMethods, &deal.PaymentMethods); err != nil {
			return nil, fmt.Errorf("unmarshal payment methods: %w", err)
		}
	}

	if len(s.AllowedColors) > 0 {
		if err := json.Unmarshal(s.AllowedColors, &deal.AllowedColors); err != nil {
			return nil, fmt.Errorf("unmarshal allowed colors: %w", err)
		}
	}

	if s.ExpiresAt.Valid {
		expiresAt := s.ExpiresAt.Time.UTC()
		deal.ExpiresAt = &expiresAt
	}

	if s.MaxQuantity.Valid {
		maxQuantity := int(s.MaxQuantity.Int64)
		deal.MaxQuantity = &maxQuantity
	}

	if s.SurchargeCheckWeek.Valid {
		surcharge := value.Money(s.SurchargeCheckWeek.Int64)
		deal.SurchargeCheckWeek = &surcharge
	}

	if s.SurchargeCheckMonth.Valid {
		surcharge := value.Money(s.SurchargeCheckMonth.Int64)
		deal.SurchargeCheckMonth = &surcharge
	}

	return deal, nil
}

func newDealSchema(deal *entity.Deal) (dealSchema, error) {
	tiers, err := json.Marshal(deal.Tiers)
	if err != nil {
		return dealSchema{}, fmt.Errorf("marshal tiers: %w", err)
	}

	methods, err := json.Marshal(deal.PaymentMethods)
	if err != nil {
		return dealSchema{}, fmt.Errorf("marshal payment methods: %w", err)
	}

	colors, err := json.Marshal(deal.AllowedColors)
	if err != nil {
		return dealSchema{}, fmt.Errorf("marshal allowed colors: %w", err)
	}

	schema := dealSchema{
		ID:               deal.ID,
		ProductID:        deal.ProductID,
		Title:            deal.Title,
		Description:      deal.Description,
		Notes:            deal.Notes,
		InternalNotes:    deal.InternalNotes,
		Priority:         deal.Priority,
		Tiers:            tiers,
		SoldQuantity:     deal.SoldQuantity,
		PaymentMethods:   methods,
		PaymentNotes:     deal.PaymentNotes,
		AllowedColors:    colors,
		RequiredImporter: deal.RequiredImporter,
		IsESIM:           deal.IsESIM,
		AdditionalSpecs:  deal.AdditionalSpecs,
		IsActive:         deal.IsActive,
		UpdatedAt:        deal.UpdatedAt,
	}

	if deal.ExpiresAt != nil {
		schema.ExpiresAt = sql.NullTime{Time: deal.ExpiresAt.UTC(), Valid: true}
	}

	if deal.MaxQuantity != nil {
		schema.MaxQuantity = sql.NullInt64{Int64: int64(*deal.MaxQuantity), Valid: true}
	}

	if deal.SurchargeCheckWeek != nil {
		schema.SurchargeCheckWeek = sql.NullInt64{Int64: deal.SurchargeCheckWeek.Int64(), Valid: true}
	}

	if deal.SurchargeCheckMonth != nil {
		schema.SurchargeCheckMonth = sql.NullInt64{Int64: deal.SurchargeCheckMonth.Int64(), Valid: true}
	}

	return schema, nil
}

type productSchema struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	ImageURL  string    `db:"image_url"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s productSchema) toDomain() *entity.Product {
	return &entity.Product{
		ID:        s.ID,
		Name:      s.Name,
		ImageURL:  s.ImageURL,
		UpdatedAt: s.UpdatedAt,
	}
}
