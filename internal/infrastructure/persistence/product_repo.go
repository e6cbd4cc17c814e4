package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"deal_market/internal/domain"
	"deal_market/internal/domain/entity"
	"deal_market/pkg/errcodes"
)

// ProductRepository читает снимки товаров из внешнего каталога.
// Движок им не владеет, поэтому только чтение.
type ProductRepository struct {
	db *sqlx.DB
}

func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetByID возвращает товар по идентификатору.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, image_url, updated_at
		FROM products
		WHERE id = $1`

	var schema productSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.ProductNotFound, "product not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get product")
	}

	return schema.toDomain(), nil
}
