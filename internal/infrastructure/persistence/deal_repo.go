package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"deal_market/internal/domain"
	"deal_market/internal/domain/entity"
	"deal_market/pkg/errcodes"
)

const dealColumns = `
	id, product_id, title, description, notes, internal_notes, priority,
	tiers, expires_at, max_quantity, sold_quantity,
	payment_methods, surcharge_check_week, surcharge_check_month, payment_notes,
	allowed_colors, required_importer, is_esim, additional_specs,
	is_active, updated_at`

type DealRepository struct {
	db *sqlx.DB
}

// NewDealRepository создаёт новый экземпляр репозитория.
func NewDealRepository(db *sqlx.DB) *DealRepository {
	return &DealRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *DealRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// Create сохраняет новое предложение.
func (r *DealRepository) Create(ctx context.Context, deal *entity.Deal) error {
	schema, err := newDealSchema(deal)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to convert deal")
	}

	if schema.UpdatedAt.IsZero() {
		schema.UpdatedAt = time.Now()
	}

	query := `
		INSERT INTO deals (` + dealColumns + `)
		VALUES (
			:id, :product_id, :title, :description, :notes, :internal_notes, :priority,
			:tiers, :expires_at, :max_quantity, :sold_quantity,
			:payment_methods, :surcharge_check_week, :surcharge_check_month, :payment_notes,
			:allowed_colors, :required_importer, :is_esim, :additional_specs,
			:is_active, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create deal")
	}

	return nil
}

// GetByID возвращает предложение по идентификатору.
func (r *DealRepository) GetByID(ctx context.Context, id string) (*entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`

	var schema dealSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get deal")
	}

	return schema.toDomain()
}

// ListActive возвращает включённые предложения для витрины.
func (r *DealRepository) ListActive(ctx context.Context, limit, offset int) ([]entity.Deal, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deals
		WHERE is_active
		ORDER BY priority DESC, updated_at DESC
		LIMIT $1 OFFSET $2`

	var schemas []dealSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit, offset); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list deals")
	}

	deals := make([]entity.Deal, 0, len(schemas))
	for _, s := range schemas {
		deal, err := s.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert deal")
		}
		deals = append(deals, *deal)
	}

	return deals, nil
}

// SetActive переключает рубильник предложения.
func (r *DealRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			UPDATE deals
			SET is_active = $1, updated_at = $2
			WHERE id = $3`

		result, err := tx.ExecContext(ctx, query, active, time.Now(), id)
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to update deal")
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to get affected rows")
		}

		if affected == 0 {
			return domain.NewError(errcodes.DealNotFound, "deal not found")
		}

		return nil
	})
}

// Reserve атомарно списывает ёмкость предложения.
//
// Единственный разрешённый способ мутации sold_quantity: условный апдейт
// одной командой. Никакого "прочитали, посчитали, записали" в коде
// приложения — такой паттерн гонится под конкурентными коммитами.
// Для предложений без лимита условие вырождается в безусловный инкремент.
func (r *DealRepository) Reserve(ctx context.Context, id string, quantity int) (int, error) {
	query := `
		UPDATE deals
		SET sold_quantity = sold_quantity + $2, updated_at = $3
		WHERE id = $1
		  AND (max_quantity IS NULL OR sold_quantity + $2 <= max_quantity)
		RETURNING sold_quantity`

	var soldQuantity int

	err := r.db.QueryRowxContext(ctx, query, id, quantity, time.Now()).Scan(&soldQuantity)
	if err == nil {
		return soldQuantity, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to reserve capacity")
	}

	// Апдейт не зацепил строку: либо предложения нет, либо ёмкость кончилась.
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM deals WHERE id = $1)`, id); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to check deal existence")
	}

	if !exists {
		return 0, domain.NewError(errcodes.DealNotFound, "deal not found")
	}

	return 0, domain.NewError(errcodes.DealSoldOut, "deal capacity is exhausted")
}
