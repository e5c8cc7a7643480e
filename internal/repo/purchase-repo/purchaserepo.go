package purchaserepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Find(ctx context.Context, userID, resourceID int) (*domain.Purchase, error) {
	query := `
        SELECT id, user_id, resource_id, price_paid, created_at
        FROM purchases
        WHERE user_id = $1 AND resource_id = $2
    `
	row := r.db.QueryRow(ctx, query, userID, resourceID)
	var purchase domain.Purchase
	err := row.Scan(&purchase.ID, &purchase.UserID, &purchase.ResourceID, &purchase.PricePaid, &purchase.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return &purchase, nil
}

func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
		INSERT INTO purchases (user_id, resource_id, price_paid)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, purchase.UserID, purchase.ResourceID, purchase.PricePaid).
		Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Purchase, error) {
	query := `
        SELECT id, user_id, resource_id, price_paid, created_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var purchase domain.Purchase
		err := rows.Scan(&purchase.ID, &purchase.UserID, &purchase.ResourceID, &purchase.PricePaid, &purchase.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}
