package transactionrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, type, status, related_id, external_ref, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tx.UserID, tx.Amount, tx.Type, tx.Status, tx.RelatedID, tx.ExternalRef, tx.Metadata,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, type, status, related_id, external_ref, metadata, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Status,
			&tx.RelatedID, &tx.ExternalRef, &tx.Metadata, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (r *Repository) FindPendingDeposits(ctx context.Context, limit uint32) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, type, status, related_id, external_ref, metadata, created_at
        FROM transactions
        WHERE type = 'deposit' AND status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pending deposits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.Type, &tx.Status,
			&tx.RelatedID, &tx.ExternalRef, &tx.Metadata, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan pending deposit row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// ResolvePending flips a pending transaction to its final status. Returns the
// number of rows affected so callers can tell a lost race from success.
func (r *Repository) ResolvePending(ctx context.Context, id int, status string) (int64, error) {
	query := `
		UPDATE transactions
		SET status = $1
		WHERE id = $2 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't resolve pending transaction", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
