package userrepo

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

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT id, username, email, password_hash, full_name, avatar, balance, is_admin, created_at
        FROM users
        WHERE username = $1
    `
	row := repo.db.QueryRow(ctx, query, username)
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FullName, &user.Avatar, &user.Balance, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, username, email, password_hash, full_name, avatar, balance, is_admin, created_at
        FROM users
        WHERE id = $1
    `
	row := repo.db.QueryRow(ctx, query, id)
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.FullName, &user.Avatar, &user.Balance, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash, user.FullName).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetBalanceForUpdate locks the user row until the surrounding transaction
// ends, serializing concurrent balance mutations for the same user.
func (repo *Repository) GetBalanceForUpdate(ctx context.Context, userID int) (float64, error) {
	query := `
        SELECT balance
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	var balance float64
	err := repo.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if err != pgx.ErrNoRows {
			zap.L().Error("can't lock user balance", zap.Error(err))
		}
		return 0, err
	}
	return balance, nil
}

func (repo *Repository) UpdateBalance(ctx context.Context, userID int, balance float64) (float64, error) {
	query := `
		UPDATE users
		SET balance = $1
		WHERE id = $2
		RETURNING balance
	`
	var updated float64
	err := repo.db.QueryRow(ctx, query, balance, userID).Scan(&updated)
	if err != nil {
		zap.L().Error("can't update user balance", zap.Error(err))
		return 0, err
	}
	return updated, nil
}

func (repo *Repository) Credit(ctx context.Context, userID int, amount float64) (float64, error) {
	query := `
		UPDATE users
		SET balance = balance + $1
		WHERE id = $2
		RETURNING balance
	`
	var updated float64
	err := repo.db.QueryRow(ctx, query, amount, userID).Scan(&updated)
	if err != nil {
		zap.L().Error("can't credit user balance", zap.Error(err))
		return 0, err
	}
	return updated, nil
}
