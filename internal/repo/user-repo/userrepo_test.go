package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var userColumns = []string{"id", "username", "email", "password_hash", "full_name", "avatar", "balance", "is_admin", "created_at"}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "test_user",
			mockSetup: func() {
				rows := pgxmock.NewRows(userColumns).
					AddRow(1, "test_user", "test@example.com", "hashed_password", "Test User", "", 10.0, false, now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, username, email, password_hash, full_name, avatar, balance, is_admin, created_at
        FROM users
        WHERE username = $1
    `)).
					WithArgs("test_user").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Username:     "test_user",
				Email:        "test@example.com",
				PasswordHash: "hashed_password",
				FullName:     "Test User",
				Balance:      10.0,
				CreatedAt:    now,
			},
		},
		{
			name:     "User not found",
			username: "non_existing_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, password_hash, full_name, avatar, balance, is_admin, created_at")).
					WithArgs("non_existing_user").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			username: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, email, password_hash, full_name, avatar, balance, is_admin, created_at")).
					WithArgs("test_user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Username:     "new_user",
				Email:        "new@example.com",
				PasswordHash: "hashed_password",
				FullName:     "New User",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
			INSERT INTO users (username, email, password_hash, full_name)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`)).
					WithArgs("new_user", "new@example.com", "hashed_password", "New User").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectErr: false,
		},
		{
			name: "Duplicate username",
			user: &domain.User{
				Username:     "new_user",
				Email:        "new@example.com",
				PasswordHash: "hashed_password",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WithArgs("new_user", "new@example.com", "hashed_password", "").
					WillReturnError(errors.New("unique constraint violation"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}

func TestRepository_GetBalanceForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		balance   float64
	}{
		{
			name:   "Lock and read balance",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT balance")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(42.5))
			},
			balance: 42.5,
		},
		{
			name:   "User missing",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT balance")).
					WithArgs(2).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.GetBalanceForUpdate(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.balance, balance)
			}
		})
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WithArgs(70.0, 1).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(70.0))

	balance, err := repo.UpdateBalance(context.Background(), 1, 70.0)
	assert.NoError(t, err)
	assert.Equal(t, 70.0, balance)
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		amount    float64
		mockSetup func()
		expectErr bool
		balance   float64
	}{
		{
			name:   "Credit adds to existing balance",
			amount: 50.0,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
					WithArgs(50.0, 1).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(70.0))
			},
			balance: 70.0,
		},
		{
			name:   "Database error",
			amount: 50.0,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SET balance = balance + $1")).
					WithArgs(50.0, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.Credit(context.Background(), 1, tt.amount)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.balance, balance)
			}
		})
	}
}
