package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/internal/pg"
)

type UserRepo interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	GetBalanceForUpdate(ctx context.Context, userID int) (float64, error)
	UpdateBalance(ctx context.Context, userID int, balance float64) (float64, error)
	Credit(ctx context.Context, userID int, amount float64) (float64, error)
}

type ResourceRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Resource, error)
}

type PurchaseRepo interface {
	Find(ctx context.Context, userID, resourceID int) (*domain.Purchase, error)
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	ResolvePending(ctx context.Context, id int, status string) (int64, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

const (
	TypeDeposit          = "deposit"
	TypeResourcePurchase = "resource_purchase"

	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrAlreadyPurchased    = errors.New("resource already purchased")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrMissingExternalRef  = errors.New("transaction reference is required")
	ErrDepositReplayed     = errors.New("deposit reference already credited")
)

type Service struct {
	userRepo         UserRepo
	resourceRepo     ResourceRepo
	purchaseRepo     PurchaseRepo
	transactionRepo  TransactionRepo
	notificationRepo NotificationRepo
	txManager        pg.TXManager
}

func New(userRepo UserRepo, resourceRepo ResourceRepo, purchaseRepo PurchaseRepo, transactionRepo TransactionRepo, notificationRepo NotificationRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:         userRepo,
		resourceRepo:     resourceRepo,
		purchaseRepo:     purchaseRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

// Purchase debits the user's balance by the resource price and grants access,
// all inside one database transaction. The unique (user_id, resource_id)
// constraint backstops concurrent submissions of the same purchase: the
// loser's insert fails and the whole transaction rolls back.
func (s *Service) Purchase(ctx context.Context, userID, resourceID int) (float64, error) {
	var newBalance float64

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.purchaseRepo.Find(ctx, userID, resourceID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrAlreadyPurchased
		}

		resource, err := s.resourceRepo.GetByID(ctx, resourceID)
		if err != nil {
			return err
		}
		if resource == nil {
			return ErrResourceNotFound
		}

		balance, err := s.userRepo.GetBalanceForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrUserNotFound
			}
			return err
		}
		if balance < resource.Price {
			return ErrInsufficientBalance
		}

		newBalance, err = s.userRepo.UpdateBalance(ctx, userID, balance-resource.Price)
		if err != nil {
			return err
		}

		purchase := &domain.Purchase{
			UserID:     userID,
			ResourceID: resourceID,
			PricePaid:  resource.Price,
		}
		if _, err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyPurchased
			}
			return err
		}

		relatedID := resourceID
		transaction := &domain.Transaction{
			UserID:    userID,
			Amount:    resource.Price,
			Type:      TypeResourcePurchase,
			Status:    StatusCompleted,
			RelatedID: &relatedID,
		}
		_, err = s.transactionRepo.Create(ctx, transaction)
		return err
	})
	if err != nil {
		zap.L().Error("purchase failed",
			zap.Int("user_id", userID), zap.Int("resource_id", resourceID), zap.Error(err))
		return 0, err
	}

	zap.L().Info("resource purchased",
		zap.Int("user_id", userID), zap.Int("resource_id", resourceID), zap.Float64("new_balance", newBalance))
	return newBalance, nil
}

// RequestDeposit records a pending deposit transaction. The balance is not
// touched until the deposit is verified by an administrator or confirmed by
// the payment gateway.
func (s *Service) RequestDeposit(ctx context.Context, userID int, amount float64, externalRef string, metadata []byte) (*domain.Transaction, float64, error) {
	if amount <= 0 {
		return nil, 0, ErrInvalidAmount
	}
	if externalRef == "" {
		return nil, 0, ErrMissingExternalRef
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if user == nil {
		return nil, 0, ErrUserNotFound
	}

	transaction := &domain.Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        TypeDeposit,
		Status:      StatusPending,
		ExternalRef: externalRef,
		Metadata:    metadata,
	}
	if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
		zap.L().Error("can't record deposit request", zap.Error(err))
		return nil, 0, err
	}

	zap.L().Info("deposit requested",
		zap.Int("user_id", userID), zap.Float64("amount", amount), zap.String("external_ref", externalRef))
	return transaction, user.Balance, nil
}

// VerifyDeposit resolves a deposit out of band. On success the credit, the
// completed transaction and the notification commit atomically; replaying an
// already-credited reference fails with ErrDepositReplayed via the partial
// unique index on completed deposit references.
func (s *Service) VerifyDeposit(ctx context.Context, username string, amount float64, externalRef string, success bool) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if externalRef == "" {
		return 0, ErrMissingExternalRef
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	if !success {
		transaction := &domain.Transaction{
			UserID:      user.ID,
			Amount:      amount,
			Type:        TypeDeposit,
			Status:      StatusFailed,
			ExternalRef: externalRef,
		}
		if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
			zap.L().Error("can't record failed deposit", zap.Error(err))
			return 0, err
		}
		return user.Balance, nil
	}

	var newBalance float64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		transaction := &domain.Transaction{
			UserID:      user.ID,
			Amount:      amount,
			Type:        TypeDeposit,
			Status:      StatusCompleted,
			ExternalRef: externalRef,
		}
		if _, err := s.transactionRepo.Create(ctx, transaction); err != nil {
			if isUniqueViolation(err) {
				return ErrDepositReplayed
			}
			return err
		}

		var err error
		newBalance, err = s.userRepo.Credit(ctx, user.ID, amount)
		if err != nil {
			return err
		}

		notification := &domain.Notification{
			UserID:  user.ID,
			ActorID: user.ID,
			Type:    "system",
			Message: fmt.Sprintf("Your deposit of %.2f has been credited", amount),
		}
		_, err = s.notificationRepo.Create(ctx, notification)
		return err
	})
	if err != nil {
		zap.L().Error("deposit verification failed",
			zap.String("username", username), zap.String("external_ref", externalRef), zap.Error(err))
		return 0, err
	}

	zap.L().Info("deposit verified",
		zap.String("username", username), zap.Float64("amount", amount), zap.Float64("new_balance", newBalance))
	return newBalance, nil
}

// ConfirmDeposit is the payment-gateway path: it resolves the pending
// transaction row itself instead of inserting a new one. A reference already
// credited elsewhere marks the pending row failed instead.
func (s *Service) ConfirmDeposit(ctx context.Context, transaction domain.Transaction) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		affected, err := s.transactionRepo.ResolvePending(ctx, transaction.ID, StatusCompleted)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDepositReplayed
			}
			return err
		}
		if affected == 0 {
			// Already resolved by a concurrent verification.
			return nil
		}

		if _, err := s.userRepo.Credit(ctx, transaction.UserID, transaction.Amount); err != nil {
			return err
		}

		notification := &domain.Notification{
			UserID:  transaction.UserID,
			ActorID: transaction.UserID,
			Type:    "system",
			Message: fmt.Sprintf("Your deposit of %.2f has been credited", transaction.Amount),
		}
		_, err = s.notificationRepo.Create(ctx, notification)
		return err
	})
	if errors.Is(err, ErrDepositReplayed) {
		zap.L().Warn("deposit reference already credited, failing pending transaction",
			zap.Int("transaction_id", transaction.ID), zap.String("external_ref", transaction.ExternalRef))
		_, err = s.transactionRepo.ResolvePending(ctx, transaction.ID, StatusFailed)
	}
	return err
}

// RejectDeposit marks a pending deposit as failed without touching balance.
func (s *Service) RejectDeposit(ctx context.Context, transactionID int) error {
	_, err := s.transactionRepo.ResolvePending(ctx, transactionID, StatusFailed)
	return err
}

func (s *Service) GetBalance(ctx context.Context, userID int) (float64, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.Balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
