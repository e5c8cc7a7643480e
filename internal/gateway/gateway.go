package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tuananh6614/epueducation-sub000/internal/config"
	"github.com/tuananh6614/epueducation-sub000/internal/domain"
	"github.com/tuananh6614/epueducation-sub000/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingDeposits sync.Map

// Response is the payment gateway's answer for one deposit reference.
type Response struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount,omitempty"`
}

type TransactionRepo interface {
	FindPendingDeposits(ctx context.Context, limit uint32) ([]domain.Transaction, error)
}

type Ledger interface {
	ConfirmDeposit(ctx context.Context, transaction domain.Transaction) error
	RejectDeposit(ctx context.Context, transactionID int) error
}

// Service polls the payment gateway for the state of pending deposits and
// resolves them through the ledger. Manual admin verification stays available
// for references the gateway cannot answer for.
type Service struct {
	url             string
	transactionRepo TransactionRepo
	ledger          Ledger
	client          clients.HTTPClientI
	limit           uint32
	workerPool      WorkerPoolI
	pollInterval    time.Duration
}

func New(cfg *config.Config, transactionRepo TransactionRepo, ledger Ledger, client clients.HTTPClientI) *Service {
	return &Service{
		url:             cfg.GatewayAddress,
		transactionRepo: transactionRepo,
		ledger:          ledger,
		client:          client,
		limit:           1000,
		workerPool:      NewWorkerPool(10),
		pollInterval:    time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment gateway watcher started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping gateway watcher")
			return
		case <-ticker.C:
			s.processDeposits(ctx)
		}
	}
}

func (s *Service) processDeposits(ctx context.Context) {
	deposits, err := s.transactionRepo.FindPendingDeposits(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending deposits", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, deposit := range deposits {
		deposit := deposit

		if _, loaded := processingDeposits.LoadOrStore(deposit.ExternalRef, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingDeposits.Delete(deposit.ExternalRef)
				return s.handleDeposit(ctx, deposit)
			})
			if err != nil {
				processingDeposits.Delete(deposit.ExternalRef)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing deposits", zap.Error(err))
	}
}

func (s *Service) handleDeposit(ctx context.Context, deposit domain.Transaction) error {
	url := s.url + "/api/payments/" + deposit.ExternalRef
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to check deposit %s after %d retries: %w", deposit.ExternalRef, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(deposit, respHeaders, attempt)
			case http.StatusNoContent, http.StatusNotFound:
				// The gateway has no record yet; the deposit stays pending
				// for manual verification or a later poll.
				zap.L().Debug("Deposit unknown to gateway", zap.String("externalRef", deposit.ExternalRef))
				return nil
			case http.StatusOK:
				return s.resolveDeposit(ctx, deposit, respBody)
			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("externalRef", deposit.ExternalRef))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) resolveDeposit(ctx context.Context, deposit domain.Transaction, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Reference != deposit.ExternalRef {
		return fmt.Errorf("reference mismatch: expected %s, got %s", deposit.ExternalRef, response.Reference)
	}

	switch response.Status {
	case "CONFIRMED":
		if response.Amount != deposit.Amount {
			zap.L().Warn("Gateway amount differs from requested deposit, leaving pending",
				zap.String("externalRef", deposit.ExternalRef),
				zap.Float64("requested", deposit.Amount), zap.Float64("reported", response.Amount))
			return nil
		}
		if err := s.ledger.ConfirmDeposit(ctx, deposit); err != nil {
			return fmt.Errorf("failed to confirm deposit %s: %w", deposit.ExternalRef, err)
		}
		zap.L().Info("Deposit confirmed", zap.String("externalRef", deposit.ExternalRef), zap.Float64("amount", deposit.Amount))
	case "REJECTED":
		if err := s.ledger.RejectDeposit(ctx, deposit.ID); err != nil {
			return fmt.Errorf("failed to reject deposit %s: %w", deposit.ExternalRef, err)
		}
		zap.L().Info("Deposit rejected", zap.String("externalRef", deposit.ExternalRef))
	case "REGISTERED", "PROCESSING":
		zap.L().Info("Deposit still in flight at gateway", zap.String("externalRef", deposit.ExternalRef))
	default:
		zap.L().Warn("Unrecognized status received", zap.String("externalRef", deposit.ExternalRef), zap.String("status", response.Status))
	}
	return nil
}

func (s *Service) handleRateLimit(deposit domain.Transaction, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("externalRef", deposit.ExternalRef),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
