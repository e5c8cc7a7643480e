package resourceservice

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id int) (*domain.Resource, error)
	List(ctx context.Context) ([]domain.Resource, error)
	IncrementDownloads(ctx context.Context, id int) error
}

type PurchaseRepo interface {
	Find(ctx context.Context, userID, resourceID int) (*domain.Purchase, error)
}

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrNotPurchased     = errors.New("resource not purchased")
	ErrInvalidPrice     = errors.New("price must be positive")
	ErrEmptyTitle       = errors.New("title is required")
)

type Service struct {
	repo         Repo
	purchaseRepo PurchaseRepo
	uploadDir    string
}

func New(repo Repo, purchaseRepo PurchaseRepo, uploadDir string) *Service {
	return &Service{
		repo:         repo,
		purchaseRepo: purchaseRepo,
		uploadDir:    uploadDir,
	}
}

// CreateResource stores the uploaded document under a randomized name and
// records it. The original filename only contributes its extension.
func (s *Service) CreateResource(ctx context.Context, resource *domain.Resource, file io.Reader, originalName string) (*domain.Resource, error) {
	if resource.Title == "" {
		return nil, ErrEmptyTitle
	}
	if resource.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	storedName := ksuid.New().String() + filepath.Ext(originalName)
	if err := s.saveFile(file, storedName); err != nil {
		zap.L().Error("can't store uploaded file", zap.Error(err))
		return nil, err
	}

	resource.FileName = storedName
	created, err := s.repo.Create(ctx, resource)
	if err != nil {
		if removeErr := os.Remove(filepath.Join(s.uploadDir, storedName)); removeErr != nil {
			zap.L().Error("can't remove orphaned upload", zap.Error(removeErr))
		}
		return nil, err
	}

	zap.L().Info("resource uploaded",
		zap.Int("resource_id", created.ID), zap.Int("author_id", created.AuthorID))
	return created, nil
}

func (s *Service) saveFile(file io.Reader, storedName string) error {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return err
	}
	dst, err := os.Create(filepath.Join(s.uploadDir, storedName))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, file)
	return err
}

func (s *Service) GetResources(ctx context.Context) ([]domain.Resource, error) {
	resources, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list resources", zap.Error(err))
		return nil, err
	}
	return resources, nil
}

func (s *Service) GetResource(ctx context.Context, id int) (*domain.Resource, error) {
	resource, err := s.repo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get resource", zap.Error(err))
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}
	return resource, nil
}

// Download returns the on-disk path of the resource file. Access requires
// authorship or a prior purchase; each grant bumps the download counter.
func (s *Service) Download(ctx context.Context, userID, resourceID int) (string, error) {
	resource, err := s.repo.GetByID(ctx, resourceID)
	if err != nil {
		return "", err
	}
	if resource == nil {
		return "", ErrResourceNotFound
	}

	if resource.AuthorID != userID {
		purchase, err := s.purchaseRepo.Find(ctx, userID, resourceID)
		if err != nil {
			return "", err
		}
		if purchase == nil {
			return "", ErrNotPurchased
		}
	}

	if err := s.repo.IncrementDownloads(ctx, resourceID); err != nil {
		return "", err
	}
	return filepath.Join(s.uploadDir, resource.FileName), nil
}
