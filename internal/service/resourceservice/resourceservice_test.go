package resourceservice

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tuananh6614/epueducation-sub000/internal/domain"
)

type mocks struct {
	repo         *MockRepo
	purchaseRepo *MockPurchaseRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := &mocks{
		repo:         NewMockRepo(ctrl),
		purchaseRepo: NewMockPurchaseRepo(ctrl),
	}
	service := New(m.repo, m.purchaseRepo, t.TempDir())
	return service, m
}

func TestCreateResource(t *testing.T) {
	tests := []struct {
		name          string
		resource      *domain.Resource
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:     "successful upload",
			resource: &domain.Resource{AuthorID: 1, Title: "Algorithms cheat sheet", Price: 25},
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, resource *domain.Resource) (*domain.Resource, error) {
						assert.True(t, strings.HasSuffix(resource.FileName, ".pdf"))
						resource.ID = 3
						return resource, nil
					})
			},
			expectedError: nil,
		},
		{
			name:          "empty title",
			resource:      &domain.Resource{AuthorID: 1, Price: 25},
			prepareMock:   func(m *mocks) {},
			expectedError: ErrEmptyTitle,
		},
		{
			name:          "non-positive price",
			resource:      &domain.Resource{AuthorID: 1, Title: "Free notes", Price: 0},
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidPrice,
		},
		{
			name:     "insert failure removes the stored file",
			resource: &domain.Resource{AuthorID: 1, Title: "Broken upload", Price: 10},
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			file := strings.NewReader("%PDF-1.4 fake content")
			created, err := service.CreateResource(context.Background(), tt.resource, file, "notes.pdf")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, created)

				entries, readErr := os.ReadDir(service.uploadDir)
				if readErr == nil {
					assert.Empty(t, entries)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, created.ID)

				data, readErr := os.ReadFile(filepath.Join(service.uploadDir, created.FileName))
				require.NoError(t, readErr)
				assert.Equal(t, "%PDF-1.4 fake content", string(data))
			}
		})
	}
}

func TestGetResource(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "found",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), 3).Return(&domain.Resource{ID: 3, Title: "Notes"}, nil)
			},
		},
		{
			name: "not found",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name: "db error",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			resource, err := service.GetResource(context.Background(), 3)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, resource)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, resource.ID)
			}
		})
	}
}

func TestGetResources(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().List(gomock.Any()).Return([]domain.Resource{{ID: 1}, {ID: 2}}, nil)

	resources, err := service.GetResources(context.Background())
	assert.NoError(t, err)
	assert.Len(t, resources, 2)
}

func TestDownload(t *testing.T) {
	tests := []struct {
		name          string
		userID        int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "author downloads without purchase",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), 3).
					Return(&domain.Resource{ID: 3, AuthorID: 1, FileName: "abc.pdf"}, nil)
				m.repo.EXPECT().IncrementDownloads(gomock.Any(), 3).Return(nil)
			},
		},
		{
			name:   "buyer downloads after purchase",
			userID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), 3).
					Return(&domain.Resource{ID: 3, AuthorID: 1, FileName: "abc.pdf"}, nil)
				m.purchaseRepo.EXPECT().Find(gomock.Any(), 2, 3).
					Return(&domain.Purchase{ID: 9, UserID: 2, ResourceID: 3}, nil)
				m.repo.EXPECT().IncrementDownloads(gomock.Any(), 3).Return(nil)
			},
		},
		{
			name:   "not purchased",
			userID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), 3).
					Return(&domain.Resource{ID: 3, AuthorID: 1, FileName: "abc.pdf"}, nil)
				m.purchaseRepo.EXPECT().Find(gomock.Any(), 2, 3).Return(nil, nil)
			},
			expectedError: ErrNotPurchased,
		},
		{
			name:   "resource not found",
			userID: 2,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)
			},
			expectedError: ErrResourceNotFound,
		},
		{
			name:   "counter update fails",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetByID(gomock.Any(), 3).
					Return(&domain.Resource{ID: 3, AuthorID: 1, FileName: "abc.pdf"}, nil)
				m.repo.EXPECT().IncrementDownloads(gomock.Any(), 3).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			path, err := service.Download(context.Background(), tt.userID, 3)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Empty(t, path)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, filepath.Join(service.uploadDir, "abc.pdf"), path)
			}
		})
	}
}
