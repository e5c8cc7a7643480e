package resourcerepo

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

func (r *Repository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	query := `
		INSERT INTO resources (author_id, title, description, file_name, thumbnail, resource_type, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		resource.AuthorID, resource.Title, resource.Description, resource.FileName,
		resource.Thumbnail, resource.ResourceType, resource.Price,
	).Scan(&resource.ID, &resource.CreatedAt)
	if err != nil {
		zap.L().Error("can't save resource", zap.Error(err))
		return nil, err
	}
	return resource, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Resource, error) {
	query := `
        SELECT id, author_id, title, description, file_name, thumbnail, resource_type, price, download_count, created_at
        FROM resources
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var res domain.Resource
	err := row.Scan(&res.ID, &res.AuthorID, &res.Title, &res.Description, &res.FileName,
		&res.Thumbnail, &res.ResourceType, &res.Price, &res.DownloadCount, &res.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get resource", zap.Error(err))
		return nil, err
	}
	return &res, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Resource, error) {
	query := `
        SELECT id, author_id, title, description, file_name, thumbnail, resource_type, price, download_count, created_at
        FROM resources
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list resources", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		err := rows.Scan(&res.ID, &res.AuthorID, &res.Title, &res.Description, &res.FileName,
			&res.Thumbnail, &res.ResourceType, &res.Price, &res.DownloadCount, &res.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan resource row", zap.Error(err))
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, nil
}

func (r *Repository) IncrementDownloads(ctx context.Context, id int) error {
	query := `
		UPDATE resources
		SET download_count = download_count + 1
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment download count", zap.Error(err))
		return err
	}
	return nil
}
