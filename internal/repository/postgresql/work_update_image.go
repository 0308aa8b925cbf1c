package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worktrace/worktrace-backend-go/internal/domain/worklog"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/database"
)

type workUpdateImageRepository struct {
	db *database.DB
}

func NewWorkUpdateImageRepository(db *database.DB) worklog.ImageRepository {
	return &workUpdateImageRepository{db: db}
}

// Create implements worklog.ImageRepository.
func (r *workUpdateImageRepository) Create(ctx context.Context, image worklog.WorkUpdateImage) (worklog.WorkUpdateImage, error) {
	query := `
		INSERT INTO work_update_images (work_update_id, image_url)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, image.WorkUpdateID, image.ImageURL).
		Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return worklog.WorkUpdateImage{}, fmt.Errorf("failed to create image record: %w", err)
	}

	return image, nil
}

// GetByID implements worklog.ImageRepository.
func (r *workUpdateImageRepository) GetByID(ctx context.Context, id string) (worklog.WorkUpdateImage, error) {
	query := `
		SELECT id, work_update_id, image_url, created_at
		FROM work_update_images
		WHERE id = $1
	`

	var img worklog.WorkUpdateImage
	err := r.db.QueryRow(ctx, query, id).
		Scan(&img.ID, &img.WorkUpdateID, &img.ImageURL, &img.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worklog.WorkUpdateImage{}, worklog.ErrImageNotFound
		}
		return worklog.WorkUpdateImage{}, fmt.Errorf("failed to get image record: %w", err)
	}

	return img, nil
}

// ListByWorkUpdate implements worklog.ImageRepository.
func (r *workUpdateImageRepository) ListByWorkUpdate(ctx context.Context, workUpdateID string) ([]worklog.WorkUpdateImage, error) {
	query := `
		SELECT id, work_update_id, image_url, created_at
		FROM work_update_images
		WHERE work_update_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, workUpdateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list image records: %w", err)
	}
	defer rows.Close()

	var images []worklog.WorkUpdateImage
	for rows.Next() {
		var img worklog.WorkUpdateImage
		if err := rows.Scan(&img.ID, &img.WorkUpdateID, &img.ImageURL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan image record: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read image records: %w", err)
	}

	return images, nil
}

// Delete implements worklog.ImageRepository.
func (r *workUpdateImageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM work_update_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worklog.ErrImageNotFound
	}

	return nil
}
