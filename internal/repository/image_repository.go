package repository

import (
	"context"

	"gorm.io/gorm"

	"notepad/internal/model"
)

// ImageRepository defines image persistence operations. Ownership is resolved
// transitively through the image's note.
type ImageRepository interface {
	Create(ctx context.Context, image *model.Image) error
	Delete(ctx context.Context, image *model.Image) error
	FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Image, error)
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new image repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// Create creates a new image row.
func (r *imageRepository) Create(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// Delete removes the image row.
func (r *imageRepository) Delete(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Delete(image).Error
}

// FindByIDAndOwner finds an image whose note belongs to userID.
func (r *imageRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).
		Joins("JOIN notes ON notes.id = images.note_id").
		Where("images.id = ? AND notes.user_id = ?", id, userID).
		First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
