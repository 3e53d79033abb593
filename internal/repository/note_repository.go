package repository

import (
	"context"

	"gorm.io/gorm"

	"notepad/internal/model"
)

// NoteRepository defines note persistence operations. Lookups are always
// scoped to an owning user so cross-user access surfaces as record-not-found.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, note *model.Note) error
	ListByUser(ctx context.Context, userID uint) ([]model.Note, error)
	FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Note, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create creates a new note.
func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// Update persists the full note record.
func (r *noteRepository) Update(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

// Delete removes the note row. Image rows cascade at the database level.
func (r *noteRepository) Delete(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Delete(note).Error
}

// ListByUser returns the user's notes newest-updated first, images included.
func (r *noteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Note, error) {
	notes := []model.Note{}
	if err := r.db.WithContext(ctx).
		Preload("Images").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByIDAndUser finds a note by ID owned by userID, images included.
func (r *noteRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*model.Note, error) {
	var note model.Note
	if err := r.db.WithContext(ctx).
		Preload("Images").
		Where("id = ? AND user_id = ?", id, userID).
		First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}
