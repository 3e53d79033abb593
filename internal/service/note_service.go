package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"notepad/internal/cache"
	apperrors "notepad/internal/errors"
	"notepad/internal/model"
	"notepad/internal/repository"
	"notepad/internal/storage"
)

const noteListCacheTTL = 5 * time.Minute

// NoteService handles CRUD over notes, scoped to the authenticated owner.
type NoteService interface {
	List(ctx context.Context, userID uint) ([]model.Note, error)
	Get(ctx context.Context, userID, noteID uint) (*model.Note, error)
	Create(ctx context.Context, userID uint, title, content, category string) (*model.Note, error)
	Update(ctx context.Context, userID, noteID uint, title, content, category string) (*model.Note, error)
	Delete(ctx context.Context, userID, noteID uint) error
}

type noteService struct {
	noteRepo repository.NoteRepository
	files    storage.Store
	cache    *cache.Client
}

// NewNoteService creates a new note service.
func NewNoteService(noteRepo repository.NoteRepository, files storage.Store, cache *cache.Client) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		files:    files,
		cache:    cache,
	}
}

func noteListCacheKey(userID uint) string {
	return fmt.Sprintf("notes:user:%d", userID)
}

// List returns the user's notes, newest-updated first, each with its images.
func (s *noteService) List(ctx context.Context, userID uint) ([]model.Note, error) {
	if data, _ := s.cache.Get(ctx, noteListCacheKey(userID)); data != nil {
		var cached []model.Note
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	notes, err := s.noteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	if payload, err := json.Marshal(notes); err == nil {
		_ = s.cache.Set(ctx, noteListCacheKey(userID), payload, noteListCacheTTL)
	}

	return notes, nil
}

// Get returns a single note owned by userID. A note owned by someone else is
// reported the same way as a note that does not exist.
func (s *noteService) Get(ctx context.Context, userID, noteID uint) (*model.Note, error) {
	note, err := s.noteRepo.FindByIDAndUser(ctx, noteID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return note, nil
}

// Create stores a new note. An empty category defaults to "General".
func (s *noteService) Create(ctx context.Context, userID uint, title, content, category string) (*model.Note, error) {
	if category == "" {
		category = model.DefaultCategory
	}

	note := &model.Note{
		Title:    title,
		Content:  content,
		Category: category,
		UserID:   userID,
		Images:   []model.Image{},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	_ = s.cache.Delete(ctx, noteListCacheKey(userID))
	return note, nil
}

// Update applies a partial update with replace-if-truthy semantics: any empty
// field keeps its prior value, so an explicit empty-string update is
// indistinguishable from no change.
func (s *noteService) Update(ctx context.Context, userID, noteID uint, title, content, category string) (*model.Note, error) {
	note, err := s.Get(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		note.Title = title
	}
	if content != "" {
		note.Content = content
	}
	if category != "" {
		note.Category = category
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	_ = s.cache.Delete(ctx, noteListCacheKey(userID))
	return note, nil
}

// Delete removes the note row, cascading its image rows, then removes each
// image file. The database is authoritative: a file missing by the time we
// unlink is tolerated, and file removal failures are not rolled back.
func (s *noteService) Delete(ctx context.Context, userID, noteID uint) error {
	note, err := s.Get(ctx, userID, noteID)
	if err != nil {
		return err
	}

	if err := s.noteRepo.Delete(ctx, note); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	for _, image := range note.Images {
		if s.files.Exists(image.Filename) {
			_ = s.files.Remove(image.Filename)
		}
	}

	_ = s.cache.Delete(ctx, noteListCacheKey(userID))
	return nil
}
