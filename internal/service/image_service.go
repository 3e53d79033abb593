package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"notepad/internal/cache"
	apperrors "notepad/internal/errors"
	"notepad/internal/model"
	"notepad/internal/repository"
	"notepad/internal/storage"
)

// ImageService handles image uploads and deletions. An image row and its file
// are kept in lockstep: no row without a file, no file surviving a failed
// request.
type ImageService interface {
	Upload(ctx context.Context, userID, noteID uint, field, originalName, mimeType string, r io.Reader) (*model.Image, error)
	Delete(ctx context.Context, userID, imageID uint) error
}

type imageService struct {
	noteRepo  repository.NoteRepository
	imageRepo repository.ImageRepository
	files     storage.Store
	cache     *cache.Client
}

// NewImageService creates a new image service.
func NewImageService(noteRepo repository.NoteRepository, imageRepo repository.ImageRepository, files storage.Store, cache *cache.Client) ImageService {
	return &imageService{
		noteRepo:  noteRepo,
		imageRepo: imageRepo,
		files:     files,
		cache:     cache,
	}
}

// Upload validates the declared mime type and note ownership, writes the file,
// then records the row. If the row cannot be written the file is removed
// before the error is surfaced. A nil reader means no file part was present;
// that is only rejected after the note lookup, so a missing note still reads
// as not found. The stored name keeps only the extension of the original
// filename.
func (s *imageService) Upload(ctx context.Context, userID, noteID uint, field, originalName, mimeType string, r io.Reader) (*model.Image, error) {
	if r != nil && !strings.HasPrefix(mimeType, "image/") {
		return nil, apperrors.ErrNotAnImage
	}

	if _, err := s.noteRepo.FindByIDAndUser(ctx, noteID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}

	if r == nil {
		return nil, apperrors.ErrNoFile
	}

	filename := storage.GenerateFilename(field, originalName)
	size, err := s.files.Save(filename, r)
	if err != nil {
		if s.files.Exists(filename) {
			_ = s.files.Remove(filename)
		}
		return nil, fmt.Errorf("store file: %w", err)
	}

	image := &model.Image{
		Filename: filename,
		Path:     "uploads/" + filename,
		MimeType: mimeType,
		Size:     size,
		NoteID:   noteID,
	}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		_ = s.files.Remove(filename)
		return nil, fmt.Errorf("create image record: %w", err)
	}

	_ = s.cache.Delete(ctx, noteListCacheKey(userID))
	return image, nil
}

// Delete removes the image row, then its file when present. Ownership is
// resolved through the image's note; an image under someone else's note is
// reported as not found.
func (s *imageService) Delete(ctx context.Context, userID, imageID uint) error {
	image, err := s.imageRepo.FindByIDAndOwner(ctx, imageID, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrImageNotFound
		}
		return fmt.Errorf("find image: %w", err)
	}

	if err := s.imageRepo.Delete(ctx, image); err != nil {
		return fmt.Errorf("delete image record: %w", err)
	}

	if s.files.Exists(image.Filename) {
		_ = s.files.Remove(image.Filename)
	}

	_ = s.cache.Delete(ctx, noteListCacheKey(userID))
	return nil
}
