package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "notepad/internal/errors"
	"notepad/internal/model"
)

// MockImageRepository is a mock implementation of ImageRepository.
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *model.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) Delete(ctx context.Context, image *model.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockImageRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Image, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func TestImageService_UploadSuccess(t *testing.T) {
	store := newMemStore()
	mockNotes := new(MockNoteRepository)
	mockNotes.On("FindByIDAndUser", mock.Anything, uint(5), uint(1)).Return(&model.Note{ID: 5, UserID: 1}, nil)

	mockImages := new(MockImageRepository)
	mockImages.On("Create", mock.Anything, mock.AnythingOfType("*model.Image")).Return(nil)

	svc := NewImageService(mockNotes, mockImages, store, nil)
	payload := []byte("fake png bytes")
	image, err := svc.Upload(context.Background(), 1, 5, "image", "photo.png", "image/png", bytes.NewReader(payload))

	assert.NoError(t, err)
	assert.NotNil(t, image)
	assert.Equal(t, uint(5), image.NoteID)
	assert.Equal(t, "image/png", image.MimeType)
	assert.Equal(t, int64(len(payload)), image.Size)
	assert.Equal(t, "uploads/"+image.Filename, image.Path)
	assert.True(t, store.Exists(image.Filename))
	assert.Regexp(t, `^image-\d+-[0-9a-f-]+\.png$`, image.Filename)

	mockNotes.AssertExpectations(t)
	mockImages.AssertExpectations(t)
}

func TestImageService_UploadRejectsNonImage(t *testing.T) {
	store := newMemStore()
	mockNotes := new(MockNoteRepository)
	mockImages := new(MockImageRepository)

	svc := NewImageService(mockNotes, mockImages, store, nil)
	image, err := svc.Upload(context.Background(), 1, 5, "image", "notes.txt", "text/plain", bytes.NewReader([]byte("plain text")))

	assert.Nil(t, image)
	assert.Equal(t, apperrors.ErrNotAnImage, err)
	// No file may survive a rejected upload
	assert.Empty(t, store.files)
	mockImages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImageService_UploadNoteNotFound(t *testing.T) {
	tests := []struct {
		name   string
		userID uint
	}{
		{name: "note does not exist", userID: 1},
		{name: "note owned by another user", userID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			mockNotes := new(MockNoteRepository)
			mockNotes.On("FindByIDAndUser", mock.Anything, uint(5), tt.userID).Return(nil, gorm.ErrRecordNotFound)

			mockImages := new(MockImageRepository)

			svc := NewImageService(mockNotes, mockImages, store, nil)
			image, err := svc.Upload(context.Background(), tt.userID, 5, "image", "photo.png", "image/png", bytes.NewReader([]byte("png")))

			assert.Nil(t, image)
			assert.Equal(t, apperrors.ErrNoteNotFound, err)
			assert.Empty(t, store.files)
			mockNotes.AssertExpectations(t)
		})
	}
}

// A request with no file part is only rejected after the note lookup: a
// missing or foreign note reads as not found, an owned note as no-file.
func TestImageService_UploadNoFilePrecedence(t *testing.T) {
	t.Run("missing note wins over missing file", func(t *testing.T) {
		mockNotes := new(MockNoteRepository)
		mockNotes.On("FindByIDAndUser", mock.Anything, uint(5), uint(1)).Return(nil, gorm.ErrRecordNotFound)

		mockImages := new(MockImageRepository)

		svc := NewImageService(mockNotes, mockImages, newMemStore(), nil)
		image, err := svc.Upload(context.Background(), 1, 5, "image", "", "", nil)

		assert.Nil(t, image)
		assert.Equal(t, apperrors.ErrNoteNotFound, err)
		mockNotes.AssertExpectations(t)
	})

	t.Run("owned note without file", func(t *testing.T) {
		mockNotes := new(MockNoteRepository)
		mockNotes.On("FindByIDAndUser", mock.Anything, uint(5), uint(1)).Return(&model.Note{ID: 5, UserID: 1}, nil)

		mockImages := new(MockImageRepository)

		svc := NewImageService(mockNotes, mockImages, newMemStore(), nil)
		image, err := svc.Upload(context.Background(), 1, 5, "image", "", "", nil)

		assert.Nil(t, image)
		assert.Equal(t, apperrors.ErrNoFile, err)
		mockImages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockNotes.AssertExpectations(t)
	})
}

// A written file must not survive a failed database insert.
func TestImageService_UploadCleansFileOnRecordFailure(t *testing.T) {
	store := newMemStore()
	mockNotes := new(MockNoteRepository)
	mockNotes.On("FindByIDAndUser", mock.Anything, uint(5), uint(1)).Return(&model.Note{ID: 5, UserID: 1}, nil)

	mockImages := new(MockImageRepository)
	mockImages.On("Create", mock.Anything, mock.AnythingOfType("*model.Image")).Return(errors.New("constraint violation"))

	svc := NewImageService(mockNotes, mockImages, store, nil)
	image, err := svc.Upload(context.Background(), 1, 5, "image", "photo.png", "image/png", bytes.NewReader([]byte("png")))

	assert.Nil(t, image)
	assert.Error(t, err)
	assert.Empty(t, store.files)
	mockImages.AssertExpectations(t)
}

func TestImageService_UploadSaveFailure(t *testing.T) {
	store := newMemStore()
	store.failSave = true

	mockNotes := new(MockNoteRepository)
	mockNotes.On("FindByIDAndUser", mock.Anything, uint(5), uint(1)).Return(&model.Note{ID: 5, UserID: 1}, nil)

	mockImages := new(MockImageRepository)

	svc := NewImageService(mockNotes, mockImages, store, nil)
	image, err := svc.Upload(context.Background(), 1, 5, "image", "photo.png", "image/png", bytes.NewReader([]byte("png")))

	assert.Nil(t, image)
	assert.Error(t, err)
	assert.Empty(t, store.files)
	mockImages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImageService_DeleteRemovesRowAndFile(t *testing.T) {
	store := newMemStore()
	_, err := store.Save("image-1-abc.png", bytes.NewReader([]byte("png")))
	assert.NoError(t, err)

	image := &model.Image{ID: 3, Filename: "image-1-abc.png", NoteID: 5}

	mockNotes := new(MockNoteRepository)
	mockImages := new(MockImageRepository)
	mockImages.On("FindByIDAndOwner", mock.Anything, uint(3), uint(1)).Return(image, nil)
	mockImages.On("Delete", mock.Anything, image).Return(nil)

	svc := NewImageService(mockNotes, mockImages, store, nil)
	err = svc.Delete(context.Background(), 1, 3)

	assert.NoError(t, err)
	assert.False(t, store.Exists("image-1-abc.png"))
	mockImages.AssertExpectations(t)
}

func TestImageService_DeleteNotFound(t *testing.T) {
	tests := []struct {
		name   string
		userID uint
	}{
		{name: "image does not exist", userID: 1},
		{name: "image under another user's note", userID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockNotes := new(MockNoteRepository)
			mockImages := new(MockImageRepository)
			mockImages.On("FindByIDAndOwner", mock.Anything, uint(3), tt.userID).Return(nil, gorm.ErrRecordNotFound)

			svc := NewImageService(mockNotes, mockImages, newMemStore(), nil)
			err := svc.Delete(context.Background(), tt.userID, 3)

			assert.Equal(t, apperrors.ErrImageNotFound, err)
			mockImages.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

// The row is deleted before the file; a missing file is tolerated.
func TestImageService_DeleteToleratesMissingFile(t *testing.T) {
	image := &model.Image{ID: 3, Filename: "image-gone.png", NoteID: 5}

	mockNotes := new(MockNoteRepository)
	mockImages := new(MockImageRepository)
	mockImages.On("FindByIDAndOwner", mock.Anything, uint(3), uint(1)).Return(image, nil)
	mockImages.On("Delete", mock.Anything, image).Return(nil)

	svc := NewImageService(mockNotes, mockImages, newMemStore(), nil)
	err := svc.Delete(context.Background(), 1, 3)

	assert.NoError(t, err)
	mockImages.AssertExpectations(t)
}
