package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"notepad/internal/errors"
	"notepad/internal/service"
)

// imageFormField is the multipart field name carrying the upload.
const imageFormField = "image"

// ImageHandler handles image endpoints.
type ImageHandler struct {
	imageService service.ImageService
}

// NewImageHandler creates a new image handler.
func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// ImageResponse is the public view of an uploaded image, including a URL
// composed from the request's scheme and host.
type ImageResponse struct {
	ID       uint   `json:"id"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
	URL      string `json:"url"`
}

// UploadResponse represents a successful upload.
type UploadResponse struct {
	Message string        `json:"message"`
	Image   ImageResponse `json:"image"`
}

// Upload godoc
// @Summary Upload an image to a note
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param image formData file true "Image file"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /notes/{id}/images [post]
func (h *ImageHandler) Upload(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	noteID, err := noteIDParam(c)
	if err != nil {
		return err
	}

	// A missing file part is not rejected here: the service resolves note
	// ownership first so a missing note still reads as not found.
	var src io.Reader
	var originalName, mimeType string
	if fileHeader, err := c.FormFile(imageFormField); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			httpErr := errors.MapErrorToHTTP(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
		}
		defer f.Close()
		src = f
		originalName = fileHeader.Filename
		mimeType = fileHeader.Header.Get("Content-Type")
	}

	image, err := h.imageService.Upload(c.Request().Context(), claims.UserID, noteID, imageFormField, originalName, mimeType, src)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusCreated, UploadResponse{
		Message: "image uploaded successfully",
		Image: ImageResponse{
			ID:       image.ID,
			Filename: image.Filename,
			Path:     image.Path,
			URL:      fmt.Sprintf("%s://%s/%s", c.Scheme(), c.Request().Host, image.Path),
		},
	})
}

// Delete godoc
// @Summary Delete an image
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param id path int true "Image ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /images/{id} [delete]
func (h *ImageHandler) Delete(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}

	imageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	if err := h.imageService.Delete(c.Request().Context(), claims.UserID, uint(imageID)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "image deleted successfully"})
}
