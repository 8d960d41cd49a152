package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/middleware"
	"github.com/pageza/heritage-recipes/backend/internal/service"
)

const sniffLen = 512

// UploadImage stores the multipart "image" file as the recipe's picture.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(apperrors.Auth("authorization token required"))
		return
	}
	id, err := recipeID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxImageSize+1<<20)
	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(apperrors.Validation("image must be at most 5MB"))
			return
		}
		_ = c.Error(apperrors.Wrap(apperrors.KindValidation, "image file is required", err))
		return
	}

	file, err := header.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer file.Close()

	// Trust the bytes, not the client's declared type.
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = c.Error(err)
		return
	}
	head = head[:n]
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipeService.SetImage(c.Request.Context(), userID, id, service.ImageUpload{
		ContentType: http.DetectContentType(head),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}
