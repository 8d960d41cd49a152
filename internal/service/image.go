package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pageza/heritage-recipes/backend/config"
	"github.com/pageza/heritage-recipes/backend/internal/apperrors"
	"github.com/pageza/heritage-recipes/backend/internal/models"
	"github.com/pageza/heritage-recipes/backend/internal/repository"
)

// MaxImageSize bounds recipe image uploads.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageUpload is a recipe image as received from a client.
type ImageUpload struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// s3PutAPI is the part of *s3.Client the image store needs.
type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageStore stores recipe images in an S3 bucket.
type S3ImageStore struct {
	client    s3PutAPI
	bucket    string
	publicURL func(key string) string
}

// NewS3ImageStore creates an image store backed by the configured bucket.
func NewS3ImageStore(cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{
		client:    cfg.Client,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
	}
}

// Upload writes body under key and returns the object's public URL.
func (s *S3ImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}
	return s.publicURL(key), nil
}

// SetImage uploads a new image for a recipe the caller owns and stores its URL.
func (s *RecipeService) SetImage(ctx context.Context, userID, id uuid.UUID, upload ImageUpload) (*models.Recipe, error) {
	if s.images == nil {
		return nil, errors.New("image uploads are not configured")
	}

	ext, ok := imageExtensions[strings.ToLower(upload.ContentType)]
	if !ok {
		return nil, apperrors.Validation("image must be a jpeg, png, webp or gif")
	}
	if upload.Size > MaxImageSize {
		return nil, apperrors.Validation("image must be at most 5MB")
	}

	recipe, err := s.owned(ctx, userID, id, "update")
	if err != nil {
		return nil, err
	}

	key := path.Join("recipes", recipe.ID.String(), uuid.NewString()+ext)
	url, err := s.images.Upload(ctx, key, upload.ContentType, upload.Body)
	if err != nil {
		return nil, err
	}

	recipe.ImageURL = url
	if err := s.recipes.Update(ctx, recipe); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("recipe not found")
		}
		return nil, err
	}
	return recipe, nil
}
