package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pantrycook/pantrycook/backend/config"
)

// ImageService stores recipe images in S3.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates an ImageService backed by the given S3 config.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// UploadRecipeImage stores the image under a key derived from the recipe id
// and returns the object's public URL. A fresh UUID in the key avoids stale
// CDN/browser caches when an image is replaced.
func (s *ImageService) UploadRecipeImage(ctx context.Context, recipeID int64, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("recipes/%d/%s%s", recipeID, uuid.New().String(), path.Ext(filename))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	return url, nil
}
