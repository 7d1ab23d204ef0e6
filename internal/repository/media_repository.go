package repository

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type MediaRepository struct {
	Log      *zap.Logger
	DBObject *minio.Client
}

func NewMediaRepository(zap *zap.Logger, minio *minio.Client) *MediaRepository {
	return &MediaRepository{
		Log:      zap,
		DBObject: minio,
	}
}

func (repository *MediaRepository) UploadObject(ctx context.Context, bucketName string, objectKey string, data []byte, contentType string) error {
	_, err := repository.DBObject.PutObject(ctx, bucketName, objectKey, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: "public, max-age=31536000, immutable",
		})
	if err != nil {
		return err
	}

	return nil
}

func (repository *MediaRepository) GetObject(ctx context.Context, bucketName string, objectKey string) ([]byte, error) {
	object, err := repository.DBObject.GetObject(ctx, bucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()

	return io.ReadAll(object)
}

func (repository *MediaRepository) RemoveObject(ctx context.Context, bucketName string, objectKey string) error {
	err := repository.DBObject.RemoveObject(ctx, bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return err
	}

	return nil
}
