package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"

	"github.com/szarydziennik/grayjournal/internal/constant"
	"github.com/szarydziennik/grayjournal/internal/model"
	"github.com/szarydziennik/grayjournal/internal/observability"
	"github.com/szarydziennik/grayjournal/internal/repository"
	"github.com/szarydziennik/grayjournal/internal/util"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type UploadUsecase struct {
	MediaRepository *repository.MediaRepository
	Log             *zap.Logger
	Config          *koanf.Koanf
}

func NewUploadUsecase(mediaRepository *repository.MediaRepository, zap *zap.Logger, koanf *koanf.Koanf) *UploadUsecase {
	return &UploadUsecase{
		MediaRepository: mediaRepository,
		Log:             zap,
		Config:          koanf,
	}
}

var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

func (usecase *UploadUsecase) UploadImage(ctx context.Context, payload model.UploadRequest) (model.UploadResponse, error) {
	var response model.UploadResponse

	if payload.Image == "" {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Image payload is required",
			Param:   "image",
		}
	}

	if payload.Filename == "" {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Filename is required",
			Param:   "filename",
		}
	}

	encoded := dataURIPrefix.ReplaceAllString(payload.Image, "")
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Image payload is not valid base64",
			Param:   "image",
		}
	}

	if len(data) > constant.MAX_UPLOAD_SIZE {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: fmt.Sprintf("Image exceeds the %dMB limit", constant.MAX_UPLOAD_SIZE/(1024*1024)),
			Param:   "image",
		}
	}

	if !util.IsImage(data) {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Payload does not decode to a known image format",
			Param:   "image",
		}
	}

	// Payloads at or below the threshold are stored byte-identical to what
	// the client sent; only oversized ones get recompressed.
	if len(data) > constant.COMPRESS_THRESHOLD {
		data, err = util.CompressImage(data, constant.COMPRESS_MAX_DIMENSION, constant.COMPRESS_QUALITY)
		if err != nil {
			return response, &model.ValidationError{
				Code:    constant.ERR_VALIDATION_CODE,
				Message: "Failed to process image. File may be corrupted or not a valid image",
				Param:   "image",
			}
		}
	}

	bucketName := usecase.Config.String("MINIO_BUCKET_NAME")
	objectKey := util.ObjectKey(payload.Filename)

	err = usecase.MediaRepository.UploadObject(ctx, bucketName, objectKey, data, "image/jpeg")
	if err != nil {
		return response, err
	}

	observability.WithContext(ctx, usecase.Log).Info("stored image object",
		zap.String("bucket", bucketName),
		zap.String("key", objectKey),
		zap.Int("bytes", len(data)),
	)

	response.Url = fmt.Sprintf("%s%s/%s/%s", usecase.Config.String("MINIO_HTTP"), usecase.Config.String("MINIO_URL"), bucketName, objectKey)

	return response, nil
}
