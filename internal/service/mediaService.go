package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/greenwoodcity/portal-backend/internal/entity"
	"github.com/greenwoodcity/portal-backend/internal/pkg/images"
	"github.com/greenwoodcity/portal-backend/internal/pkg/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type MediaService interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (*entity.Media, error)
}

type mediaService struct {
	storage    storage.FileStorage
	compressor *images.Compressor
	baseURL    string
}

func NewMediaService(fileStorage storage.FileStorage, compressor *images.Compressor, baseURL string) MediaService {
	return &mediaService{
		storage:    fileStorage,
		compressor: compressor,
		baseURL:    baseURL,
	}
}

func (s *mediaService) Upload(ctx context.Context, fileName, contentType string, data []byte) (*entity.Media, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, entity.ErrUnsupportedMediaType
	}

	compressed, err := s.compressor.Compress(data, contentType)
	if err != nil {
		// Store the original rather than reject the upload.
		logrus.Warnf("Image compression failed for %s: %v", fileName, err)
		compressed = data
	} else if len(compressed) < len(data) {
		logrus.Infof("Compressed %s: %d -> %d bytes", fileName, len(data), len(compressed))
	}

	objectName := uuid.New().String() + strings.ToLower(filepath.Ext(fileName))
	if err := s.storage.Save(objectName, bytes.NewReader(compressed)); err != nil {
		return nil, fmt.Errorf("failed to store media: %w", err)
	}

	return &entity.Media{
		ID:          objectName,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(compressed)),
		URL:         s.baseURL + "/media/" + objectName,
		CreatedAt:   time.Now(),
	}, nil
}
