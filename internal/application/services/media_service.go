package services

import (
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/media"
	"github.com/UniScopeHQ/composer-go/internal/infrastructure/observability/logging"
)

// MediaService accepts inline image uploads from the editor and runs them
// through the responsive rendition pipeline.
type MediaService struct {
	processor *media.ImageProcessor
	logger    *logging.ChanneledLogger
}

// NewMediaService creates the media service.
func NewMediaService(processor *media.ImageProcessor, logger *logging.ChanneledLogger) *MediaService {
	return &MediaService{
		processor: processor,
		logger:    logger,
	}
}

// Upload stores a data: URL image and returns its serving URL and srcset.
func (s *MediaService) Upload(dataURL string) (*media.UploadResult, error) {
	result, err := s.processor.ProcessDataURL(dataURL, "uploads")
	if err != nil {
		s.logger.Media().Error("Image upload failed", "error", err.Error())
		return nil, err
	}
	s.logger.Media().Info("Image uploaded",
		"url", result.URL, "renditions", len(result.Paths))
	return result, nil
}
