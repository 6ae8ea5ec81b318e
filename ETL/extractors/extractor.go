package extractors

import (
	"context"
	"net/http"
	"time"

	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/utils"
)

// Extractor координирует процесс извлечения данных
type Extractor struct {
	logger        *utils.ETLLogger
	sourceURL     string
	userExtractor *UserExtractor
}

// NewExtractor создает новый экземпляр Extractor
func NewExtractor(client *http.Client, sourceURL string, logger *utils.ETLLogger) *Extractor {
	return &Extractor{
		logger:        logger,
		sourceURL:     sourceURL,
		userExtractor: NewUserExtractor(client, sourceURL, logger),
	}
}

// Extract выполняет фазу извлечения. При ошибке данные не возвращаются.
func (e *Extractor) Extract(ctx context.Context) (*models.ExtractedData, error) {
	startTime := time.Now()
	e.logger.LogExtractStart(e.sourceURL)

	users, err := e.userExtractor.ExtractUsers(ctx)
	if err != nil {
		return nil, err
	}

	e.logger.LogExtractComplete(len(users), time.Since(startTime))

	return &models.ExtractedData{
		Users:       users,
		SourceURL:   e.sourceURL,
		ExtractedAt: time.Now(),
	}, nil
}
