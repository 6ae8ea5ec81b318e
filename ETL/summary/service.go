package summary

import (
	"context"
	"errors"
	"net/http"

	"github.com/LilVoxy/department_summary/ETL/extractors"
	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/transform"
	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/LilVoxy/department_summary/metrics"
)

// Сообщения об ошибках, которые отдаются клиентам
const (
	unexpectedMessage = "An unexpected error occurred"
)

// Service связывает извлечение пользователей и их агрегацию.
// Каждый вызов строит собственную таблицу, общего изменяемого состояния нет.
type Service struct {
	extractor   *extractors.Extractor
	transformer *transform.Transformer
	logger      *utils.ETLLogger
}

// NewService создает новый экземпляр Service
func NewService(client *http.Client, sourceURL string, logger *utils.ETLLogger) *Service {
	return &Service{
		extractor:   extractors.NewExtractor(client, sourceURL, logger),
		transformer: transform.NewTransformer(logger),
		logger:      logger,
	}
}

// Fetch выполняет только фазу извлечения
func (s *Service) Fetch(ctx context.Context) (*models.ExtractedData, error) {
	data, err := s.extractor.Extract(ctx)
	metrics.UpstreamFetchTotal.WithLabelValues(fetchResult(err)).Inc()
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Summarize получает пользователей и возвращает сводки по отделам.
// При любой ошибке извлечения агрегация не выполняется.
func (s *Service) Summarize(ctx context.Context) (*models.TransformedData, error) {
	data, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.transformer.Transform(data)
	if err != nil {
		return nil, err
	}
	metrics.RecordsAggregatedTotal.Add(float64(result.Metadata.RecordsProcessed))
	return result, nil
}

func fetchResult(err error) string {
	var upstreamErr *extractors.UpstreamHTTPError
	switch {
	case err == nil:
		return metrics.FetchOK
	case errors.As(err, &upstreamErr):
		return metrics.FetchHTTPError
	default:
		return metrics.FetchUnexpected
	}
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// DescribeError переводит ошибку запуска в HTTP-статус и тело ответа.
// Детали непредвиденных ошибок наружу не отдаются.
func DescribeError(err error) (int, ErrorResponse) {
	var upstreamErr *extractors.UpstreamHTTPError
	if errors.As(err, &upstreamErr) {
		return http.StatusBadGateway, ErrorResponse{Error: upstreamErr.Error()}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: unexpectedMessage}
}
