package transform

import (
	"errors"
	"time"

	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/utils"
)

// Transformer выполняет фазу преобразования: агрегацию пользователей по отделам
type Transformer struct {
	logger *utils.ETLLogger
}

// NewTransformer создает новый экземпляр Transformer
func NewTransformer(logger *utils.ETLLogger) *Transformer {
	return &Transformer{logger: logger}
}

// Transform строит новую таблицу сводок по извлеченным данным
func (t *Transformer) Transform(extractedData *models.ExtractedData) (*models.TransformedData, error) {
	if extractedData == nil {
		return nil, errors.New("нет извлеченных данных для преобразования")
	}

	startTime := time.Now()
	t.logger.Debug("Начало фазы Transform (Преобразование данных)")

	departments := Aggregate(extractedData.Users)

	duration := time.Since(startTime)
	t.logger.LogTransformComplete(len(extractedData.Users), len(departments), duration)

	return &models.TransformedData{
		Departments: departments,
		Metadata: models.RunMetadata{
			RecordsProcessed: len(extractedData.Users),
			Departments:      len(departments),
			Duration:         duration,
		},
	}, nil
}
