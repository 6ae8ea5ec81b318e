package load

import (
	"fmt"
	"time"

	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/utils"
)

// LoadManager отвечает за фазу выгрузки результата
type LoadManager struct {
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager создает новый экземпляр LoadManager
func NewLoadManager(loader Loader, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		logger: logger,
		loader: loader,
	}
}

// Load выполняет фазу загрузки данных.
// Принимает обработанные данные из фазы Transform.
func (m *LoadManager) Load(transformedData *models.TransformedData) error {
	if transformedData == nil {
		return fmt.Errorf("нет данных для загрузки")
	}

	startTime := time.Now()
	m.logger.Debug("Начало фазы Load (Загрузка данных)")

	if err := m.loader.LoadSummaries(transformedData.Departments); err != nil {
		m.logger.Error("Ошибка при выгрузке сводок: %v", err)
		return fmt.Errorf("ошибка при выгрузке сводок: %w", err)
	}

	m.logger.Info("Фаза Load завершена. Отделов: %d, длительность: %v", len(transformedData.Departments), time.Since(startTime))
	return nil
}
