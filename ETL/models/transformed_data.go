package models

import "time"

// ExtractedData содержит пользователей, полученных из внешнего API
type ExtractedData struct {
	Users       []User
	SourceURL   string
	ExtractedAt time.Time
}

// TransformedData содержит результат агрегации по отделам
type TransformedData struct {
	Departments SummaryTable

	// Метаданные
	Metadata RunMetadata
}

// RunMetadata описывает результат фазы Transform
type RunMetadata struct {
	RecordsProcessed int           `json:"records_processed"`
	Departments      int           `json:"departments"`
	Duration         time.Duration `json:"duration"`
}
