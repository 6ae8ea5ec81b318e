package models

import (
	"time"
)

// Статусы запуска
const (
	RunStatusInProgress = "in_progress"
	RunStatusSuccess    = "success"
	RunStatusFailed     = "failed"
)

// RunLog представляет запись о запуске агрегации. Хранится только в памяти
// на время запуска и выводится в лог.
type RunLog struct {
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	Status               string    `json:"status"`
	RecordsProcessed     int       `json:"records_processed"`
	DepartmentsProduced  int       `json:"departments_produced"`
	ErrorMessage         string    `json:"error_message,omitempty"`
	ExecutionTimeSeconds float64   `json:"execution_time_seconds"`
}

// NewRunLog создает запись для начатого запуска
func NewRunLog(start time.Time) *RunLog {
	return &RunLog{StartTime: start, Status: RunStatusInProgress}
}

// MarkSuccess отмечает запуск как успешный
func (l *RunLog) MarkSuccess(end time.Time, records, departments int) {
	l.EndTime = end
	l.Status = RunStatusSuccess
	l.RecordsProcessed = records
	l.DepartmentsProduced = departments
	l.ExecutionTimeSeconds = end.Sub(l.StartTime).Seconds()
}

// MarkFailure отмечает запуск как неудачный
func (l *RunLog) MarkFailure(end time.Time, errorMessage string) {
	l.EndTime = end
	l.Status = RunStatusFailed
	l.ErrorMessage = errorMessage
	l.ExecutionTimeSeconds = end.Sub(l.StartTime).Seconds()
}
