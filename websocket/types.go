package websocket

import "github.com/LilVoxy/department_summary/ETL/models"

// Типы сообщений потока
const (
	MessageTypeDepartment = "department"
	MessageTypeComplete   = "complete"
	MessageTypeError      = "error"
)

// StreamMessage - сообщение, отправляемое клиенту во время агрегации
type StreamMessage struct {
	Type string `json:"type"`

	// Для department: отдел и его сводка после учета очередной записи
	Department string          `json:"department,omitempty"`
	Summary    *models.Summary `json:"summary,omitempty"`

	// Для complete: итоговая таблица и число записей
	Summaries models.SummaryTable `json:"summaries,omitempty"`
	Records   int                 `json:"records,omitempty"`

	// Для error
	Error string `json:"error,omitempty"`
	// HTTP-статус, который вернул бы GET /users
	Status int `json:"status,omitempty"`
}
