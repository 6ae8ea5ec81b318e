package websocket

import (
	"context"
	"net/http"

	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/summary"
	"github.com/LilVoxy/department_summary/ETL/transform"
	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/LilVoxy/department_summary/metrics"
	"github.com/gorilla/websocket"
)

// Fetcher получает пользователей из внешнего API
type Fetcher interface {
	Fetch(ctx context.Context) (*models.ExtractedData, error)
}

// Конфигурация WebSocket-соединения
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Разрешаем подключения с любого источника
	},
}

// Streamer выполняет агрегацию и отправляет клиенту состояние отдела
// после каждой записи
type Streamer struct {
	fetcher Fetcher
	logger  *utils.ETLLogger
}

// NewStreamer создает новый экземпляр Streamer
func NewStreamer(fetcher Fetcher, logger *utils.ETLLogger) *Streamer {
	return &Streamer{fetcher: fetcher, logger: logger}
}

// HandleStream обрабатывает GET /ws/users
func (s *Streamer) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Ошибка при установке WebSocket-соединения: %v", err)
		return
	}

	// Контекст запроса после апгрейда не отменяется при отключении клиента
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := newClient(conn)
	go client.writePump(s.logger)
	go client.readPump(s.logger, cancel)
	defer client.finish()

	s.logger.Info("Установлено соединение потока агрегации с %s", conn.RemoteAddr())

	if err := s.stream(ctx, client); err != nil {
		s.logger.Debug("Поток агрегации прерван: %v", err)
	}
}

func (s *Streamer) stream(ctx context.Context, client *Client) error {
	data, err := s.fetcher.Fetch(ctx)
	if err != nil {
		status, body := summary.DescribeError(err)
		s.logger.Error("❌ Не удалось получить пользователей для потока: %v", err)
		return client.send(ctx, StreamMessage{Type: MessageTypeError, Error: body.Error, Status: status})
	}

	summaries := make(models.SummaryTable)
	for _, user := range data.Users {
		updated := transform.UpdateSummary(user, summaries)
		msg := StreamMessage{
			Type:       MessageTypeDepartment,
			Department: user.Company.Department,
			Summary:    updated,
		}
		if err := client.send(ctx, msg); err != nil {
			return err
		}
	}
	metrics.RecordsAggregatedTotal.Add(float64(len(data.Users)))

	s.logger.Info("✅ Поток агрегации завершен: %d отделов, %d пользователей", len(summaries), len(data.Users))
	return client.send(ctx, StreamMessage{
		Type:      MessageTypeComplete,
		Summaries: summaries,
		Records:   len(data.Users),
	})
}
