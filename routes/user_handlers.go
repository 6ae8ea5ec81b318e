package routes

import (
	"context"
	"net/http"

	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/summary"
	"github.com/LilVoxy/department_summary/ETL/utils"
)

// SummaryProvider строит сводки по отделам за один запуск
type SummaryProvider interface {
	Summarize(ctx context.Context) (*models.TransformedData, error)
}

// MessageResponse - ответ корневого маршрута
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse - ответ проверки живости
type HealthResponse struct {
	Status string `json:"status"`
}

// RootHandler отвечает на GET /
func RootHandler(logger *utils.ETLLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, MessageResponse{Message: "department summary service"})
	}
}

// HealthHandler отвечает на GET /healthz
func HealthHandler(logger *utils.ETLLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// GetUsersSummaryHandler обрабатывает GET /users: получает пользователей
// и возвращает сводки по отделам либо {"error": ...}
func GetUsersSummaryHandler(provider SummaryProvider, logger *utils.ETLLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := provider.Summarize(r.Context())
		if err != nil {
			status, body := summary.DescribeError(err)
			logger.Error("❌ Не удалось построить сводки: %v", err)
			writeJSON(w, logger, status, body)
			return
		}

		departments := result.Departments
		if departments == nil {
			departments = models.SummaryTable{}
		}
		writeJSON(w, logger, http.StatusOK, departments)
		logger.Info("✅ Отправлены сводки по %d отделам (%d пользователей)",
			len(departments), result.Metadata.RecordsProcessed)
	}
}
