// routes/api_routes.go
package routes

import (
	"net/http"

	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/LilVoxy/department_summary/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes настраивает все маршруты API и WebSocket
func SetupRoutes(router *mux.Router, provider SummaryProvider, stream http.HandlerFunc, logger *utils.ETLLogger) {
	// Применяем CORS и метрики ко всем маршрутам
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.MetricsMiddleware)

	router.Handle("/", middleware.CompressMiddleware(RootHandler(logger))).Methods("GET", "OPTIONS")
	router.HandleFunc("/healthz", HealthHandler(logger)).Methods("GET")

	// Сводки по отделам
	router.Handle("/users", middleware.CompressMiddleware(GetUsersSummaryHandler(provider, logger))).Methods("GET", "OPTIONS")

	// Потоковая агрегация через WebSocket
	if stream != nil {
		router.HandleFunc("/ws/users", stream)
	}

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}
