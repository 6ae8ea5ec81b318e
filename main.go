// main.go
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LilVoxy/department_summary/ETL/config"
	"github.com/LilVoxy/department_summary/ETL/summary"
	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/LilVoxy/department_summary/routes"
	"github.com/LilVoxy/department_summary/websocket"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	configPtr := flag.String("config", "", "Путь к файлу конфигурации (необязательно)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPtr)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := utils.NewETLLogger(utils.LoggerOptions{
		Level:   cfg.LogLevel,
		FileDir: cfg.LogDir,
		Verbose: cfg.EnableDetailedLogging,
	})
	if err != nil {
		log.Fatalf("❌ Не удалось создать логгер: %v", err)
	}
	defer logger.Sync()

	logger.Info("Запуск сервера...")

	service := summary.NewService(config.NewSourceClient(cfg), cfg.SourceURL, logger)
	streamer := websocket.NewStreamer(service, logger)

	// Создаем маршрутизатор
	router := mux.NewRouter()
	routes.SetupRoutes(router, service, streamer.HandleStream, logger)

	// Настраиваем сервер
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		logger.Zap().Info("✅ Сервер запущен",
			zap.String("addr", server.Addr),
			zap.String("source", cfg.SourceURL))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Zap().Fatal("❌ Ошибка запуска сервера", zap.Error(err))
		}
	}()

	// Канал для сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Ожидаем сигнал завершения
	<-stop
	logger.Info("⚠️ Получен сигнал завершения, закрываем соединения...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("❌ Ошибка остановки сервера: %v", err)
	}

	logger.Info("👋 Сервер остановлен")
}
