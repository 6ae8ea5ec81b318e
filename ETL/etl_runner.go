package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LilVoxy/department_summary/ETL/config"
	"github.com/LilVoxy/department_summary/ETL/load"
	"github.com/LilVoxy/department_summary/ETL/models"
	"github.com/LilVoxy/department_summary/ETL/summary"
	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

type ETLRunner struct {
	config      config.SummaryConfig
	logger      *utils.ETLLogger
	service     *summary.Service
	loadManager *load.LoadManager
}

// NewETLRunner создает новый экземпляр ETLRunner
func NewETLRunner(cfg config.SummaryConfig, logger *utils.ETLLogger) *ETLRunner {
	logger.Info("Инициализация ETL Runner, источник: %s", cfg.SourceURL)

	return &ETLRunner{
		config:      cfg,
		logger:      logger,
		service:     summary.NewService(config.NewSourceClient(cfg), cfg.SourceURL, logger),
		loadManager: load.NewLoadManager(load.NewJSONLoader(os.Stdout, true), logger),
	}
}

// ExecuteETL выполняет один полный запуск: извлечение, агрегация, выгрузка
func (r *ETLRunner) ExecuteETL(ctx context.Context) error {
	startTime := time.Now()
	r.logger.LogRunStart()
	runLog := models.NewRunLog(startTime)

	result, err := r.service.Summarize(ctx)
	if err != nil {
		r.finish(runLog, err)
		return fmt.Errorf("ошибка при получении сводок: %w", err)
	}

	if err := r.loadManager.Load(result); err != nil {
		r.finish(runLog, err)
		return fmt.Errorf("ошибка в фазе Load: %w", err)
	}

	runLog.MarkSuccess(time.Now(), result.Metadata.RecordsProcessed, result.Metadata.Departments)
	r.logger.LogRunComplete(startTime, result.Metadata.RecordsProcessed, result.Metadata.Departments)
	r.logRun(runLog)
	return nil
}

func (r *ETLRunner) finish(runLog *models.RunLog, err error) {
	runLog.MarkFailure(time.Now(), err.Error())
	r.logRun(runLog)
}

func (r *ETLRunner) logRun(runLog *models.RunLog) {
	r.logger.Zap().Info("Журнал запуска",
		zap.String("status", runLog.Status),
		zap.Time("start", runLog.StartTime),
		zap.Time("end", runLog.EndTime),
		zap.Int("records", runLog.RecordsProcessed),
		zap.Int("departments", runLog.DepartmentsProduced),
		zap.Float64("seconds", runLog.ExecutionTimeSeconds),
		zap.String("error", runLog.ErrorMessage),
	)
}

// StartScheduler запускает планировщик для регулярного выполнения агрегации
func (r *ETLRunner) StartScheduler(ctx context.Context) error {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	r.logger.Info("Запуск планировщика с интервалом %v", r.config.RunInterval)

	_, err := scheduler.Every(r.config.RunInterval).Do(func() {
		r.logger.Info("Запланированный запуск агрегации")
		if err := r.ExecuteETL(ctx); err != nil {
			r.logger.Error("Ошибка при выполнении запланированного запуска: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("ошибка при настройке планировщика: %w", err)
	}

	scheduler.StartAsync()

	// Ожидаем сигнал остановки из контекста
	<-ctx.Done()

	scheduler.Stop()
	r.logger.Info("Планировщик остановлен")
	return nil
}

func main() {
	modePtr := flag.String("mode", "once", "Режим работы: once или scheduled")
	configPtr := flag.String("config", "", "Путь к файлу конфигурации (необязательно)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPtr)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := utils.NewETLLogger(utils.LoggerOptions{
		Level:   cfg.LogLevel,
		FileDir: cfg.LogDir,
		Verbose: cfg.EnableDetailedLogging,
	})
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := NewETLRunner(cfg, logger)
	logger.Info("Запуск ETL Runner в режиме: %s", *modePtr)

	switch *modePtr {
	case "once":
		err = runner.ExecuteETL(ctx)
	case "scheduled":
		err = runner.StartScheduler(ctx)
	default:
		logger.Error("Неизвестный режим работы: %s. Доступные режимы: once, scheduled", *modePtr)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("ETL Runner завершился с ошибкой: %v", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("ETL Runner завершил работу")
}
