package utils

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOptions задает параметры логгера
type LoggerOptions struct {
	// Уровень логирования: debug, info, warn, error
	Level string
	// Каталог для лог-файла. Пустая строка - писать только в stdout
	FileDir string
	// Включает отладочные сообщения независимо от Level
	Verbose bool
}

// ETLLogger представляет логгер для процесса агрегации
type ETLLogger struct {
	base      *zap.Logger
	wrapped   *zap.Logger
	sugar     *zap.SugaredLogger
	file      *os.File
	isVerbose bool
}

// NewETLLogger создает новый экземпляр логгера
func NewETLLogger(opts LoggerOptions) (*ETLLogger, error) {
	level := parseLevel(opts.Level)
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	}

	// Создаем или открываем лог-файл для записи
	var file *os.File
	if opts.FileDir != "" {
		logFileName := fmt.Sprintf("%s/etl_log_%s.log", opts.FileDir, time.Now().Format("2006-01-02"))
		f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
		if err != nil {
			return nil, fmt.Errorf("не удалось открыть или создать файл лога: %w", err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(f), level))
	}

	base := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	l := NewLoggerFromZap(base, opts.Verbose)
	l.file = file
	return l, nil
}

// NewNopLogger возвращает логгер, который ничего не пишет (для тестов)
func NewNopLogger() *ETLLogger {
	return NewLoggerFromZap(zap.NewNop(), false)
}

// NewLoggerFromZap оборачивает готовый zap-логгер
func NewLoggerFromZap(base *zap.Logger, verbose bool) *ETLLogger {
	// Обертки вызываются на один кадр глубже, чем код, который логирует
	wrapped := base.WithOptions(zap.AddCallerSkip(1))
	return &ETLLogger{base: base, wrapped: wrapped, sugar: wrapped.Sugar(), isVerbose: verbose}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Zap возвращает структурированный логгер для записи полей
func (l *ETLLogger) Zap() *zap.Logger {
	return l.base
}

// Info логирует информационное сообщение
func (l *ETLLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Error логирует сообщение об ошибке
func (l *ETLLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *ETLLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}
	l.sugar.Debugf(format, v...)
}

// Sync сбрасывает буферы и закрывает лог-файл
func (l *ETLLogger) Sync() error {
	_ = l.base.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// LogRunStart логирует начало запуска агрегации
func (l *ETLLogger) LogRunStart() {
	l.wrapped.Info("Начало выполнения агрегации по отделам")
}

// LogRunComplete логирует завершение запуска
func (l *ETLLogger) LogRunComplete(startTime time.Time, records int, departments int) {
	l.wrapped.Info("Агрегация завершена",
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("records", records),
		zap.Int("departments", departments),
	)
}

// LogExtractStart логирует начало фазы извлечения данных
func (l *ETLLogger) LogExtractStart(sourceURL string) {
	l.wrapped.Info("Начало фазы Extract (Извлечение данных)", zap.String("source", sourceURL))
}

// LogExtractComplete логирует завершение фазы извлечения данных
func (l *ETLLogger) LogExtractComplete(users int, duration time.Duration) {
	l.wrapped.Info("Фаза Extract завершена", zap.Duration("duration", duration), zap.Int("users", users))
}

// LogTransformComplete логирует завершение фазы преобразования
func (l *ETLLogger) LogTransformComplete(records int, departments int, duration time.Duration) {
	l.wrapped.Info("Фаза Transform завершена",
		zap.Duration("duration", duration),
		zap.Int("records", records),
		zap.Int("departments", departments),
	)
}
