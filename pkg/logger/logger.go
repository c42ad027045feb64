package logger

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var log = zap.NewNop()

// Init инициализирует глобальный логгер.
// Управляется переменными окружения:
//   - LOG_LEVEL=debug|info|warn|error (по умолчанию info)
//   - LOG_FILE=./logs/app.log - включает запись в файл с ротацией
func Init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	level := zapcore.InfoLevel
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	enc := zapcore.NewJSONEncoder(encoderConfig)
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	}

	// Файловый вывод опционален
	if logFile := strings.TrimSpace(os.Getenv("LOG_FILE")); logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err == nil {
			lw := &lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    100, // МБ
				MaxBackups: 7,
				MaxAge:     14, // дней
				Compress:   true,
			}
			cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(lw), level))
		}
	}

	log = zap.New(zapcore.NewTee(cores...))
}

func Debug(msg string, fields ...zap.Field) { log.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { log.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { log.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { log.Error(msg, fields...) }

// Sync сбрасывает буферы. Вызывать при завершении процесса
func Sync() {
	_ = log.Sync()
}
