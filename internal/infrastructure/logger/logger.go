package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes timestamped plain-text lines to the console and, when a log
// file is configured, mirrors them to a rotating file. Logging is best-effort:
// an unusable log file path degrades to console-only rather than failing the
// backup run.
type Logger struct {
	*zap.SugaredLogger
}

func New(logLevel, logFile string) *Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	consoleCore := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)

	core := consoleCore
	fileAttached := false
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err == nil {
			fileWriter := zapcore.AddSync(&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    100,
				MaxBackups: 3,
				MaxAge:     28,
				Compress:   true,
			})
			core = zapcore.NewTee(
				consoleCore,
				zapcore.NewCore(encoder, fileWriter, level),
			)
			fileAttached = true
		}
	}

	log := &Logger{zap.New(core).Sugar()}

	if logFile != "" && !fileAttached {
		log.Warnf("Log file %s is not writable, logging to console only", logFile)
	}
	return log
}

func (l *Logger) Close() {
	_ = l.Sync()
}
