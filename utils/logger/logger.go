package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/octabyte/bm-rabbitmq-api/enums"
)

type Config struct {
	// Level: debug, info, warn, error, dpanic, panic or fatal. Unknown values mean info.
	Level       string
	Env         string
	ServiceName string
	// Encoding: json (default) or console.
	Encoding string
}

// Init builds the process-wide logger and installs it as zap's global.
func Init(cfg *Config) error {
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = enums.LogEncodingJSON
	}
	if encoding != enums.LogEncodingJSON && encoding != enums.LogEncodingConsole {
		return fmt.Errorf("logger: unsupported encoding %q", encoding)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(getLogLevelFromString(cfg.Level)),
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"env":     cfg.Env,
			"service": cfg.ServiceName,
		},
	}

	logger, err := config.Build(zap.AddCallerSkip(2))
	if err != nil {
		return fmt.Errorf("logger: build: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// Named returns a child of the global logger for one component.
func Named(component string) *zap.Logger {
	return zap.L().Named(component)
}

func LogDebug(msg string, fields ...zap.Field) { write(zapcore.DebugLevel, msg, fields) }

func LogDebugf(msg string, args ...interface{}) { writef(zapcore.DebugLevel, msg, args) }

func LogInfo(msg string, fields ...zap.Field) { write(zapcore.InfoLevel, msg, fields) }

func LogInfof(msg string, args ...interface{}) { writef(zapcore.InfoLevel, msg, args) }

func LogWarn(msg string, fields ...zap.Field) { write(zapcore.WarnLevel, msg, fields) }

func LogWarnf(msg string, args ...interface{}) { writef(zapcore.WarnLevel, msg, args) }

func LogError(msg string, fields ...zap.Field) { write(zapcore.ErrorLevel, msg, fields) }

func LogErrorf(msg string, args ...interface{}) { writef(zapcore.ErrorLevel, msg, args) }

func writef(level zapcore.Level, msg string, args []interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	if entry := zap.L().Check(level, msg); entry != nil {
		entry.Write()
	}
}

func write(level zapcore.Level, msg string, fields []zap.Field) {
	if entry := zap.L().Check(level, msg); entry != nil {
		entry.Write(fields...)
	}
}

func getLogLevelFromString(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case enums.LogLevelDebug, "dbg":
		return zapcore.DebugLevel
	case enums.LogLevelInfo, "information":
		return zapcore.InfoLevel
	case enums.LogLevelWarn, "warning":
		return zapcore.WarnLevel
	case enums.LogLevelError, "err":
		return zapcore.ErrorLevel
	case enums.LogLevelDPanic:
		return zapcore.DPanicLevel
	case enums.LogLevelPanic:
		return zapcore.PanicLevel
	case enums.LogLevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func Sync() {
	_ = zap.L().Sync()
}
