package logger

import (
	"sync"

	"github.com/zeromicro/go-zero/core/logx"
)

// Logger wraps go-zero's logx behind the small surface this service uses.
type Logger struct {
	logger logx.Logger
}

// New creates a Logger that skips the wrapper frames when resolving callers.
func New() *Logger {
	return &Logger{
		logger: logx.WithCallerSkip(2),
	}
}

func (l *Logger) Info(v ...any) {
	l.logger.Info(v...)
}

func (l *Logger) Infof(format string, v ...any) {
	l.logger.Infof(format, v...)
}

func (l *Logger) Infow(msg string, fields ...logx.LogField) {
	l.logger.Infow(msg, fields...)
}

func (l *Logger) Error(v ...any) {
	l.logger.Error(v...)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.logger.Errorf(format, v...)
}

func (l *Logger) Errorw(msg string, fields ...logx.LogField) {
	l.logger.Errorw(msg, fields...)
}

func (l *Logger) Debugf(format string, v ...any) {
	l.logger.Debugf(format, v...)
}

var (
	defaultLogger = New()
	once          sync.Once
)

// Config controls the logx setup.
type Config struct {
	ServiceName string
	Mode        string // console, file, volume
	Level       string // debug, info, error, severe
	Encoding    string // json, plain
}

// DefaultConfig returns a console/json/info configuration.
func DefaultConfig(serviceName string) Config {
	return Config{
		ServiceName: serviceName,
		Mode:        "console",
		Level:       "info",
		Encoding:    "json",
	}
}

// Init initializes the log system with defaults.
func Init(serviceName string) {
	InitWithConfig(DefaultConfig(serviceName))
}

// InitWithConfig initializes the log system once with the given config.
func InitWithConfig(config Config) {
	once.Do(func() {
		logx.MustSetup(logx.LogConf{
			ServiceName: config.ServiceName,
			Mode:        config.Mode,
			Level:       config.Level,
			Encoding:    config.Encoding,
		})
	})
}

// Close flushes and closes the log system.
func Close() {
	logx.Close()
}

// Package-level helpers using the default logger.
func Info(v ...any) {
	defaultLogger.Info(v...)
}

func Infof(format string, v ...any) {
	defaultLogger.Infof(format, v...)
}

func Infow(msg string, fields ...logx.LogField) {
	defaultLogger.Infow(msg, fields...)
}

func Error(v ...any) {
	defaultLogger.Error(v...)
}

func Errorf(format string, v ...any) {
	defaultLogger.Errorf(format, v...)
}

func Errorw(msg string, fields ...logx.LogField) {
	defaultLogger.Errorw(msg, fields...)
}

func Debugf(format string, v ...any) {
	defaultLogger.Debugf(format, v...)
}
