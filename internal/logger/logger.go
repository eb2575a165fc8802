package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Taichi-iskw/yt-player/internal/config"
)

// Logger is the application logger
type Logger interface {
	InitLogger()
	Debug(args ...any)
	Debugf(template string, args ...any)
	Info(args ...any)
	Infof(template string, args ...any)
	Warn(args ...any)
	Warnf(template string, args ...any)
	Error(args ...any)
	Errorf(template string, args ...any)
	With(keysAndValues ...any) Logger
	Sync() error
}

// apiLogger implements Logger with a zap SugaredLogger
type apiLogger struct {
	cfg         config.LogConfig
	out         io.Writer
	sugarLogger *zap.SugaredLogger
}

// NewApiLogger creates a logger writing to stderr so stdout stays reserved for command output
func NewApiLogger(cfg *config.Config) *apiLogger {
	return NewApiLoggerWithWriter(cfg.Log, os.Stderr)
}

// NewApiLoggerWithWriter creates a logger writing to w (for testing)
func NewApiLoggerWithWriter(cfg config.LogConfig, w io.Writer) *apiLogger {
	return &apiLogger{cfg: cfg, out: w}
}

// Nop returns a logger that discards everything
func Nop() Logger {
	return &apiLogger{sugarLogger: zap.NewNop().Sugar()}
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

func (l *apiLogger) getLoggerLevel() zapcore.Level {
	level, exist := loggerLevelMap[l.cfg.Level]
	if !exist {
		return zapcore.InfoLevel
	}
	return level
}

// InitLogger builds the zap core from the log configuration
func (l *apiLogger) InitLogger() {
	logLevel := l.getLoggerLevel()

	var encoderCfg zapcore.EncoderConfig
	if l.cfg.Development {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}

	encoderCfg.LevelKey = "LEVEL"
	encoderCfg.CallerKey = "CALLER"
	encoderCfg.TimeKey = "TIME"
	encoderCfg.NameKey = "NAME"
	encoderCfg.MessageKey = "MESSAGE"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if l.cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(l.out), zap.NewAtomicLevelAt(logLevel))
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	l.sugarLogger = logger.Sugar()
}

func (l *apiLogger) Debug(args ...any) {
	l.sugarLogger.Debug(args...)
}

func (l *apiLogger) Debugf(template string, args ...any) {
	l.sugarLogger.Debugf(template, args...)
}

func (l *apiLogger) Info(args ...any) {
	l.sugarLogger.Info(args...)
}

func (l *apiLogger) Infof(template string, args ...any) {
	l.sugarLogger.Infof(template, args...)
}

func (l *apiLogger) Warn(args ...any) {
	l.sugarLogger.Warn(args...)
}

func (l *apiLogger) Warnf(template string, args ...any) {
	l.sugarLogger.Warnf(template, args...)
}

func (l *apiLogger) Error(args ...any) {
	l.sugarLogger.Error(args...)
}

func (l *apiLogger) Errorf(template string, args ...any) {
	l.sugarLogger.Errorf(template, args...)
}

// With returns a child logger carrying structured fields
func (l *apiLogger) With(keysAndValues ...any) Logger {
	return &apiLogger{cfg: l.cfg, out: l.out, sugarLogger: l.sugarLogger.With(keysAndValues...)}
}

func (l *apiLogger) Sync() error {
	return l.sugarLogger.Sync()
}
