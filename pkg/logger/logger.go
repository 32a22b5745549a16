package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is a no-op until Init runs, so packages can log from tests.
var Log = zap.NewNop().Sugar()

func Init(environment string) {
	// JSON encoder for production-ready logging
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	if environment != "production" {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	base, err := config.Build(zap.AddCaller())
	if err != nil {
		base, _ = zap.NewProduction()
	}
	Log = base.Sugar()
}

// Sync flushes buffered entries; call before exit.
func Sync() {
	_ = Log.Sync()
}
