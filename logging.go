package lookup

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zlog is used when Config.Logger is nil.
var zlog = newDefaultLogger()

func newDefaultLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
