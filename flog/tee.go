package flog

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type TeeOption struct {
	Out io.Writer
	LevelEnablerFunc
}

// NewTee builds one JSON core per tee. A tee without LevelEnablerFunc logs InfoLevel and above.
func NewTee(tees []TeeOption, cfg ...zapcore.EncoderConfig) []zapcore.Core {
	var g zapcore.EncoderConfig
	if len(cfg) > 0 {
		g = cfg[0]
	} else {
		g = zap.NewProductionEncoderConfig()
	}

	var cores []zapcore.Core

	for _, tee := range tees {
		var enabler zapcore.LevelEnabler = zap.NewAtomicLevelAt(zapcore.Level(InfoLevel))
		if tee.LevelEnablerFunc != nil {
			enabled := tee.LevelEnablerFunc
			enabler = zap.LevelEnablerFunc(func(level zapcore.Level) bool {
				return enabled(Level(level))
			})
		}

		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(g), zapcore.AddSync(tee.Out), enabler))
	}

	return cores
}
