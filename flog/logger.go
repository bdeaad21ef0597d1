package flog

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Level = int8

// Consistent with zap
const (
	DebugLevel = Level(zapcore.DebugLevel)
	InfoLevel  = Level(zapcore.InfoLevel)
	WarnLevel  = Level(zapcore.WarnLevel)
	ErrorLevel = Level(zapcore.ErrorLevel)
)

type EncoderConfigType string

const (
	// Nil user defined configuration encoding machine
	Nil EncoderConfigType = ""

	DevelopmentEncoderConfig EncoderConfigType = "development"

	ProductionEncoderConfig EncoderConfigType = "production"
)

type LevelEnablerFunc func(Level) bool

type Options struct {
	// A Level is a logging priority. Higher levels are more important.
	LogLevel Level

	EncoderConfigType EncoderConfigType

	// Used only when EncoderConfigType is Nil
	EncoderConfig zapcore.EncoderConfig

	// Whether to output to the console
	Console bool

	// Filename is the file to write logs to, rotated by lumberjack.
	// If empty, nothing is written to a file.
	Filename string

	// MaxSize is the maximum size in megabytes of the log file before it gets
	// rotated. It defaults to 100 megabytes.
	MaxSize int

	// MaxAge is the maximum number of days to retain old log files.
	MaxAge int

	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int

	Compress bool

	// Output different logs to different locations
	Tees []TeeOption

	ZapOptions []zap.Option
}

// Field is a structured log field. The constructors below cover what the
// generator logs; anything else can be built with zap directly.
type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Ints   = zap.Ints
	Bool   = zap.Bool
	Err    = zap.Error
)

type Logger struct {
	l  *zap.Logger
	al *zap.AtomicLevel
}

var std = Nop()

func New(opt Options) *Logger {
	cfg := encoderConfig(opt)
	al := zap.NewAtomicLevelAt(zapcore.Level(opt.LogLevel))

	cores := NewTee(opt.Tees, cfg)

	if opt.Filename != "" {
		syncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opt.Filename,
			MaxSize:    opt.MaxSize,
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAge,
			Compress:   opt.Compress,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), syncer, al))
	}

	if opt.Console {
		syncer := zapcore.AddSync(os.Stdout)
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), syncer, al))
	}

	opts := append([]zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}, opt.ZapOptions...)

	return &Logger{
		l:  zap.New(zapcore.NewTee(cores...), opts...),
		al: &al,
	}
}

func encoderConfig(opt Options) zapcore.EncoderConfig {
	var cfg zapcore.EncoderConfig
	switch opt.EncoderConfigType {
	case Nil:
		return opt.EncoderConfig
	case DevelopmentEncoderConfig:
		cfg = zap.NewDevelopmentEncoderConfig()
	default:
		cfg = zap.NewProductionEncoderConfig()
	}

	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05"))
	}
	return cfg
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{l: zap.NewNop()}
}

func (l *Logger) SetLevel(level Level) {
	if l.al != nil {
		l.al.SetLevel(zapcore.Level(level))
	}
}

// With returns a child logger that adds fields to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l: l.l.With(fields...), al: l.al}
}

func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.l.Sugar()
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.l.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.l.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.l.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.l.Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func (l *Logger) Logger() *zap.Logger {
	return l.l
}

// Default returns the process-wide logger. Until ReplaceDefault is called it discards everything.
func Default() *Logger { return std }

func ReplaceDefault(l *Logger) { std = l }
