// Package logging builds the JSON line logger shared by the server, the
// migration runner and the admin CLI.
package logging

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger writing one JSON object per line to w.
// Timestamps are RFC3339Nano in loc under the "ts" key.
func New(w io.Writer, loc *time.Location) *zap.Logger {
	if loc == nil {
		loc = time.UTC
	}
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		NameKey:        "logger",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeTime: func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
			pae.AppendString(t.In(loc).Format(time.RFC3339Nano))
		},
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(core)
}

// NewStdout is New bound to os.Stdout.
func NewStdout(loc *time.Location) *zap.Logger {
	return New(os.Stdout, loc)
}
