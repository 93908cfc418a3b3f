package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/dhwire"
)

var _ dhwire.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New names the logger "dhwire".
func New(l *zap.Logger) ZapLogger { return ZapLogger{L: l.Named("dhwire")} }

func (z ZapLogger) Debug(msg string, f dhwire.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f dhwire.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f dhwire.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f dhwire.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f dhwire.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
