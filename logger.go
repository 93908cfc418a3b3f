package dhwire

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger; see the log/ subpackages for adapters.
// A Store only logs entries it drops and writes the provider refuses.
// Values under "err" are errors and adapters render them as such.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// entryFields describes one stored entry. The namespace is split out so log
// pipelines can group by it.
func entryFields(ns, key string, size int) Fields {
	f := Fields{"ns": ns, "key": key}
	if size >= 0 {
		f["size"] = size
	}
	return f
}
