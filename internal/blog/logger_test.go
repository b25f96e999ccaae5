package blog

import (
	"context"
	"maps"
	"sync"

	"github.com/goliatone/go-folio/pkg/interfaces"
)

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
	fields  map[string]any
}

var _ interfaces.FieldsLogger = (*recordingLogger)(nil)

func (r *recordingLogger) init() {
	if r.mu == nil {
		r.mu = &sync.Mutex{}
		r.entries = &[]logEntry{}
	}
}

func (r *recordingLogger) record(level, msg string, args []any) {
	r.init()
	fields := maps.Clone(r.fields)
	if fields == nil {
		fields = map[string]any{}
	}
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			fields[key] = args[i+1]
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = append(*r.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (r *recordingLogger) Trace(msg string, args ...any) { r.record("trace", msg, args) }
func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg, args) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg, args) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg, args) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg, args) }
func (r *recordingLogger) Fatal(msg string, args ...any) { r.record("fatal", msg, args) }

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger { return r }

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	r.init()
	merged := maps.Clone(r.fields)
	if merged == nil {
		merged = map[string]any{}
	}
	maps.Copy(merged, fields)
	return &recordingLogger{mu: r.mu, entries: r.entries, fields: merged}
}

func (r *recordingLogger) find(msg string) (logEntry, bool) {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range *r.entries {
		if entry.msg == msg {
			return entry, true
		}
	}
	return logEntry{}, false
}
