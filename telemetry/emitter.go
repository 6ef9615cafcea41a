package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Emitter is the logging seam every component depends on. Implementations
// must be safe for concurrent use by multiple workers.
type Emitter interface {
	Debug(component, msg string, fields map[string]interface{})
	Info(component, msg string, fields map[string]interface{})
	Warn(component, msg string, fields map[string]interface{})
	Error(component, msg string, fields map[string]interface{})
}

// zerologEmitter adapts github.com/rs/zerolog to the Emitter interface.
type zerologEmitter struct {
	logger zerolog.Logger
}

// New returns an Emitter that writes structured JSON lines to w at the
// given minimum level via zerolog.
func New(w io.Writer, level zerolog.Level) Emitter {
	if w == nil {
		w = os.Stderr
	}
	return &zerologEmitter{logger: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// NewConsole returns an Emitter writing human-readable (non-JSON) lines,
// convenient for interactive debug runs.
func NewConsole(w io.Writer, level zerolog.Level) Emitter {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000"}
	return &zerologEmitter{logger: zerolog.New(console).Level(level).With().Timestamp().Logger()}
}

func (e *zerologEmitter) event(evt *zerolog.Event, component, msg string, fields map[string]interface{}) {
	evt = evt.Str("component", component)
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg(msg)
}

func (e *zerologEmitter) Debug(component, msg string, fields map[string]interface{}) {
	e.event(e.logger.Debug(), component, msg, fields)
}

func (e *zerologEmitter) Info(component, msg string, fields map[string]interface{}) {
	e.event(e.logger.Info(), component, msg, fields)
}

func (e *zerologEmitter) Warn(component, msg string, fields map[string]interface{}) {
	e.event(e.logger.Warn(), component, msg, fields)
}

func (e *zerologEmitter) Error(component, msg string, fields map[string]interface{}) {
	e.event(e.logger.Error(), component, msg, fields)
}

// nopEmitter discards every event. It is the zero-cost default.
type nopEmitter struct{}

// Nop is the Emitter used when no logging is configured.
var Nop Emitter = nopEmitter{}

func (nopEmitter) Debug(string, string, map[string]interface{}) {}
func (nopEmitter) Info(string, string, map[string]interface{})  {}
func (nopEmitter) Warn(string, string, map[string]interface{})  {}
func (nopEmitter) Error(string, string, map[string]interface{}) {}
