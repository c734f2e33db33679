package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

// orderedJSONWriter ensures consistent field ordering in JSON output
type orderedJSONWriter struct {
	output io.Writer
}

// Write processes the log data and ensures proper field ordering
func (w *orderedJSONWriter) Write(p []byte) (n int, err error) {
	var logData map[string]interface{}
	if err := json.Unmarshal(p, &logData); err != nil {
		return w.output.Write(p)
	}

	// Field order: time, level, scope, message, then others
	var jsonParts []string
	fieldOrder := []string{"time", "level", "scope", "message"}
	processedFields := make(map[string]bool)

	for _, field := range fieldOrder {
		if value, exists := logData[field]; exists {
			jsonValue, _ := json.Marshal(value)
			jsonParts = append(jsonParts, fmt.Sprintf(`"%s":%s`, field, jsonValue))
			processedFields[field] = true
		}
	}

	for key, value := range logData {
		if !processedFields[key] {
			jsonValue, _ := json.Marshal(value)
			jsonParts = append(jsonParts, fmt.Sprintf(`"%s":%s`, key, jsonValue))
		}
	}

	if _, err := w.output.Write([]byte("{" + strings.Join(jsonParts, ",") + "}\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}

// init installs a quiet default logger so packages can log before Init runs.
// stdout belongs to command output, so logs go to stderr.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	log = zerolog.New(os.Stderr).
		With().
		Timestamp().
		Logger().
		Level(zerolog.WarnLevel)
	zerolog.DefaultContextLogger = &log
}

// Options controls how Init builds the logger
type Options struct {
	Level       string    // zerolog level name, "warn" when empty or invalid
	Environment string    // "dev" selects the console writer, "prod" raw JSON
	Timezone    string    // IANA name used for timestamps
	Output      io.Writer // defaults to stderr
}

// Init configures the global logger
func Init(opts Options) {
	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil || opts.Timezone == "" {
		loc = time.UTC
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.WarnLevel
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	// Choose writer based on environment
	var writer io.Writer
	switch opts.Environment {
	case "prod":
		writer = output
	case "dev":
		writer = zerolog.ConsoleWriter{Out: output, TimeFormat: time.Kitchen}
	default:
		writer = &orderedJSONWriter{output: output}
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(loc)
	}

	mu.Lock()
	log = zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(level)
	zerolog.DefaultContextLogger = &log
	mu.Unlock()

	Debug().
		Str("timezone", loc.String()).
		Str("environment", opts.Environment).
		Str("level", level.String()).
		Msg("Logger configured")
}

// SetOutput redirects log output, e.g. to a file while a TUI owns the terminal
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug returns an debug level log event
func Debug() *zerolog.Event {
	l := current()
	return l.Debug()
}

// Info returns an info level log event
func Info() *zerolog.Event {
	l := current()
	return l.Info()
}

// Warn returns a warning level log event
func Warn() *zerolog.Event {
	l := current()
	return l.Warn()
}

// Error returns an error level log event
func Error() *zerolog.Event {
	l := current()
	return l.Error()
}

// Fatal returns a fatal level log event
func Fatal() *zerolog.Event {
	l := current()
	return l.Fatal()
}

// ScopedLogger represents a logger with predefined scope
type ScopedLogger struct {
	logger zerolog.Logger
	scope  string
}

// WithScope creates a new scoped logger instance with predefined scope
func WithScope(scope string) *ScopedLogger {
	return &ScopedLogger{
		logger: current().With().Str("scope", scope).Logger(),
		scope:  scope,
	}
}

// Debug returns a debug level log event with scope
func (s *ScopedLogger) Debug() *zerolog.Event {
	return s.logger.Debug()
}

// Info returns an info level log event with scope
func (s *ScopedLogger) Info() *zerolog.Event {
	return s.logger.Info()
}

// Warn returns a warning level log event with scope
func (s *ScopedLogger) Warn() *zerolog.Event {
	return s.logger.Warn()
}

// Error returns an error level log event with scope
func (s *ScopedLogger) Error() *zerolog.Event {
	return s.logger.Error()
}

// Fatal returns a fatal level log event with scope
func (s *ScopedLogger) Fatal() *zerolog.Event {
	return s.logger.Fatal()
}

// GetScope returns the current scope name
func (s *ScopedLogger) GetScope() string {
	return s.scope
}
