package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth int           = 9
	_sentryFlushTimeout  time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer that can be attached to the Logger as an extra
// writer. It forwards error-level records to Sentry and ignores the rest.
type SentryHook struct {
	appZone string
	appName string
}

func NewSentryHook(appZone, appName, dsn string, isDebug bool) *SentryHook {
	transport := sentry.NewHTTPTransport()
	transport.Timeout = _sentryFlushTimeout

	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appZone,
			MaxErrorDepth:    _sentryMaxErrorDepth,
			ServerName:       appName,
			Transport:        transport,
		}); err != nil {
		log.Println("sentry init error:", err.Error())
	}

	return &SentryHook{
		appZone: appZone,
		appName: appName,
	}
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	type record struct {
		Level      string `json:"level"`
		AppName    string `json:"app_name"`
		AppEnv     string `json:"app_zone"`
		CallerFile string `json:"caller_file"`
		CallerLine int    `json:"caller_line"`
		CallerFunc string `json:"caller_func"`
		Stack      string `json:"stack"`
		Message    string `json:"msg"`
		Error      string `json:"error"`
		Timestamp  string `json:"timestamp"`
	}

	var r record
	if err := json.Unmarshal(p, &r); err != nil {
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(r.Level)
	if err != nil || r.Message == "" {
		return len(p), nil
	}

	switch level {
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		timestamp, _ := time.ParseInLocation("2006-01-02T15-04-05.000", r.Timestamp, time.UTC)

		event := sentry.NewEvent()
		event.Environment = h.appZone
		event.Level = h.mapLevel(level)
		event.Timestamp = timestamp
		event.Message = r.Message
		event.Extra["AppName"] = h.appName
		event.Extra["Error"] = r.Error
		event.Extra["CallerFile"] = r.CallerFile
		event.Extra["CallerLine"] = r.CallerLine
		event.Extra["CallerFunc"] = r.CallerFunc
		event.Extra["Stack"] = r.Stack
		event.Exception = append(event.Exception, sentry.Exception{
			Type:       r.Message,
			Value:      r.Error,
			Stacktrace: sentry.NewStacktrace(),
		})
		sentry.CaptureEvent(event)
	}

	return len(p), nil
}

// Flush drains pending events, used on shutdown.
func (h *SentryHook) Flush() {
	sentry.Flush(_sentryFlushTimeout)
}
