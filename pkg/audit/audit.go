// Package audit provides structured logging for security-relevant events:
// failed logins, rate-limit triggers and unauthorized access attempts.
// A separate zap logger keeps this stream distinct from application logs so
// it can be shipped to a different sink.
package audit

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audit event
type EventType string

const (
	EventLoginFailed        EventType = "login_failed"
	EventLoginSuccess       EventType = "login_success"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventUnauthorizedAccess EventType = "unauthorized_access"
)

// Event is a single audit record
type Event struct {
	Event     EventType
	Subject   string // masked identifier: email, user id or IP
	IP        string
	UserAgent string
	RequestID string
	Path      string
}

// Logger writes audit events through zap
type Logger struct {
	zap         *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *Logger

// Init builds the audit logger. Called once at startup; later calls replace
// the default instance.
func Init(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	l := &Logger{zap: logger, serviceName: serviceName, environment: environment}
	defaultLogger = l
	return l
}

// Default returns the default audit logger, creating a basic one if Init was
// never called.
func Default() *Logger {
	if defaultLogger == nil {
		env := os.Getenv("ENVIRONMENT")
		if env == "" {
			env = "development"
		}
		return Init("jobportal-backend", env)
	}
	return defaultLogger
}

// Log writes one audit event. Level depends on the event type.
func (l *Logger) Log(event Event) {
	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("at", time.Now().UTC()),
	}
	if event.Subject != "" {
		fields = append(fields, zap.String("subject", event.Subject))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.Path != "" {
		fields = append(fields, zap.String("path", event.Path))
	}

	switch event.Event {
	case EventLoginSuccess:
		l.zap.Info("audit", fields...)
	case EventUnauthorizedAccess:
		l.zap.Error("audit", fields...)
	default:
		l.zap.Warn("audit", fields...)
	}
}

// Sync flushes buffered log entries; call on shutdown.
func (l *Logger) Sync() {
	_ = l.zap.Sync()
}
