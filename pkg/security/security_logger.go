package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of intake event
type EventType string

const (
	EventCandidateCreated   EventType = "candidate_created"
	EventCandidateUpdated   EventType = "candidate_updated"
	EventValidationFailed   EventType = "validation_failed"
	EventDuplicateEmail     EventType = "duplicate_email"
	EventIntakeFailed       EventType = "intake_failed"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// SecurityEvent is one structured audit record.
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "ip", "candidate_id"
	SubjectValue string                 `json:"subject_value,omitempty"` // masked for PII
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger writes intake audit events through zap.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *SecurityLogger

// InitSecurityLogger builds the process-wide audit logger.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	defaultLogger = NewSecurityLogger(logger, serviceName, environment)
	return defaultLogger
}

// NewSecurityLogger wraps an existing zap logger.
func NewSecurityLogger(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// DefaultLogger returns the process-wide logger, or a no-op one before init.
func DefaultLogger() *SecurityLogger {
	if defaultLogger == nil {
		return NewSecurityLogger(zap.NewNop(), "candidate-intake", "development")
	}
	return defaultLogger
}

// Log logs an intake event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.InfoLevel
	switch event.Event {
	case EventValidationFailed, EventDuplicateEmail, EventRateLimitTriggered:
		level = zapcore.WarnLevel
	case EventIntakeFailed:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
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
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogCandidateSaved records a successful create or update.
func (sl *SecurityLogger) LogCandidateSaved(ctx context.Context, candidateID int64, created bool, ip, requestID string) {
	event := EventCandidateUpdated
	if created {
		event = EventCandidateCreated
	}
	sl.Log(ctx, SecurityEvent{
		Event:       event,
		SubjectType: "candidate_id",
		IP:          ip,
		RequestID:   requestID,
		Details:     map[string]interface{}{"candidate_id": candidateID},
	})
}

// LogIntakeRejected records a refused submission. The email is masked.
func (sl *SecurityLogger) LogIntakeRejected(ctx context.Context, event EventType, email, ip, userAgent, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:        event,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"reason": reason},
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]interface{}{"endpoint": endpoint},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	atIndex := -1
	for i, c := range email {
		if c == '@' {
			atIndex = i
			break
		}
	}
	if atIndex < 0 {
		return HashValue(email)
	}
	if atIndex <= 1 {
		return "***" + email[atIndex:]
	}
	return email[:1] + "***" + email[atIndex:]
}

// HashValue creates a short SHA256 prefix of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
