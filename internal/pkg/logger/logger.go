package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is a logrus logger stamped with the service name, optionally
// mirrored to a file
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
	Format   string `json:"format" mapstructure:"format"` // "json" or "text"
	Service  string `json:"service" mapstructure:"service"`
}

// AccessLog is one served HTTP request
type AccessLog struct {
	Method    string
	Path      string
	Route     string
	ClientIP  string
	UserID    string
	Role      string
	RequestID string
	Status    int
	Latency   time.Duration
	Err       error
}

// NewAppLogger creates a logger. An unknown level falls back to info.
func NewAppLogger(config Config) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	l.SetFormatter(newFormatter(config.Format))

	appLogger := &AppLogger{Logger: l, service: config.Service}
	if config.FilePath != "" {
		if err := appLogger.mirrorToFile(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}
	return appLogger, nil
}

// NewAppLoggerFromConfig builds the logger straight from the service config
func NewAppLoggerFromConfig(configs *models.Config, service string) (*AppLogger, error) {
	return NewAppLogger(Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Format:   configs.Logger.Format,
		Service:  service,
	})
}

func newFormatter(format string) logrus.Formatter {
	if format == "text" {
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
	}
	return &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "timestamp",
			logrus.FieldKeyMsg:  "message",
		},
	}
}

func (al *AppLogger) mirrorToFile(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file
	al.SetOutput(io.MultiWriter(os.Stdout, file))
	return nil
}

// Close detaches and closes the log file, if any
func (al *AppLogger) Close() error {
	if al.file == nil {
		return nil
	}
	al.SetOutput(os.Stdout)
	err := al.file.Close()
	al.file = nil
	return err
}

// FilePath returns the mirrored log file, or "" when logging to stdout only
func (al *AppLogger) FilePath() string {
	return al.filePath
}

// WithFields returns an entry carrying fields plus the service name
func (al *AppLogger) WithFields(fields logrus.Fields) *logrus.Entry {
	if fields == nil {
		fields = logrus.Fields{}
	}
	if al.service != "" {
		fields["service"] = al.service
	}
	return al.Logger.WithFields(fields)
}

// LogHTTPRequest writes the access log line of a request. 5xx logs at error,
// 4xx at warn, the rest at info.
func (al *AppLogger) LogHTTPRequest(req AccessLog) {
	fields := logrus.Fields{
		"method":     req.Method,
		"path":       req.Path,
		"status":     req.Status,
		"latency_ms": req.Latency.Milliseconds(),
		"client_ip":  req.ClientIP,
		"request_id": req.RequestID,
		"user_id":    req.UserID,
	}
	if req.Route != "" {
		fields["route"] = req.Route
	}
	if req.Role != "" {
		fields["role"] = req.Role
	}

	entry := al.WithFields(fields)
	if req.Err != nil {
		entry = entry.WithError(req.Err)
	}

	switch {
	case req.Status >= 500:
		entry.Error("Server error")
	case req.Status >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}
