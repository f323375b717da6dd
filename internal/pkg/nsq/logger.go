package nsq

import (
	"strings"

	"github.com/piresc/flashfood/internal/pkg/logger"
)

// nsqLogger routes go-nsq's internal log lines into the application logger
type nsqLogger struct {
	component string
}

func newNSQLogger(component string) *nsqLogger {
	return &nsqLogger{component: component}
}

// Output satisfies the go-nsq logger interface
func (l *nsqLogger) Output(_ int, s string) error {
	fields := []logger.Field{logger.String("component", "nsq_"+l.component)}
	switch {
	case strings.HasPrefix(s, "ERR"):
		logger.Error(s, fields...)
	case strings.HasPrefix(s, "WRN"):
		logger.Warn(s, fields...)
	default:
		logger.Debug(s, fields...)
	}
	return nil
}
