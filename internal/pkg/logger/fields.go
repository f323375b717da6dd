package logger

import (
	"context"
	"time"

	"github.com/piresc/flashfood/internal/pkg/requestcontext"
	"github.com/sirupsen/logrus"
)

// Field is a single structured key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// String constructs a field that carries a string value
func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return Field{Key: logrus.ErrorKey, Value: err}
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

// Float64 constructs a field that carries a float64 value
func Float64(key string, val float64) Field {
	return Field{Key: key, Value: val}
}

// Bool constructs a field that carries a bool value
func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

// Duration constructs a field that carries a time.Duration
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}

// Any constructs a field with an arbitrary value
func Any(key string, val interface{}) Field {
	return Field{Key: key, Value: val}
}

// RequestID constructs a request_id field from the id carried by ctx
func RequestID(ctx context.Context) Field {
	return Field{Key: "request_id", Value: requestcontext.RequestID(ctx)}
}

func toLogrusFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
