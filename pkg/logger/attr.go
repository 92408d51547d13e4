package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Schema records the schema name under the key "schema".
func Schema(name string) slog.Attr {
	return slog.String("schema", name)
}

// Field records the validated field under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Validator records the validator name under the key "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// Scenario records the lifecycle scenario under the key "scenario".
func Scenario(name string) slog.Attr {
	return slog.String("scenario", name)
}

// Failures records the number of validation failures.
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
