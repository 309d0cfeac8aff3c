package httperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const (
	// DefaultStatusCode is assumed when the transport gives no status at all.
	DefaultStatusCode = http.StatusInternalServerError

	genericMessage = "request failed"
)

// Error is the canonical transport error shape. Every failed backend call is
// normalized into this type at the REST boundary; downstream code never
// inspects raw responses or duck-typed maps.
type Error struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func (e *Error) Error() string {
	return e.Message
}

// New builds a canonical error, applying the generic message and default
// status when either is missing.
func New(message string, statusCode int) *Error {
	message = strings.TrimSpace(message)
	if message == "" {
		message = genericMessage
	}
	if statusCode <= 0 {
		statusCode = DefaultStatusCode
	}
	return &Error{Message: message, StatusCode: statusCode}
}

// FromResponse derives a canonical error from a non-2xx response body. The
// backend's error envelope is `{message}`; when absent or unparseable the
// HTTP status text is used instead.
func FromResponse(statusCode int, body []byte) *Error {
	var envelope struct {
		Message string `json:"message"`
	}
	message := ""
	if len(body) > 0 {
		if err := json.Unmarshal(body, &envelope); err == nil {
			message = envelope.Message
		}
	}
	if strings.TrimSpace(message) == "" {
		message = http.StatusText(statusCode)
	}
	return New(message, statusCode)
}

// Normalize coerces an arbitrary error-ish value into the canonical shape.
// Transport layers disagree on the status key (`statusCode` vs `status`);
// this is the single place that duck-typing is allowed.
func Normalize(value any) *Error {
	switch typed := value.(type) {
	case nil:
		return nil
	case *Error:
		return typed
	case Error:
		return &typed
	case error:
		var httpErr *Error
		if errors.As(typed, &httpErr) {
			return httpErr
		}
		return New(typed.Error(), 0)
	case map[string]any:
		message, _ := typed["message"].(string)
		status := intField(typed, "statusCode")
		if status == 0 {
			status = intField(typed, "status")
		}
		return New(message, status)
	default:
		return New("", 0)
	}
}

// StatusOf reports the canonical status code carried by err, or 0 when err
// carries none.
func StatusOf(err error) int {
	var httpErr *Error
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func intField(m map[string]any, key string) int {
	switch typed := m[key].(type) {
	case int:
		return typed
	case int64:
		return int(typed)
	case float64:
		return int(typed)
	default:
		return 0
	}
}
