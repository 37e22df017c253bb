package lib

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/octabyte/bm-rabbitmq-api/responses"
)

// ErrorResponse is a non-2xx answer from the management API. Message and
// Reason come from the "error" and "reason" fields of the body when present.
type ErrorResponse struct {
	Operation  string
	Method     string
	Path       string
	StatusCode int
	Message    string
	Reason     string
	Body       []byte
}

func newErrorResponse(operation, method, path string, statusCode int, body []byte) *ErrorResponse {
	return &ErrorResponse{
		Operation:  operation,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    gjson.GetBytes(body, "error").String(),
		Reason:     gjson.GetBytes(body, "reason").String(),
		Body:       body,
	}
}

func (e *ErrorResponse) Error() string {
	msg := fmt.Sprintf("%s: %s %s returned %d", e.Operation, e.Method, e.Path, e.StatusCode)
	switch {
	case e.Message != "" && e.Reason != "":
		msg += fmt.Sprintf(": %s (%s)", e.Message, e.Reason)
	case e.Message != "":
		msg += ": " + e.Message
	case e.Reason != "":
		msg += ": " + e.Reason
	}
	return msg
}

// IsNotFound reports whether err is a 404 from the management API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is a 401 from the management API.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, status int) bool {
	var errResp *ErrorResponse
	return errors.As(err, &errResp) && errResp.StatusCode == status
}

// HealthCheckFailedError is returned by the health checks when the server
// answers 503 with failure details.
type HealthCheckFailedError struct {
	Operation  string
	StatusCode int
	Details    responses.HealthCheckFailureDetails
}

func (e *HealthCheckFailedError) Error() string {
	return fmt.Sprintf("%s: health check failed with %d: %s", e.Operation, e.StatusCode, e.Details.FailureReason())
}
