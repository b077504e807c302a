package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"summit-insurance/portal/internal/logging"
	"summit-insurance/portal/internal/models/dtos"
)

const (
	apiStatusOk    = "ok"
	apiStatusError = "error"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := dtos.APIResponse{
		Status:       apiStatusOk,
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	}

	writeJSON(w, code, response)
}

// RespondError sends a standardized JSON error response. Only message is
// sent to the client; err is for the server log, keeping internal detail
// off the wire.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	if err != nil {
		logging.Error("request failed", "error", err.Error(), "status_code", code)
	}

	response := dtos.APIResponse{
		Status:       apiStatusError,
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
	}

	writeJSON(w, code, response)
}

// GetResponseTime formats the elapsed handler time for the envelope.
func GetResponseTime(init time.Time) string {
	return fmt.Sprintf("%dms", time.Since(init).Milliseconds())
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
