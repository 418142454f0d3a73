package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// ValidationErrorBody is the 400 body for struct-tag validation failures:
// field name (JSON spelling) to human-readable message.
type ValidationErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// JSONValidationError writes 400 {"error":"Validation failed","fields":{...}}.
func JSONValidationError(w http.ResponseWriter, fields map[string]string) {
	if fields == nil {
		fields = map[string]string{}
	}
	JSON(w, http.StatusBadRequest, ValidationErrorBody{Error: "Validation failed", Fields: fields})
}

// SafeError returns the error message for client responses. Server errors
// (5xx) are replaced with the status text when hideInternal is set.
func SafeError(err error, status int, hideInternal bool) string {
	if hideInternal && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
