// internal/util/errors.go
// Definisi error aplikasi standar + helper tulis JSON error

package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string // e.g., "bad_input", "invalid_date_format", "upstream", "internal"
	Message string
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus memetakan Code ke status HTTP.
func (e AppError) HTTPStatus() int {
	switch e.Code {
	case "bad_input", "invalid_date_format":
		return http.StatusBadRequest
	case "unauthorized":
		return http.StatusUnauthorized
	case "upstream":
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func BadInput(msg string) AppError          { return AppError{Code: "bad_input", Message: msg} }
func InvalidDateFormat(msg string) AppError { return AppError{Code: "invalid_date_format", Message: msg} }
func Unauthorized(msg string) AppError      { return AppError{Code: "unauthorized", Message: msg} }
func Upstream(msg string) AppError          { return AppError{Code: "upstream", Message: msg} }
func Internal(msg string) AppError          { return AppError{Code: "internal", Message: msg} }

// WriteError menulis {"error": code, "message": msg}. Error non-AppError -> internal.
func WriteError(w http.ResponseWriter, err error) {
	var ae AppError
	if !errors.As(err, &ae) {
		ae = Internal(err.Error())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ae.HTTPStatus())
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   ae.Code,
		"message": ae.Message,
	})
}
