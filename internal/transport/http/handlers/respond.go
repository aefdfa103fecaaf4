package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vedran77/missive/pkg/apperror"
	"github.com/vedran77/missive/pkg/validator"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error": map[string]any{
			"code":   apperror.CodeValidation,
			"fields": errs,
		},
	})
}

var statusByCode = map[apperror.Code]int{
	apperror.CodeValidation:          http.StatusBadRequest,
	apperror.CodeDuplicateCredential: http.StatusBadRequest,
	apperror.CodeInvalidCredentials:  http.StatusUnauthorized,
	apperror.CodeUnauthorized:        http.StatusUnauthorized,
	apperror.CodeSelfMessage:         http.StatusBadRequest,
	apperror.CodeInvalidContent:      http.StatusBadRequest,
	apperror.CodeRecipientNotFound:   http.StatusNotFound,
}

// writeServiceError maps a typed service error to a response. Anything else
// is logged and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if status, ok := statusByCode[appErr.Code]; ok {
			writeError(w, status, string(appErr.Code), appErr.Message)
			return
		}
	}

	logger.Error(op, "err", err)
	writeError(w, http.StatusInternalServerError, string(apperror.CodeInternal), "Something went wrong")
}

func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0
	}
	return limit
}
