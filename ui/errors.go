package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "tokpee/internal/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var statusByCode = map[string]int{
	apperrors.CodeUnsupportedFormat: http.StatusUnsupportedMediaType,
	apperrors.CodeMalformedContent:  http.StatusUnprocessableEntity,
	apperrors.CodeEmptyDataset:      http.StatusUnprocessableEntity,
	apperrors.CodeInvalidInput:      http.StatusBadRequest,
	apperrors.CodeValidationError:   http.StatusBadRequest,
	apperrors.CodeNotFound:          http.StatusNotFound,
	apperrors.CodeExternalService:   http.StatusBadGateway,
	apperrors.CodeConfigInvalid:     http.StatusInternalServerError,
}

// statusFor maps an application error to its HTTP status
func statusFor(err error) int {
	if status, ok := statusByCode[apperrors.GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON error body. Internal errors are not echoed.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	code := apperrors.GetCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		code = apperrors.CodeInternalError
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, errorBody{Error: msg, Code: code})
}

// badRequest reports a malformed request body or parameter
func badRequest(c *gin.Context, err error) {
	respondError(c, apperrors.InvalidInput(err.Error()))
}
