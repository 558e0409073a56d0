package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskflow/backend/internal/usecase/service"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleError maps domain errors to HTTP status codes and an ErrorResponse
func HandleError(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusOK, ErrorResponse{}
	}

	var domainErr *service.DomainError
	if errors.As(err, &domainErr) {
		statusCode := mapErrorCodeToHTTPStatus(domainErr.Code)
		return statusCode, ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		}
	}

	// Unknown error, answer 500
	return http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	}
}

func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case "VALIDATION_FAILED":
		return http.StatusBadRequest // 400
	case "INVALID_INPUT":
		return http.StatusBadRequest // 400
	case "NOT_FOUND":
		return http.StatusNotFound // 404
	case "EMAIL_EXISTS":
		return http.StatusConflict // 409
	case "ALREADY_MEMBER":
		return http.StatusConflict // 409
	case "NOT_MEMBER":
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}

// WrapDecodeError turns a malformed request body into a validation error
func WrapDecodeError(err error) error {
	return service.WrapError(service.ErrValidation, err)
}

// WriteError sends an ErrorResponse to the client
func WriteError(w http.ResponseWriter, statusCode int, errResp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errResp)
}

// WriteJSON sends a success payload to the client
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
