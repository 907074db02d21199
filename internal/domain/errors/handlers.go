package errors

import (
	"addressing/internal/errors"
)

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "BUILDING_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ToErrorInfo maps any error onto ErrorInfo, falling back to INTERNAL_ERROR.
func ToErrorInfo(err error) *ErrorInfo {
	var appErr AppError
	if errors.As(err, &appErr) {
		info := &ErrorInfo{Code: appErr.ErrorCode(), Message: appErr.Message()}
		if details := appErr.Details(); details != "" {
			info.Details = details
		}

		return info
	}

	return &ErrorInfo{Code: ErrInternalError.ErrorCode(), Message: ErrInternalError.Message()}
}

// HTTPStatus returns the status code carried by err, or 500.
func HTTPStatus(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return ErrInternalError.HTTPCode()
}
