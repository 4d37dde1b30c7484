package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidCSV    ErrorCode = "VALIDATION_006"
)

// Analysis error codes (ANALYSIS_*)
const (
	AnalysisEmptyBatch      ErrorCode = "ANALYSIS_001"
	AnalysisInvalidCategory ErrorCode = "ANALYSIS_002"
	AnalysisInvalidPeriod   ErrorCode = "ANALYSIS_003"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound        ErrorCode = "GOAL_001"
	GoalInvalidID       ErrorCode = "GOAL_002"
	GoalInvalidTarget   ErrorCode = "GOAL_003"
	GoalInvalidDeadline ErrorCode = "GOAL_004"
	GoalInvalidStatus   ErrorCode = "GOAL_005"
)

// Profile error codes (PROFILE_*)
const (
	ProfileNotFound      ErrorCode = "PROFILE_001"
	ProfileAlreadyExists ErrorCode = "PROFILE_002"
)

// Knowledge/insight error codes (KNOWLEDGE_*)
const (
	KnowledgeUnknownCollection ErrorCode = "KNOWLEDGE_001"
	KnowledgeEmptyDocument     ErrorCode = "KNOWLEDGE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidCSV:    "CSV file is malformed or missing required columns",

	AnalysisEmptyBatch:      "Transaction batch is empty",
	AnalysisInvalidCategory: "Unknown transaction category",
	AnalysisInvalidPeriod:   "Invalid analysis period",

	GoalNotFound:        "Goal not found",
	GoalInvalidID:       "Invalid goal ID format",
	GoalInvalidTarget:   "Goal target amount must be positive",
	GoalInvalidDeadline: "Goal deadline must be in the future",
	GoalInvalidStatus:   "Invalid goal status",

	ProfileNotFound:      "User profile not found",
	ProfileAlreadyExists: "A profile for this user already exists",

	KnowledgeUnknownCollection: "Unknown knowledge collection",
	KnowledgeEmptyDocument:     "Knowledge document text is required",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate, ValidationInvalidCSV,
		AnalysisInvalidPeriod, GoalInvalidID:
		return http.StatusBadRequest

	case GoalNotFound, ProfileNotFound, KnowledgeUnknownCollection, SystemNotFound:
		return http.StatusNotFound

	case AnalysisEmptyBatch, AnalysisInvalidCategory, GoalInvalidTarget,
		GoalInvalidDeadline, GoalInvalidStatus, ProfileAlreadyExists,
		KnowledgeEmptyDocument:
		return http.StatusUnprocessableEntity

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	case SystemInternalError, SystemDatabaseError, SystemConfigurationError,
		SystemUnexpectedError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatusForResponse returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
