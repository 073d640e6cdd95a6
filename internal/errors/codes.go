package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
)

// Tag error codes (TAG_*)
const (
	TagNotFound    ErrorCode = "TAG_001"
	TagDuplicate   ErrorCode = "TAG_002"
	TagNoValidTags ErrorCode = "TAG_003"
	TagEmptySearch ErrorCode = "TAG_004"
)

// Record error codes (RECORD_*)
const (
	RecordNotFound         ErrorCode = "RECORD_001"
	RecordValidationFailed ErrorCode = "RECORD_002"
	RecordFilterNoCriteria ErrorCode = "RECORD_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError  ErrorCode = "SYSTEM_001"
	SystemDatabaseError  ErrorCode = "SYSTEM_002"
	SystemRateLimited    ErrorCode = "SYSTEM_003"
	SystemConfigError    ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Incorrect username and password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	ValidationGeneral:       "Invalid Input",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	UserNotFound:      "User not found",
	UserAlreadyExists: "User already exists",

	TagNotFound:    "Tag does not exist",
	TagDuplicate:   "Tag already exists",
	TagNoValidTags: "No valid tags",
	TagEmptySearch: "Empty tag given",

	RecordNotFound:         "Record not found",
	RecordValidationFailed: "Invalid Input",
	RecordFilterNoCriteria: "No filter criteria given",

	SystemInternalError: "An unexpected error occurred",
	SystemDatabaseError: "Database connection error",
	SystemRateLimited:   "Rate limit exceeded. Please try again later",
	SystemConfigError:   "System configuration error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occured"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
