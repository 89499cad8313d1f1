package apperrors

// Stable error-code tokens used in every error response body.
const (
	CodeEmptyInput          = "EMPTY_INPUT"
	CodeBadRequest          = "BAD_REQUEST"
	CodeInvalidDateFormat   = "INVALID_DATE_FORMAT"
	CodeFunctionalError     = "FUNCTIONAL_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeDatabaseError       = "DATABASE_ERROR"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeAccessDenied        = "ACCESS_DENIED"
	CodeJWTExpired          = "JWT_EXPIRED"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeUserDisabled        = "USER_DISABLED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)
