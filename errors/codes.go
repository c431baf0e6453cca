package errors

// ErrorCode identifies an application error category on the wire.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_ALREADY_EXISTS
	ErrorCode_PERMISSION_DENIED
	ErrorCode_UNAUTHENTICATED
	ErrorCode_AUTH_INVALID_TOKEN
	ErrorCode_AUTH_TOKEN_EXPIRED
	ErrorCode_AUTH_USER_NOT_FOUND
	ErrorCode_DECK_NOT_FOUND
	ErrorCode_DECK_ACCESS_DENIED
	ErrorCode_DATASET_MISSING
	ErrorCode_GENERATION_FAILED
	ErrorCode_EXPORT_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:            "OK",
	ErrorCode_INTERNAL:           "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:   "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:          "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:     "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:  "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:    "UNAUTHENTICATED",
	ErrorCode_AUTH_INVALID_TOKEN: "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED: "AUTH_TOKEN_EXPIRED",
	ErrorCode_AUTH_USER_NOT_FOUND: "AUTH_USER_NOT_FOUND",
	ErrorCode_DECK_NOT_FOUND:     "DECK_NOT_FOUND",
	ErrorCode_DECK_ACCESS_DENIED: "DECK_ACCESS_DENIED",
	ErrorCode_DATASET_MISSING:    "DATASET_MISSING",
	ErrorCode_GENERATION_FAILED:  "GENERATION_FAILED",
	ErrorCode_EXPORT_FAILED:      "EXPORT_FAILED",
}

// String returns the wire name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
