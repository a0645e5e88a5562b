package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrDocumentRead            = errors.New("document read failure")
	ErrIntentNameTooLong       = errors.New("intent name too long")
	ErrUnresolvedListReference = errors.New("unresolved list reference")
	ErrUnsupportedCulture      = errors.New("unsupported culture")
)
