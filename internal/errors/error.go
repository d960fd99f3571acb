package errors

import "github.com/pkg/errors"

var (
	// construction errors
	ErrLoggerRequired        = errors.New("logger is required")
	ErrTokenProviderRequired = errors.New("token provider is required")
	ErrConfigRequired        = errors.New("configuration is required")

	// auth errors
	ErrCredentialsMissing = errors.New("client credentials are missing")
)
