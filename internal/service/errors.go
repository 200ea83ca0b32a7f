package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrValidationTitleRequired = errors.New("title is required")
	ErrValidationInvalidTitle  = errors.New("title must be a non-empty string")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrServerUnavailable = errors.New("server is unavailable")
	ErrServerError       = errors.New("server failed to process the request")
)
