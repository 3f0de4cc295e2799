package service

import "errors"

var (
	ErrInvalidSinceVersion = errors.New("since_version must be a non-negative integer")
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
