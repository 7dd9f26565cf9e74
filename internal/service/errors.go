package service

import "errors"

var (
	// ErrInvalidDataProvided indicates an empty login or password.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword indicates a known login with a non-matching password.
	ErrWrongPassword = errors.New("wrong password")

	// ErrMissingField indicates a feature name absent from the submitted
	// form or feature map.
	ErrMissingField = errors.New("missing feature field")

	// ErrInvalidNumber indicates a feature value that does not parse as a
	// float.
	ErrInvalidNumber = errors.New("invalid feature number")
)
