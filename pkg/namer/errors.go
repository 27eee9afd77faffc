package namer

import "errors"

var (
	// ErrInvalidOption is returned when a strategy receives an option it cannot work with:
	// a missing prefix for the prefix strategy, a missing suffix for the suffix strategy,
	// or an unsupported hash algorithm.
	ErrInvalidOption = errors.New("invalid naming option")

	// ErrRandomSource is returned when the system random source fails.
	ErrRandomSource = errors.New("random source failure")

	// ErrNilFileHeader is returned by MakeFromHeader when the header is nil.
	ErrNilFileHeader = errors.New("file header is nil")

	// ErrLoadingConfig wraps configuration loading failures.
	ErrLoadingConfig = errors.New("failed to load namer configuration")
)
