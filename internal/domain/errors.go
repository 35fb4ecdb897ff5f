package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("request body is not a valid cross-check input")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrExportFailed      = errors.New("report export failed")
)
