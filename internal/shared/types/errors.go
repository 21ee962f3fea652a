package types

import "errors"

var (
	ErrInputNotFound           = errors.New("savings data file not found")
	ErrInvalidSavingsData      = errors.New("invalid savings data")
	ErrImageRequestFailed      = errors.New("image request failed")
	ErrUnexpectedStatus        = errors.New("unexpected status from image service")
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	ErrUnsupportedReportType   = errors.New("unsupported report type")
)
