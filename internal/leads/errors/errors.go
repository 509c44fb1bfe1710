package errors

import "errors"

var (
	ErrNoData = errors.New("no lead data available")

	ErrSessionNotFound = errors.New("session not found")

	ErrSourceUnreadable = errors.New("lead source cannot be read")
)
