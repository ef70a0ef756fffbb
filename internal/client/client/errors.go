package client

import "errors"

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
)
