package rpcclient

import (
	"errors"
	"fmt"
)

// Construction and call errors form a closed set; everything returned from
// this package wraps one of the sentinels below, so callers can classify
// failures with errors.Is while still seeing the underlying cause.
var (
	// ErrInvalidEndpoint is returned by New when the endpoint string cannot
	// be parsed into a dialable address. No network I/O has happened yet.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrTLSConfig is returned by New when transport credentials cannot be
	// built (unreadable system cert pool or CA certificate file).
	ErrTLSConfig = errors.New("TLS configuration failed")

	// ErrConnect is returned by New when the handshake with the node does
	// not complete within the dial timeout.
	ErrConnect = errors.New("connection failed")

	// ErrCall is returned by every operation whose underlying RPC fails.
	ErrCall = errors.New("RPC failed")

	// ErrMalformedResponse is returned when a response lacks a field the
	// operation's contract requires.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrInvalidPrefixLength is returned by CheckNullifiersByPrefix for any
	// prefix length other than the 16 bits the node supports.
	ErrInvalidPrefixLength = errors.New("invalid nullifier prefix length")
)

// wrapCall attaches the operation name to a transport error.
func wrapCall(op string, err error) error {
	return fmt.Errorf("%s %w: %w", op, ErrCall, err)
}

// malformed reports a missing required field in the response of op.
func malformed(op, field string) error {
	return fmt.Errorf("%s: %w: no %s", op, ErrMalformedResponse, field)
}
