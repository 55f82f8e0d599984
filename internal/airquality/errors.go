package airquality

import (
	"errors"
	"fmt"
)

// Kind classifies why a fetch failed.
type Kind int

const (
	// KindNetwork means the request never produced an HTTP response
	// (DNS, connection, timeout).
	KindNetwork Kind = iota + 1
	// KindUpstream means the provider answered with a non-2xx status,
	// e.g. an invalid key or a rate limit.
	KindUpstream
	// KindMalformed means the provider answered 2xx but the body did not
	// have the expected shape.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network_failure"
	case KindUpstream:
		return "upstream_error"
	case KindMalformed:
		return "malformed_response"
	default:
		return "unknown"
	}
}

var (
	ErrNetworkFailure    = errors.New("air quality provider unreachable")
	ErrUpstream          = errors.New("air quality provider returned an error status")
	ErrMalformedResponse = errors.New("air quality provider returned a malformed response")
)

// FetchError is returned by Client.Fetch. It matches the Err* sentinels
// with errors.Is according to its Kind.
type FetchError struct {
	Kind       Kind
	StatusCode int // set for KindUpstream
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindUpstream {
		return fmt.Sprintf("%s: status %d: %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrNetworkFailure:
		return e.Kind == KindNetwork
	case ErrUpstream:
		return e.Kind == KindUpstream
	case ErrMalformedResponse:
		return e.Kind == KindMalformed
	}
	return false
}
