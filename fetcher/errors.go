package fetcher

import "fmt"

// Kind classifies a fetch failure.
type Kind int

const (
	// KindTimeout means the request exceeded its deadline.
	KindTimeout Kind = iota
	// KindUnreachable means the transport failed before a response arrived.
	KindUnreachable
	// KindHTTPStatus means the server answered outside the 2xx range.
	KindHTTPStatus
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindUnreachable:
		return "unreachable"
	case KindHTTPStatus:
		return "http_status"
	}
	return "unknown"
}

// FetchError describes a failed document retrieval.
type FetchError struct {
	Kind   Kind
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
