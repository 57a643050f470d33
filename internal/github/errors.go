package github

import "fmt"

// Kind classifies a failed call to the gists endpoint.
type Kind int

const (
	// KindTimeout means the client timeout elapsed before a response arrived.
	KindTimeout Kind = iota
	// KindTransport covers network failures and unreadable 200 bodies.
	KindTransport
	// KindUserNotFound is an upstream 404.
	KindUserNotFound
	// KindRateLimited is an upstream 403.
	KindRateLimited
	// KindUpstreamStatus is any other non-200 status.
	KindUpstreamStatus
	// KindMalformed is a 200 whose body is valid JSON but not a list.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindUserNotFound:
		return "user_not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindUpstreamStatus:
		return "upstream_status"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is a classified failure from ListUserGists.
type Error struct {
	Kind       Kind
	Username   string
	StatusCode int
	// Body holds the upstream response body for KindUpstreamStatus and
	// KindMalformed, for logging only.
	Body string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("github: %s fetching gists for %q: %v", e.Kind, e.Username, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("github: %s fetching gists for %q: status %d", e.Kind, e.Username, e.StatusCode)
	default:
		return fmt.Sprintf("github: %s fetching gists for %q", e.Kind, e.Username)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
