package brain

import (
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v3"
)

var (
	errNoChoices    = errors.New("no choices in response")
	errEmptyContent = errors.New("empty message content")
)

// ErrorKind says why the chat service failed, so the caller can decide
// what (if anything) to read aloud without sniffing error prose.
type ErrorKind int

const (
	// KindUnreachable: the service could not be reached at all.
	KindUnreachable ErrorKind = iota
	// KindUnauthenticated: the API rejected our credentials.
	KindUnauthenticated
	// KindMisconfigured: the request itself is wrong (bad model, bad params).
	KindMisconfigured
	// KindBadResponse: the service answered with something unusable.
	KindBadResponse
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindMisconfigured:
		return "misconfigured"
	default:
		return "bad_response"
	}
}

// ServiceError wraps a chat service failure with its kind.
type ServiceError struct {
	Kind ErrorKind
	Err  error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("chat service %s: %v", e.Kind, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func classify(err error) *ServiceError {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 401, 403:
			return &ServiceError{Kind: KindUnauthenticated, Err: err}
		case 400, 404, 422:
			return &ServiceError{Kind: KindMisconfigured, Err: err}
		default:
			return &ServiceError{Kind: KindBadResponse, Err: err}
		}
	}
	return &ServiceError{Kind: KindUnreachable, Err: err}
}
