package msgraph

import "fmt"

// AuthError reports a failed token exchange against the identity endpoint.
// It is not retried here; callers retry or surface the failure.
type AuthError struct {
	StatusCode int
	Detail     string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("token exchange failed (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("token exchange failed (status %d)", e.StatusCode)
}

// FetchError reports a failed worksheet range read: transport error, non-2xx
// response, or a response body without a usable values array.
type FetchError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("worksheet range read failed: %v", e.Err)
	case e.Detail != "":
		return fmt.Sprintf("worksheet range read failed (status %d): %s", e.StatusCode, e.Detail)
	default:
		return fmt.Sprintf("worksheet range read failed (status %d)", e.StatusCode)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
