package api

import "net/http"

// RequestInterceptor inspects or mutates an outgoing request before it is
// sent. Returning a non-nil error aborts the chain and the request is never
// sent.
type RequestInterceptor func(req *http.Request) error

// ResponseInterceptor observes an incoming response before it is handed to
// the caller. Returning a non-nil error aborts the chain and the call
// resolves to that error.
type ResponseInterceptor func(resp *http.Response) error

// applyRequestInterceptors runs the interceptors in order, stopping at the
// first failure.
func applyRequestInterceptors(req *http.Request, interceptors []RequestInterceptor) error {
	for _, ic := range interceptors {
		if err := ic(req); err != nil {
			return err
		}
	}
	return nil
}

// applyResponseInterceptors runs the interceptors in order, stopping at the
// first failure.
func applyResponseInterceptors(resp *http.Response, interceptors []ResponseInterceptor) error {
	for _, ic := range interceptors {
		if err := ic(resp); err != nil {
			return err
		}
	}
	return nil
}

// authInterceptor injects the current session token as a bearer credential.
// Requests go out unchanged when no token is set.
func (c *HTTPClient) authInterceptor(req *http.Request) error {
	if token := c.tokens.Get(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

// unauthorizedInterceptor handles session expiry. Any 401 response, from any
// endpoint, clears the in-memory token and triggers the session-expired
// handler exactly once for that response. The response is then mapped to an
// error by the regular status handling so the caller's error path still runs.
func (c *HTTPClient) unauthorizedInterceptor(resp *http.Response) error {
	if resp.StatusCode != http.StatusUnauthorized {
		return nil
	}
	c.tokens.Clear()
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
	return nil
}
