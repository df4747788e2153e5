package authz

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidClient = errors.New("invalid client")

type AuthorizedRoundTripper struct {
	token        string
	prepqVersion string
}

func NewRoundTripper(token, prepqVersion string) *AuthorizedRoundTripper {
	return &AuthorizedRoundTripper{token: token, prepqVersion: prepqVersion}
}

func (a *AuthorizedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to ensure thread safety
	clonedReq := req.Clone(req.Context())
	if a.token != "" {
		clonedReq.Header.Set("Authorization", "Bearer "+a.token)
	}
	clonedReq.Header.Set("X-Prepq-Version", a.prepqVersion)

	res, err := http.DefaultTransport.RoundTrip(clonedReq)
	if err != nil {
		return nil, err
	}

	// A 401 means the stored token is expired or revoked. Fail here so every
	// caller sees the same error instead of a half-decoded response.
	if res.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: invalid token", ErrInvalidClient)
	}
	return res, nil
}
