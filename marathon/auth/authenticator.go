package auth

import (
	"errors"
	"net/http"
)

// CommonNameAuthenticator resolves the caller's identity from the common
// name of the mTLS peer certificate. The listener is expected to require
// client certificates; a request arriving without one is unauthenticated.
type CommonNameAuthenticator struct{}

func NewCommonNameAuthenticator() CommonNameAuthenticator {
	return CommonNameAuthenticator{}
}

func (CommonNameAuthenticator) Authenticate(r *http.Request) (Identity, error) {
	if r.TLS == nil || len(r.TLS.PeerCertificates) == 0 {
		return "", errors.New("no client certificate presented")
	}

	cn := r.TLS.PeerCertificates[0].Subject.CommonName
	if cn == "" {
		return "", errors.New("client certificate has no common name")
	}

	return Identity(cn), nil
}
