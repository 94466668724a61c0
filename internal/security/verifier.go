package security

// TokenVerifier checks signature, issuer and expiry of a bearer token issued
// by the external identity provider and exposes the embedded identity.
type TokenVerifier interface {
	VerifyIDToken(token string) (Identity, error)
}
